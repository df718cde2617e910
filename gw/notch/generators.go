package notch

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Reference defaults for the generators: the US mains fundamental with
// enough harmonics to cover the analysis band, and the typical Earth-orbit
// v/c used for pulsar Doppler broadening.
const (
	DefaultPowerLineFundamental = 60.0
	DefaultPowerLineHarmonics   = 40
	DefaultPowerLineWidth       = 0.2
	DefaultDoppler              = 1e-4
)

// PowerLines builds one notch per mains harmonic k*fundamental for
// k = 1..nHarmonics, each df wide and centered on the harmonic.
func PowerLines(fundamental float64, nHarmonics int, df float64) *List {
	l := &List{notches: make([]Notch, 0, nHarmonics)}
	for k := 1; k <= nHarmonics; k++ {
		f0 := fundamental * float64(k)
		l.Append(Notch{
			MinimumFrequency: f0 - df/2,
			MaximumFrequency: f0 + df/2,
			Description:      "Power Lines",
		})
	}
	return l
}

// DefaultPowerLines builds the reference power-line list: 40 harmonics of
// 60 Hz, 0.2 Hz wide.
func DefaultPowerLines() *List {
	return PowerLines(DefaultPowerLineFundamental, DefaultPowerLineHarmonics, DefaultPowerLineWidth)
}

// Comb builds one notch per comb line f0 + n*fSpacing for
// n = 0..nHarmonics-1, each df wide. The description records the comb
// parameters; a non-empty description is appended to it, typically naming
// the known source of the comb.
func Comb(f0, fSpacing float64, nHarmonics int, df float64, description string) *List {
	l := &List{notches: make([]Notch, 0, nHarmonics)}
	for n := 0; n < nHarmonics; n++ {
		f := f0 + float64(n)*fSpacing
		desc := fmt.Sprintf("Comb with fundamental freq %g and spacing %g", f0, fSpacing)
		if description != "" {
			desc += " " + description
		}
		l.Append(Notch{
			MinimumFrequency: f - df/2,
			MaximumFrequency: f + df/2,
			Description:      desc,
		})
	}
	return l
}

// PulsarInjections builds notches for frequencies contaminated by hardware
// pulsar injections over the analysis span [tStart, tEnd] (GPS seconds).
// The input file holds one pulsar per row as whitespace-delimited
// `t_ref f_ref f_dot` columns. Each pulsar frequency is extrapolated
// linearly to both ends of the span, broadened symmetrically by the Doppler
// factor (pass [DefaultDoppler] for Earth orbital motion), and notched over
// the resulting interval.
func PulsarInjections(filename string, tStart, tEnd, doppler float64) (*List, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l := &List{}
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("pulsar file %s line %d: want 3 columns, got %d", filename, lineNo, len(fields))
		}
		tRef, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("pulsar file %s line %d: t_ref: %v", filename, lineNo, err)
		}
		fRef, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("pulsar file %s line %d: f_ref: %v", filename, lineNo, err)
		}
		fDot, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("pulsar file %s line %d: f_dot: %v", filename, lineNo, err)
		}

		fStart := fRef + fDot*(tStart-tRef)
		fEnd := fRef + fDot*(tEnd-tRef)
		f1 := fStart * (1 + doppler)
		f2 := fEnd * (1 - doppler)
		center := (f1 + f2) / 2
		width := f1 - f2
		l.Append(Notch{
			MinimumFrequency: center - width/2,
			MaximumFrequency: center + width/2,
			Description:      "Pulsar injection",
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pulsar file %s: %w", filename, err)
	}
	return l, nil
}
