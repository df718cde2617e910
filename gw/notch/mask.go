package notch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BinMask flags every bin of a sampled frequency array whose reconstruction
// window overlaps a notch. This is deliberately NOT per-point containment:
// a bin is flagged when any notch reaches into the window spanning one bin
// to either side, so bins whose spectral leakage could be contaminated are
// rejected as well. The first and last bin use one-sided windows, extended
// outward by one bin spacing.
//
// The bin spacing is |freqs[2]-freqs[1]|; all comparisons round the array
// values to the decimal precision of the spacing's own shortest decimal
// representation, absorbing floating-point jitter at the array's
// resolution. inverse is the elementwise negation of mask.
func (l *List) BinMask(freqs []float64) (mask, inverse []bool, err error) {
	if len(freqs) < 3 {
		return nil, nil, ErrShortFrequencyArray
	}

	df := math.Abs(freqs[2] - freqs[1])
	prec := decimalPrecision(df)

	rounded := make([]float64, len(freqs))
	for i, f := range freqs {
		rounded[i] = roundTo(f, prec)
	}

	mask = make([]bool, len(freqs))
	inverse = make([]bool, len(freqs))
	last := len(freqs) - 1
	for i := range freqs {
		// Window bounds: the notch must not lie entirely below the lower
		// edge nor entirely above the upper edge.
		var lo, hi float64
		switch i {
		case 0:
			lo, hi = rounded[0]-df, rounded[1]
		case last:
			lo, hi = rounded[last-1], rounded[last]+df
		default:
			lo, hi = rounded[i-1], rounded[i+1]
		}
		for _, n := range l.notches {
			if !(n.MaximumFrequency <= lo) && !(n.MinimumFrequency >= hi) {
				mask[i] = true
				break
			}
		}
		inverse[i] = !mask[i]
	}
	return mask, inverse, nil
}

// FilterSpectrum drops the bins of a sampled spectrum whose window overlaps
// any notch, returning the surviving frequencies and values.
func (l *List) FilterSpectrum(freqs, spectrum []float64) (keptFreqs, keptVals []float64, err error) {
	if len(freqs) != len(spectrum) {
		return nil, nil, fmt.Errorf("frequency/spectrum length mismatch: %d != %d", len(freqs), len(spectrum))
	}
	_, keep, err := l.BinMask(freqs)
	if err != nil {
		return nil, nil, err
	}
	for i, ok := range keep {
		if ok {
			keptFreqs = append(keptFreqs, freqs[i])
			keptVals = append(keptVals, spectrum[i])
		}
	}
	return keptFreqs, keptVals, nil
}

// decimalPrecision returns the number of digits after the decimal point in
// the shortest decimal representation of v, mirroring how the reference
// derives it from the printed form. A representation without a fractional
// part counts as one digit ("1.0"); an exponent form without a point
// yields -1, meaning rounding to tens.
func decimalPrecision(v float64) int {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - 1 - i
	}
	if strings.ContainsAny(s, "eE") {
		return -1
	}
	return 1
}

// roundTo rounds v to prec decimal digits, ties to even. Negative
// precisions round to the corresponding power of ten.
func roundTo(v float64, prec int) float64 {
	if prec >= 0 {
		r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', prec, 64), 64)
		if err != nil {
			return v
		}
		return r
	}
	pow := math.Pow(10, float64(-prec))
	return math.RoundToEven(v/pow) * pow
}
