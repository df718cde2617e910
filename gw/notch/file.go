package notch

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// minFieldWidth is the fixed width of the two numeric columns; the
// description column widens with the longest description in the list.
const (
	minFieldWidth  = 20
	descWidthSlack = 5
)

// SaveToFile sorts the list (a mutating side effect, kept for archive
// compatibility) and writes it as one line per notch: minimum, maximum and
// description as comma-separated, left-justified fixed-width columns.
// The output round-trips through [LoadFile].
func (l *List) SaveToFile(filename string) error {
	l.Sort()

	descWidth := 0
	for _, n := range l.notches {
		if len(n.Description) > descWidth {
			descWidth = len(n.Description)
		}
	}
	descWidth += descWidthSlack

	var b strings.Builder
	for _, n := range l.notches {
		fmt.Fprintf(&b, "%-*s  ,  %-*s  ,  %-*s\n",
			minFieldWidth, formatFrequency(n.MinimumFrequency),
			minFieldWidth, formatFrequency(n.MaximumFrequency),
			descWidth, n.Description)
	}
	return os.WriteFile(filename, []byte(b.String()), 0o644)
}

// loadRows splits a current-format file into trimmed 3-field rows.
func loadRows(filename string) ([][]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows [][]string
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s line %d: want 3 comma-separated columns, got %d", filename, lineNo, len(parts))
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		rows = append(rows, parts)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return rows, nil
}

// LoadFile reads a notch list in the current on-disk format, as written by
// [List.SaveToFile]: comma-delimited rows of numeric minimum, numeric
// maximum and description. Both single-row and multi-row files parse.
func LoadFile(filename string) (*List, error) {
	rows, err := loadRows(filename)
	if err != nil {
		return nil, err
	}
	return NewListFromRows(rows)
}

// LoadLegacyFile reads a notch list in the pre-pyGWB archive layout: one
// header line, then rows whose first column is a quote-wrapped minimum
// (one stray character on each side) and whose second column carries one
// trailing stray character; the description is the second tab-delimited
// field of the row. The stripping is fragile string surgery tied to that
// one historical layout and is preserved exactly for compatibility; new
// files should use [LoadFile].
func LoadLegacyFile(filename string) (*List, error) {
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
		line := scanner.Text()
		if lineNo == 1 || strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s line %d: want at least 2 columns, got %d", filename, lineNo, len(fields))
		}
		rawMin, rawMax := fields[0], fields[1]
		if len(rawMin) < 3 || len(rawMax) < 2 {
			return nil, fmt.Errorf("%s line %d: columns too short to strip", filename, lineNo)
		}
		minF, err := strconv.ParseFloat(rawMin[1:len(rawMin)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: minimum %q: %v", filename, lineNo, rawMin, err)
		}
		maxF, err := strconv.ParseFloat(rawMax[:len(rawMax)-1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: maximum %q: %v", filename, lineNo, rawMax, err)
		}

		desc := ""
		if tabs := strings.Split(line, "\t"); len(tabs) > 1 {
			desc = strings.TrimSpace(tabs[1])
		}
		l.Append(Notch{MinimumFrequency: minF, MaximumFrequency: maxF, Description: desc})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return l, nil
}

// formatFrequency renders a frequency in its shortest round-tripping
// decimal form.
func formatFrequency(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
