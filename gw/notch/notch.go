package notch

import (
	"fmt"
	"sort"
	"strconv"
)

// Notch is a single excluded frequency interval with a free-text
// description of its origin. Callers are responsible for passing
// MinimumFrequency <= MaximumFrequency; the bounds are not re-ordered.
type Notch struct {
	MinimumFrequency float64
	MaximumFrequency float64
	Description      string
}

// CheckFrequency reports whether f lies inside the closed interval
// [MinimumFrequency, MaximumFrequency].
func (n Notch) CheckFrequency(f float64) bool {
	return n.MinimumFrequency <= f && f <= n.MaximumFrequency
}

// Entry is one (minimum, maximum, description) construction triple.
type Entry struct {
	Min         float64
	Max         float64
	Description string
}

// List is an ordered collection of notches. Duplicates are legal and never
// removed; coverage is what matters, not uniqueness. The list is sorted by
// minimum frequency after [List.Sort] or [List.SaveToFile], but mutation
// does not re-sort.
type List struct {
	notches []Notch
}

// NewList builds a list from construction triples. A nil or empty slice
// yields an empty list.
func NewList(entries []Entry) *List {
	l := &List{notches: make([]Notch, 0, len(entries))}
	for _, e := range entries {
		l.Append(Notch{
			MinimumFrequency: e.Min,
			MaximumFrequency: e.Max,
			Description:      e.Description,
		})
	}
	return l
}

// NewListFromRows builds a list from raw text rows, one notch per row.
// Every row must hold exactly three fields: numeric minimum, numeric
// maximum and a description. Anything else returns
// [ErrMalformedNotchInput].
func NewListFromRows(rows [][]string) (*List, error) {
	l := &List{notches: make([]Notch, 0, len(rows))}
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d fields", ErrMalformedNotchInput, i, len(row))
		}
		minF, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d minimum %q: %v", ErrMalformedNotchInput, i, row[0], err)
		}
		maxF, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d maximum %q: %v", ErrMalformedNotchInput, i, row[1], err)
		}
		l.Append(Notch{MinimumFrequency: minF, MaximumFrequency: maxF, Description: row[2]})
	}
	return l, nil
}

// Append adds a notch to the end of the list.
func (l *List) Append(n Notch) {
	l.notches = append(l.notches, n)
}

// Len returns the number of notches.
func (l *List) Len() int {
	return len(l.notches)
}

// At returns the notch at index i.
func (l *List) At(i int) Notch {
	return l.notches[i]
}

// Notches returns a copy of the contained notches.
func (l *List) Notches() []Notch {
	out := make([]Notch, len(l.notches))
	copy(out, l.notches)
	return out
}

// CheckFrequency reports whether f lies inside any contained notch. An
// empty list never matches.
func (l *List) CheckFrequency(f float64) bool {
	for _, n := range l.notches {
		if n.CheckFrequency(f) {
			return true
		}
	}
	return false
}

// Sort orders the list by minimum frequency, ascending. The sort is stable
// so notches sharing a minimum keep their relative order.
func (l *List) Sort() {
	sort.SliceStable(l.notches, func(i, j int) bool {
		return l.notches[i].MinimumFrequency < l.notches[j].MinimumFrequency
	})
}
