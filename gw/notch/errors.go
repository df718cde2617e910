package notch

import "errors"

var (
	// ErrMalformedNotchInput reports a construction row that is not a
	// well-formed (minimum, maximum, description) triple.
	ErrMalformedNotchInput = errors.New("malformed notch input: want (minimum, maximum, description)")

	// ErrShortFrequencyArray reports a frequency array too short to derive
	// a bin spacing from.
	ErrShortFrequencyArray = errors.New("frequency array must have at least 3 bins")
)
