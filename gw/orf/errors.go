package orf

import "errors"

// ErrUnsupportedPolarization reports a polarization outside the recognized
// set of tensor, vector and scalar.
var ErrUnsupportedPolarization = errors.New("unsupported polarization: must be tensor, vector or scalar")
