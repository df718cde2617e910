// Package orf computes overlap reduction functions between pairs of
// gravitational-wave detectors for an isotropic stochastic background.
//
// The overlap reduction function quantifies how correlated two detectors'
// responses are to an isotropic stochastic signal of a given polarization
// (tensor, vector or scalar), as a function of frequency. The closed-form
// expressions follow Section IVb of https://arxiv.org/abs/0903.0528: the
// detector-pair geometry is reduced to a separation phase parameter, the
// great-circle angle between the sites, and the angles between each arm
// bisector and the local great-circle tangent, which are then combined with
// a spherical-Bessel multipole expansion.
//
// Detector coordinates are Earth-fixed cartesian; arm vectors are unit
// vectors along the arms. For two coincident, identically oriented
// detectors the tensor ORF reduces to 1 at low frequency.
package orf
