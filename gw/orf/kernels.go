package orf

import "math"

// kernel is one of the six polarization basis functions. The spherical
// Bessel values are precomputed at alpha by the caller; beta is the
// great-circle angle between the two detector sites.
type kernel func(j0, j2, j4, beta float64) float64

// The rational coefficients below are fixed by the derivation in
// arXiv:0903.0528 Section IVb and must not be altered.

func tPlus(j0, j2, j4, beta float64) float64 {
	return -(3.0/8*j0 - 45.0/56*j2 + 169.0/896*j4) +
		(0.5*j0-5.0/7*j2-27.0/224*j4)*math.Cos(beta) -
		(1.0/8*j0+5.0/56*j2+3.0/896*j4)*math.Cos(2*beta)
}

func tMinus(j0, j2, j4, beta float64) float64 {
	return (j0 + 5.0/7*j2 + 3.0/112*j4) * cosHalfPow4(beta)
}

func vPlus(j0, j2, j4, beta float64) float64 {
	return -(3.0/8*j0 + 45.0/112*j2 + 169.0/224*j4) +
		(0.5*j0+5.0/14*j2+27.0/56*j4)*math.Cos(beta) -
		(1.0/8*j0-5.0/112*j2-3.0/224*j4)*math.Cos(2*beta)
}

func vMinus(j0, j2, j4, beta float64) float64 {
	return (j0 - 5.0/14*j2 - 3.0/28*j4) * cosHalfPow4(beta)
}

func sPlus(j0, j2, j4, beta float64) float64 {
	return -(3.0/8*j0 + 45.0/56*j2 + 507.0/448*j4) +
		(0.5*j0+5.0/7*j2-81.0/112*j4)*math.Cos(beta) -
		(1.0/8*j0-5.0/56*j2+9.0/448*j4)*math.Cos(2*beta)
}

func sMinus(j0, j2, j4, beta float64) float64 {
	return (j0 - 5.0/7*j2 + 9.0/56*j4) * cosHalfPow4(beta)
}

// cosHalfPow4 returns cos(beta/2)^4, shared by all minus kernels.
func cosHalfPow4(beta float64) float64 {
	c := math.Cos(beta / 2)
	c *= c
	return c * c
}
