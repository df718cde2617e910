package sphbessel

import (
	"fmt"
	"math"
)

// seriesCutoff is the switch-over point between the Maclaurin series and the
// closed trigonometric forms. Below it the closed forms suffer catastrophic
// cancellation (the order-4 form loses ~5 digits already at x=1), while the
// series converges to machine precision in under 20 terms.
const seriesCutoff = 2.0

// J0 computes the spherical Bessel function of the first kind at order 0,
// j0(x) = sin(x)/x, with j0(0) = 1.
func J0(x float64) float64 {
	x = math.Abs(x)
	if x < seriesCutoff {
		return maclaurin(0, x)
	}
	return math.Sin(x) / x
}

// J2 computes the spherical Bessel function of the first kind at order 2,
// with j2(0) = 0.
func J2(x float64) float64 {
	x = math.Abs(x)
	if x < seriesCutoff {
		return maclaurin(2, x)
	}
	x2 := x * x
	return (3/x2-1)*math.Sin(x)/x - 3*math.Cos(x)/x2
}

// J4 computes the spherical Bessel function of the first kind at order 4,
// with j4(0) = 0.
func J4(x float64) float64 {
	x = math.Abs(x)
	if x < seriesCutoff {
		return maclaurin(4, x)
	}
	x2 := x * x
	x4 := x2 * x2
	return (105/x4-45/x2+1)*math.Sin(x)/x - (105/x2-10)*math.Cos(x)/x2
}

// Eval dispatches over the supported orders 0, 2 and 4.
func Eval(order int, x float64) (float64, error) {
	switch order {
	case 0:
		return J0(x), nil
	case 2:
		return J2(x), nil
	case 4:
		return J4(x), nil
	default:
		return 0, fmt.Errorf("sphbessel: unsupported order %d", order)
	}
}

// maclaurin evaluates the small-argument series
//
//	j_l(x) = x^l/(2l+1)!! * sum_k (-x^2/2)^k / (k! (2l+3)(2l+5)...(2l+2k+1))
//
// All supported orders are even, so the sign of x does not matter here.
func maclaurin(l int, x float64) float64 {
	lead := 1.0
	for k := 3; k <= 2*l+1; k += 2 {
		lead *= float64(k)
	}
	lead = math.Pow(x, float64(l)) / lead

	sum := 1.0
	term := 1.0
	half := x * x / 2
	for k := 1; k <= 30; k++ {
		term *= -half / (float64(k) * float64(2*l+2*k+1))
		sum += term
		if math.Abs(term) < 1e-17*math.Abs(sum) {
			break
		}
	}
	return lead * sum
}
