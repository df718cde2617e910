package orf

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/cwbudde/algo-gw/internal/sphbessel"
)

// SpeedOfLight is the speed of light in vacuum, in m/s.
const SpeedOfLight = 299792458.0

// Polarization selects the gravitational-wave polarization content the
// overlap reduction function is evaluated for.
type Polarization string

const (
	Tensor Polarization = "tensor"
	Vector Polarization = "vector"
	Scalar Polarization = "scalar"
)

// ParsePolarization maps a case-insensitive name onto a [Polarization].
// Unknown names return [ErrUnsupportedPolarization].
func ParsePolarization(s string) (Polarization, error) {
	switch strings.ToLower(s) {
	case "tensor":
		return Tensor, nil
	case "vector":
		return Vector, nil
	case "scalar":
		return Scalar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPolarization, s)
	}
}

// Detector describes one interferometer site in Earth-fixed cartesian
// coordinates: the vertex position in meters and unit vectors along the
// two arms.
type Detector struct {
	Vertex r3.Vec
	XArm   r3.Vec
	YArm   r3.Vec
}

// bisector returns the arm bisector direction, the vector sum of the two
// arm unit vectors.
func (d Detector) bisector() r3.Vec {
	return r3.Add(d.XArm, d.YArm)
}

// Overlap evaluates the overlap reduction function for a detector pair at
// the given frequencies (Hz). The result has one entry per input frequency.
//
// Degenerate geometry (zero-length vectors, coincident vertices) is not
// special-cased: the angle computations then produce NaN, matching the
// reference semantics.
func Overlap(freqs []float64, det1, det2 Detector, pol Polarization) ([]float64, error) {
	pol, err := ParsePolarization(string(pol))
	if err != nil {
		return nil, err
	}

	var plus, minus kernel
	switch pol {
	case Tensor:
		plus, minus = tPlus, tMinus
	case Vector:
		plus, minus = vPlus, vMinus
	case Scalar:
		plus, minus = sPlus, sMinus
	}

	baseline := r3.Norm(r3.Sub(det1.Vertex, det2.Vertex))
	beta := math.Acos(r3.Cos(det1.Vertex, det2.Vertex))

	// Tangent directions along the great circle through both sites. At the
	// second site the tangent is taken against the in-plane vector
	// perpendicular to vertex 1, so that both tangents point along the same
	// propagation direction.
	tan1 := tangent(det1.Vertex, det2.Vertex)
	perp := r3.Cross(r3.Cross(det1.Vertex, det2.Vertex), det1.Vertex)
	tan2 := tangent(det2.Vertex, perp)

	omega1 := math.Acos(r3.Cos(det1.bisector(), tan1))
	omega2 := math.Acos(r3.Cos(det2.bisector(), tan2))
	cosPlus := math.Cos(2 * (omega1 + omega2))
	cosMinus := math.Cos(2 * (omega1 - omega2))

	n := len(freqs)
	plusVals := make([]float64, n)
	minusVals := make([]float64, n)
	for i, f := range freqs {
		alpha := 2 * math.Pi * f * baseline / SpeedOfLight
		j0 := sphbessel.J0(alpha)
		j2 := sphbessel.J2(alpha)
		j4 := sphbessel.J4(alpha)
		plusVals[i] = plus(j0, j2, j4, beta)
		minusVals[i] = minus(j0, j2, j4, beta)
	}

	out := make([]float64, n)
	vecmath.ScaleBlock(out, plusVals, cosPlus)
	vecmath.ScaleBlock(plusVals, minusVals, cosMinus)
	vecmath.AddBlockInPlace(out, plusVals)
	return out, nil
}

// tangent returns the component of v2 orthogonal to v1, the tangent of the
// great circle through both sites evaluated at v1.
func tangent(v1, v2 r3.Vec) r3.Vec {
	return r3.Sub(v2, r3.Scale(r3.Dot(v1, v2)/r3.Dot(v1, v1), v1))
}
