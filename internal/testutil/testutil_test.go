package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2, 3 + 1e-13}, 1e-12)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1.5, math.MaxFloat64})
}

func TestRequireMaskEqual(t *testing.T) {
	RequireMaskEqual(t, []bool{true, false}, []bool{true, false})
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1, 8, 2, 8)
	if len(s) != 8 {
		t.Fatalf("len=%d, want 8", len(s))
	}
	if s[0] != 0 {
		t.Fatalf("s[0]=%v, want 0", s[0])
	}
	if math.Abs(s[2]-2) > 1e-12 {
		t.Fatalf("s[2]=%v, want 2 (quarter period at amplitude 2)", s[2])
	}
}
