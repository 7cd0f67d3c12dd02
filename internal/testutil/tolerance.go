package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and every pair differs by at most eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("sample %d = %v, want %v (|diff| %g > %g)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t on the first NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("sample %d = %v, want finite", i, v)
		}
	}
}

// RequireBounded fails t on the first sample with |x| > bound.
func RequireBounded(t *testing.T, data []float64, bound float64) {
	t.Helper()

	for i, v := range data {
		if math.Abs(v) > bound {
			t.Fatalf("sample %d = %v exceeds %v", i, v, bound)
		}
	}
}

// EchoIndices returns the indices whose magnitude exceeds eps.
func EchoIndices(data []float64, eps float64) []int {
	var idx []int

	for i, v := range data {
		if math.Abs(v) > eps {
			idx = append(idx, i)
		}
	}

	return idx
}

// MaxAbsDiff returns max |a[i]-b[i]|, or an error on a length mismatch.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	var worst float64
	for i := range a {
		worst = max(worst, math.Abs(a[i]-b[i]))
	}

	return worst, nil
}
