package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRelNear fails t if got differs from want by more than rel times
// |want|. A zero want falls back to an absolute comparison against rel.
func RequireRelNear(t *testing.T, got, want, rel float64) {
	t.Helper()
	diff := math.Abs(got - want)
	limit := rel * math.Abs(want)
	if want == 0 {
		limit = rel
	}
	if diff > limit {
		t.Fatalf("got %v, want %v (diff %v > %v)", got, want, diff, limit)
	}
}
