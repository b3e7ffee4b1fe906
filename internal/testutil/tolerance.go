package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireMatrixNearlyEqual fails t if got and want differ in shape or if
// any element pair exceeds eps (absolute tolerance).
func RequireMatrixNearlyEqual(t *testing.T, got, want [][]float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(want))
	}
	for r := range got {
		if len(got[r]) != len(want[r]) {
			t.Fatalf("row %d: length mismatch: got %d, want %d", r, len(got[r]), len(want[r]))
		}
		for c := range got[r] {
			diff := math.Abs(got[r][c] - want[r][c])
			if diff > eps {
				t.Fatalf("(%d, %d): got %v, want %v (diff %v > eps %v)", r, c, got[r][c], want[r][c], diff, eps)
			}
		}
	}
}

// RequireBitIdentical fails t unless got and want have the same shape and
// every element pair has the same IEEE-754 bit pattern.
func RequireBitIdentical(t *testing.T, got, want [][]float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("row count mismatch: got %d, want %d", len(got), len(want))
	}
	for r := range got {
		if len(got[r]) != len(want[r]) {
			t.Fatalf("row %d: length mismatch: got %d, want %d", r, len(got[r]), len(want[r]))
		}
		for c := range got[r] {
			if math.Float64bits(got[r][c]) != math.Float64bits(want[r][c]) {
				t.Fatalf("(%d, %d): got %v, want %v (bits differ)", r, c, got[r][c], want[r][c])
			}
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two matrices.
// Returns an error if the shapes differ.
func MaxAbsDiff(a, b [][]float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("row count mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return 0, fmt.Errorf("row %d: length mismatch: %d vs %d", r, len(a[r]), len(b[r]))
		}
		for c := range a[r] {
			d := math.Abs(a[r][c] - b[r][c])
			if d > maxDiff {
				maxDiff = d
			}
		}
	}
	return maxDiff, nil
}
