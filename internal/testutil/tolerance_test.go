package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := [][]float64{{1.0, 2.0}, {3.0}}
	b := [][]float64{{1.0, 2.1}, {3.0}}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffShapeMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([][]float64{{1}}, [][]float64{{1}, {2}}); err == nil {
		t.Fatal("expected error for row count mismatch")
	}
	if _, err := MaxAbsDiff([][]float64{{1}}, [][]float64{{1, 2}}); err == nil {
		t.Fatal("expected error for row length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := [][]float64{{1, 2, 3}}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical matrices", d)
	}
}

func TestRequireHelpersPass(t *testing.T) {
	a := [][]float64{{0.5, -1}, {2}}
	RequireMatrixNearlyEqual(t, a, [][]float64{{0.5 + 1e-12, -1}, {2}}, 1e-9)
	RequireBitIdentical(t, a, [][]float64{{0.5, -1}, {2}})
}

func TestRagged(t *testing.T) {
	got := Ragged(2, 0, 3)
	if len(got) != 3 || len(got[0]) != 2 || len(got[1]) != 0 || len(got[2]) != 3 {
		t.Fatalf("unexpected shape: %v", got)
	}
	if got[0][0] != 1 || got[2][2] != 5 {
		t.Fatalf("unexpected numbering: %v", got)
	}
}

func TestDeterministicNoiseRepeatable(t *testing.T) {
	a := DeterministicNoise(7, 1, 3, 4)
	b := DeterministicNoise(7, 1, 3, 4)
	RequireBitIdentical(t, a, b)
	for _, row := range a {
		for _, v := range row {
			if v < -1 || v >= 1 {
				t.Fatalf("value %v outside [-1, 1)", v)
			}
		}
	}
}
