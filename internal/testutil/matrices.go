package testutil

import "math/rand"

// DeterministicNoise returns a rows x cols matrix of uniform values in
// [-amplitude, amplitude) drawn from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, rows, cols int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, rows)
	for r := range out {
		out[r] = make([]float64, cols)
		for c := range out[r] {
			out[r][c] = (rng.Float64()*2 - 1) * amplitude
		}
	}
	return out
}

// Ragged returns a matrix whose row r has lengths[r] elements, numbered
// 1, 2, 3, ... in row-major order.
func Ragged(lengths ...int) [][]int {
	out := make([][]int, len(lengths))
	next := 1
	for r, n := range lengths {
		out[r] = make([]int, n)
		for c := range out[r] {
			out[r][c] = next
			next++
		}
	}
	return out
}

// Sequence returns a rows x cols matrix numbered 1, 2, 3, ... in row-major order.
func Sequence(rows, cols int) [][]int {
	lengths := make([]int, rows)
	for r := range lengths {
		lengths[r] = cols
	}
	return Ragged(lengths...)
}
