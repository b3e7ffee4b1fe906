package conv2d

// Sample returns input[row][col], or padding when (row, col) lies outside the
// input. Columns are bounded by the length of the addressed row, so ragged
// inputs never cause an out-of-range read.
func Sample[T Number](input Matrix[T], padding T, row, col int) T {
	if row < 0 || row >= len(input) {
		return padding
	}
	if col < 0 || col >= len(input[row]) {
		return padding
	}
	return input[row][col]
}
