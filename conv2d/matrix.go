package conv2d

// Number is the set of scalar types a Matrix can hold. Every member supports
// a zero value, addition and multiplication.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Matrix is an ordered sequence of independently sized rows.
// Input matrices may be ragged; every bounds check is made per row.
type Matrix[T Number] [][]T

// Stride is the step between sampled output positions along each axis.
// Both components must be at least 1.
type Stride struct {
	Rows int
	Cols int
}

// UnitStride visits every input cell.
var UnitStride = Stride{Rows: 1, Cols: 1}

// NewMatrix returns a zero-filled rows x cols matrix.
func NewMatrix[T Number](rows, cols int) Matrix[T] {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	m := make(Matrix[T], rows)
	for r := range m {
		m[r] = make([]T, cols)
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix[T]) Rows() int {
	return len(m)
}

// RowLen returns the length of row r, or 0 if r is out of range.
func (m Matrix[T]) RowLen(r int) int {
	if r < 0 || r >= len(m) {
		return 0
	}
	return len(m[r])
}

// IsRectangular reports whether all rows have the same length.
// An empty matrix is rectangular.
func (m Matrix[T]) IsRectangular() bool {
	for r := 1; r < len(m); r++ {
		if len(m[r]) != len(m[0]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of m.
func (m Matrix[T]) Clone() Matrix[T] {
	if m == nil {
		return nil
	}

	out := make(Matrix[T], len(m))
	for r, row := range m {
		out[r] = append([]T(nil), row...)
	}
	return out
}

// Equal reports whether m and other have the same shape and elements.
// Elements are compared with ==, so NaN never equals NaN.
func (m Matrix[T]) Equal(other Matrix[T]) bool {
	if len(m) != len(other) {
		return false
	}
	for r := range m {
		if len(m[r]) != len(other[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}
