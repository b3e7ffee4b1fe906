package conv2d

import (
	"context"
	"errors"
	"fmt"
)

// Errors returned by the convolution driver.
var (
	ErrInvalidStride = errors.New("conv2d: invalid stride")
	ErrUnknownLayout = errors.New("conv2d: unknown layout")
	ErrUnknownKernel = errors.New("conv2d: unknown kernel")
)

// Convolve computes the 2D convolution of input with kernel using padding
// for every sample outside input and the given stride.
//
// Rows 0, s.Rows, 2*s.Rows, ... are visited and, within each visited row,
// columns 0, s.Cols, ... below that row's length. The output has one row per
// input row, each as long as its input row; cells the stride skips stay
// zero. Use ConvolveWith and LayoutCompact for a compacted result.
//
// An empty input yields an empty matrix and an empty kernel yields a zero
// matrix shaped like input. The only error is a stride component below 1.
func Convolve[T Number](input, kernel Matrix[T], padding T, stride Stride) (Matrix[T], error) {
	return ConvolveWith(context.Background(), input, kernel, padding, stride)
}

// ConvolveWith is Convolve with options and a context. The context is
// checked between output rows.
func ConvolveWith[T Number](
	ctx context.Context,
	input, kernel Matrix[T],
	padding T,
	stride Stride,
	opts ...Option,
) (Matrix[T], error) {
	if err := ValidateStride(stride); err != nil {
		return nil, err
	}

	cfg := ApplyOptions(opts...)
	out := allocOutput(input, stride, cfg.Layout)
	plan := newRowPlan(input, stride, cfg.Layout)

	if cfg.Workers > 1 && plan.count > 1 {
		if err := convolveParallel(ctx, out, input, kernel, padding, plan, stride.Cols, cfg.Workers); err != nil {
			return nil, err
		}
		return out, nil
	}

	fill := newRowFiller(input, kernel, padding)
	for i := 0; i < plan.count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("conv2d: row %d: %w", plan.inputRow(i), err)
		}
		fill(outputRow(out, plan, i), plan.inputRow(i), stride.Cols, plan.compact)
	}
	return out, nil
}

// ValidateStride returns an error wrapping ErrInvalidStride when either
// component is below 1.
func ValidateStride(stride Stride) error {
	if stride.Rows < 1 || stride.Cols < 1 {
		return fmt.Errorf("%w: (%d, %d), both components must be >= 1",
			ErrInvalidStride, stride.Rows, stride.Cols)
	}
	return nil
}

// OutputShape returns the row lengths Convolve would produce for input
// under stride and layout. An invalid stride returns an error wrapping
// ErrInvalidStride.
func OutputShape[T Number](input Matrix[T], stride Stride, layout Layout) ([]int, error) {
	if err := ValidateStride(stride); err != nil {
		return nil, err
	}

	out := allocOutput(input, stride, layout)
	shape := make([]int, len(out))
	for r, row := range out {
		shape[r] = len(row)
	}
	return shape, nil
}

// rowPlan maps the i-th visited input row to its output row.
type rowPlan struct {
	stride  int
	count   int
	compact bool
}

func newRowPlan[T Number](input Matrix[T], stride Stride, layout Layout) rowPlan {
	return rowPlan{
		stride:  stride.Rows,
		count:   ceilDiv(len(input), stride.Rows),
		compact: layout == LayoutCompact,
	}
}

func (p rowPlan) inputRow(i int) int {
	return i * p.stride
}

// outputRow returns the output row receiving the i-th visited input row.
func outputRow[T Number](out Matrix[T], p rowPlan, i int) []T {
	if p.compact {
		return out[i]
	}
	return out[p.inputRow(i)]
}

func allocOutput[T Number](input Matrix[T], stride Stride, layout Layout) Matrix[T] {
	if layout != LayoutCompact {
		out := make(Matrix[T], len(input))
		for r, row := range input {
			out[r] = make([]T, len(row))
		}
		return out
	}

	out := make(Matrix[T], ceilDiv(len(input), stride.Rows))
	for i := range out {
		out[i] = make([]T, ceilDiv(len(input[i*stride.Rows]), stride.Cols))
	}
	return out
}

// rowFiller computes every visited column of one input row into dst.
// In compact mode the j-th visited column lands in dst[j], otherwise in
// dst[col].
type rowFiller[T Number] func(dst []T, row, colStride int, compact bool)

// newRowFiller returns a filler for input and kernel. float64 matrices get
// the vecmath-backed applier. A filler may hold scratch buffers and must be
// used by a single goroutine.
func newRowFiller[T Number](input, kernel Matrix[T], padding T) rowFiller[T] {
	if in, ok := any(input).(Matrix[float64]); ok && len(kernel) > 0 {
		a := newFloat64Applier(in, any(kernel).(Matrix[float64]), any(padding).(float64))
		return func(dst []T, row, colStride int, compact bool) {
			d := any(dst).([]float64)
			for j, col := 0, 0; col < len(in[row]); j, col = j+1, col+colStride {
				d[dstIndex(j, col, compact)] = a.apply(row, col)
			}
		}
	}

	return func(dst []T, row, colStride int, compact bool) {
		if len(kernel) == 0 {
			return
		}
		for j, col := 0, 0; col < len(input[row]); j, col = j+1, col+colStride {
			dst[dstIndex(j, col, compact)] = ApplyKernel(input, kernel, padding, row, col)
		}
	}
}

func dstIndex(j, col int, compact bool) int {
	if compact {
		return j
	}
	return col
}

// ceilDiv returns ceil(n/d) for d >= 1 without overflowing when d is
// close to math.MaxInt.
func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return 1 + (n-1)/d
}
