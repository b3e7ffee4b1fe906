// Package conv2d provides single-channel 2D convolution over generic numeric
// matrices.
//
// The engine is built from three layers:
//
//   - [Sample]: a padding-aware read of one input element
//   - [ApplyKernel]: one output element, kernel centered on an input position
//   - [Convolve]: the strided driver assembling the output matrix
//
// # Usage
//
//	input := conv2d.Matrix[int]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
//	out, err := conv2d.Convolve(input, conv2d.Laplacian[int](), 0, conv2d.UnitStride)
//	conv2d.Print(out)
//
// # Boundaries and Centering
//
// Every read outside the input, including reads past the end of a short row
// in a ragged matrix, returns the padding value. The kernel anchor is
// (rows/2, len(row 0)/2), so even-sized kernels lean toward the top-left.
// Weights are applied without flipping the kernel.
//
// # Stride and Layout
//
// With the default [LayoutSparse] the output keeps the input's shape and
// cells skipped by the stride remain zero. [LayoutCompact] drops them:
//
//	out, err := conv2d.ConvolveWith(ctx, input, kernel, 0,
//		conv2d.Stride{Rows: 2, Cols: 2}, conv2d.WithLayout(conv2d.LayoutCompact))
//
// A stride component below 1 is rejected with [ErrInvalidStride].
//
// # Parallelism
//
// [WithWorkers] spreads output rows over goroutines. Every cell is computed
// by the same code path and products are rounded before accumulation, so
// floating-point results are bit-identical to sequential evaluation for any
// worker count.
package conv2d
