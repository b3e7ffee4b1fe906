package conv2d

// KernelCenter returns the anchor of kernel: (rows/2, len(row 0)/2).
// Even-sized kernels lean toward the top-left. An empty kernel has center (0, 0).
func KernelCenter[T Number](kernel Matrix[T]) (row, col int) {
	if len(kernel) == 0 {
		return 0, 0
	}
	return len(kernel) / 2, len(kernel[0]) / 2
}

// ApplyKernel computes one output element: the kernel is centered on
// (row, col) of input and every kernel weight is multiplied with the
// padding-aware sample beneath it.
//
//	sum += kernel[kr][kc] * Sample(input, padding, row+kr-cr, col+kc-cc)
//
// Each kernel row is bounded by its own length. An empty kernel yields the
// zero value without sampling. Integer overflow wraps as usual for T.
func ApplyKernel[T Number](input, kernel Matrix[T], padding T, row, col int) T {
	var acc T
	if len(kernel) == 0 {
		return acc
	}

	cr, cc := KernelCenter(kernel)
	for kr, krow := range kernel {
		irow := row + kr - cr
		for kc, w := range krow {
			// The conversion rounds the product before the add, which keeps
			// the compiler from fusing it into an FMA.
			acc += T(w * Sample(input, padding, irow, col+kc-cc))
		}
	}
	return acc
}
