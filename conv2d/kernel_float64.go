package conv2d

import "github.com/cwbudde/algo-vecmath"

// float64Applier evaluates kernel applications on float64 matrices.
// Samples under each kernel row are gathered into a scratch buffer and
// multiplied with vecmath.MulBlock, then summed in kernel order. Products
// are correctly rounded either way, so the result is bit-identical to
// ApplyKernel.
//
// An applier owns its scratch buffers and must not be shared between goroutines.
type float64Applier struct {
	input    Matrix[float64]
	kernel   Matrix[float64]
	padding  float64
	cr, cc   int
	samples  []float64
	products []float64
}

func newFloat64Applier(input, kernel Matrix[float64], padding float64) *float64Applier {
	width := 0
	for _, krow := range kernel {
		width = max(width, len(krow))
	}

	cr, cc := KernelCenter(kernel)
	return &float64Applier{
		input:    input,
		kernel:   kernel,
		padding:  padding,
		cr:       cr,
		cc:       cc,
		samples:  make([]float64, width),
		products: make([]float64, width),
	}
}

func (a *float64Applier) apply(row, col int) float64 {
	var acc float64
	for kr, krow := range a.kernel {
		n := len(krow)
		if n == 0 {
			continue
		}

		irow := row + kr - a.cr
		samples := a.samples[:n]
		for kc := range samples {
			samples[kc] = Sample(a.input, a.padding, irow, col+kc-a.cc)
		}

		products := a.products[:n]
		vecmath.MulBlock(products, krow, samples)
		for _, p := range products {
			acc += p
		}
	}
	return acc
}
