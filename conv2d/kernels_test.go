package conv2d_test

import (
	"testing"

	"github.com/cwbudde/algo-conv2d/conv2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, name := range conv2d.KernelNames() {
		t.Run(name, func(t *testing.T) {
			k, err := conv2d.Lookup[float64](name)
			require.NoError(t, err)
			require.NotEmpty(t, k)
			assert.True(t, k.IsRectangular())
			assert.NotEmpty(t, conv2d.KernelDescription(name))
		})
	}

	_, err := conv2d.Lookup[int]("gaussian9")
	require.ErrorIs(t, err, conv2d.ErrUnknownKernel)

	k, err := conv2d.Lookup[int]("  Laplacian ")
	require.NoError(t, err)
	assert.Equal(t, conv2d.Laplacian[int](), k)
}

func TestLookupReturnsCopy(t *testing.T) {
	k := conv2d.Laplacian[int]()
	k[1][1] = 0
	assert.Equal(t, 8, conv2d.Laplacian[int]()[1][1])
}

func TestNamedKernels(t *testing.T) {
	assert.Equal(t, conv2d.Matrix[int]{{1}}, conv2d.Identity[int]())
	assert.Equal(t, conv2d.Matrix[int]{{0, -1, 0}, {-1, 5, -1}, {0, -1, 0}}, conv2d.Sharpen[int]())
	assert.Equal(t, conv2d.Matrix[int]{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}, conv2d.SobelX[int]())
	assert.Equal(t, conv2d.Matrix[int]{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}, conv2d.SobelY[int]())
	assert.Equal(t, conv2d.Matrix[int]{{1, 1}, {1, 1}}, conv2d.Box[int](2))
	assert.Empty(t, conv2d.Box[int](0))
}

func TestKernelsUnsignedWrap(t *testing.T) {
	k := conv2d.Laplacian[uint8]()
	assert.Equal(t, uint8(255), k[0][0])
	assert.Equal(t, uint8(8), k[1][1])
}

func TestKernelWeightsSum(t *testing.T) {
	sum := func(m conv2d.Matrix[int]) int {
		s := 0
		for _, row := range m {
			for _, v := range row {
				s += v
			}
		}
		return s
	}

	assert.Equal(t, 0, sum(conv2d.Laplacian[int]()))
	assert.Equal(t, 1, sum(conv2d.Sharpen[int]()))
	assert.Equal(t, 0, sum(conv2d.SobelX[int]()))
	assert.Equal(t, 0, sum(conv2d.SobelY[int]()))
	assert.Equal(t, 25, sum(conv2d.Box[int](5)))
}

func TestKernelDescriptionUnknown(t *testing.T) {
	assert.Empty(t, conv2d.KernelDescription("nope"))
}

func TestKernelDescriptionMatchesLookupNames(t *testing.T) {
	for _, name := range []string{"Laplacian", "  sobel-X ", "BOX3"} {
		_, err := conv2d.Lookup[int](name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, conv2d.KernelDescription(name), name)
	}
	assert.Equal(t, conv2d.KernelDescription("laplacian"), conv2d.KernelDescription(" LAPLACIAN"))
}
