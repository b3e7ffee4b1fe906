package conv2d

import (
	"fmt"
	"strings"
)

type kernelEntry struct {
	name        string
	description string
	weights     [][]int
}

var kernelRegistry = []kernelEntry{
	{"identity", "1x1 unit impulse", [][]int{{1}}},
	{"laplacian", "3x3 edge detector, 8 at the center and -1 around it", [][]int{
		{-1, -1, -1},
		{-1, 8, -1},
		{-1, -1, -1},
	}},
	{"sharpen", "3x3 cross sharpening", [][]int{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}},
	{"sobel-x", "3x3 horizontal gradient", [][]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}},
	{"sobel-y", "3x3 vertical gradient", [][]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}},
	{"box3", "3x3 unnormalized box sum", boxWeights(3)},
	{"box5", "5x5 unnormalized box sum", boxWeights(5)},
}

func boxWeights(n int) [][]int {
	w := make([][]int, n)
	for r := range w {
		w[r] = make([]int, n)
		for c := range w[r] {
			w[r][c] = 1
		}
	}
	return w
}

// fromInts converts integer weights to T. Negative weights wrap for
// unsigned T.
func fromInts[T Number](weights [][]int) Matrix[T] {
	m := make(Matrix[T], len(weights))
	for r, row := range weights {
		m[r] = make([]T, len(row))
		for c, v := range row {
			m[r][c] = T(v)
		}
	}
	return m
}

// findKernel matches name case-insensitively, ignoring surrounding space.
func findKernel(name string) (kernelEntry, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, e := range kernelRegistry {
		if e.name == key {
			return e, true
		}
	}
	return kernelEntry{}, false
}

// Lookup returns a fresh copy of the named kernel.
func Lookup[T Number](name string) (Matrix[T], error) {
	e, ok := findKernel(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return fromInts[T](e.weights), nil
}

// KernelNames returns the registered kernel names in registry order.
func KernelNames() []string {
	names := make([]string, len(kernelRegistry))
	for i, e := range kernelRegistry {
		names[i] = e.name
	}
	return names
}

// KernelDescription returns a one-line description of the named kernel,
// or "" if it is unknown.
func KernelDescription(name string) string {
	e, _ := findKernel(name)
	return e.description
}

func mustLookup[T Number](name string) Matrix[T] {
	k, err := Lookup[T](name)
	if err != nil {
		panic(err)
	}
	return k
}

// Identity returns the 1x1 kernel {{1}}.
func Identity[T Number]() Matrix[T] { return mustLookup[T]("identity") }

// Laplacian returns the 3x3 kernel with 8 at the center and -1 elsewhere.
func Laplacian[T Number]() Matrix[T] { return mustLookup[T]("laplacian") }

// Sharpen returns the 3x3 cross sharpening kernel.
func Sharpen[T Number]() Matrix[T] { return mustLookup[T]("sharpen") }

// SobelX returns the horizontal Sobel gradient kernel.
func SobelX[T Number]() Matrix[T] { return mustLookup[T]("sobel-x") }

// SobelY returns the vertical Sobel gradient kernel.
func SobelY[T Number]() Matrix[T] { return mustLookup[T]("sobel-y") }

// Box returns an n x n kernel of ones. n < 1 yields an empty kernel.
func Box[T Number](n int) Matrix[T] {
	if n < 1 {
		return Matrix[T]{}
	}
	return fromInts[T](boxWeights(n))
}
