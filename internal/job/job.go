// Package job loads convolution jobs from YAML documents.
//
// A job names an input matrix, a kernel (inline weights or a registered
// kernel name), a padding value, a stride and driver options:
//
//	input:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
//	kernel_name: laplacian
//	padding: 0
//	stride: [1, 1]
//	layout: sparse
//	workers: 1
package job

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-conv2d/conv2d"
	"gopkg.in/yaml.v3"
)

// Errors returned by Parse, Load and Validate.
var (
	ErrNoInput        = errors.New("job: no input matrix")
	ErrNoKernel       = errors.New("job: no kernel")
	ErrKernelConflict = errors.New("job: both kernel and kernel_name set")
	ErrBadStride      = errors.New("job: bad stride")
	ErrBadLayout      = errors.New("job: bad layout")
)

// Job is one convolution request.
type Job struct {
	Input      [][]float64 `yaml:"input"`
	Kernel     [][]float64 `yaml:"kernel,omitempty"`
	KernelName string      `yaml:"kernel_name,omitempty"`
	Padding    float64     `yaml:"padding"`
	// Stride holds zero, one or two values. Empty means (1, 1) and a single
	// value applies to both axes.
	Stride  []int  `yaml:"stride,flow,omitempty"`
	Layout  string `yaml:"layout,omitempty"`
	Workers int    `yaml:"workers,omitempty"`
}

// Demo returns the Laplacian example on a 3x3 grid.
func Demo() *Job {
	return &Job{
		Input: [][]float64{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
		},
		KernelName: "laplacian",
		Stride:     []int{1, 1},
	}
}

// Parse decodes a YAML job. Unknown fields are rejected. The result is
// not validated.
func Parse(data []byte) (*Job, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var j Job
	if err := dec.Decode(&j); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("job: decode: %w", err)
	}
	return &j, nil
}

// Load reads, decodes and validates the job at path.
func Load(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("job: read %s: %w", path, err)
	}

	j, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := j.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return j, nil
}

// Validate checks that the job can be run.
func (j *Job) Validate() error {
	if j.Input == nil {
		return ErrNoInput
	}
	if j.Kernel != nil && j.KernelName != "" {
		return ErrKernelConflict
	}
	if j.Kernel == nil && j.KernelName == "" {
		return ErrNoKernel
	}
	if _, err := j.KernelMatrix(); err != nil {
		return err
	}
	if _, err := j.StrideValue(); err != nil {
		return err
	}
	if _, err := conv2d.ParseLayout(j.Layout); err != nil {
		return fmt.Errorf("%w: %w", ErrBadLayout, err)
	}
	return nil
}

// KernelMatrix resolves the inline or named kernel.
func (j *Job) KernelMatrix() (conv2d.Matrix[float64], error) {
	if j.KernelName != "" {
		return conv2d.Lookup[float64](j.KernelName)
	}
	return conv2d.Matrix[float64](j.Kernel), nil
}

// StrideValue converts the stride list to a validated conv2d.Stride.
func (j *Job) StrideValue() (conv2d.Stride, error) {
	var s conv2d.Stride
	switch len(j.Stride) {
	case 0:
		s = conv2d.UnitStride
	case 1:
		s = conv2d.Stride{Rows: j.Stride[0], Cols: j.Stride[0]}
	case 2:
		s = conv2d.Stride{Rows: j.Stride[0], Cols: j.Stride[1]}
	default:
		return s, fmt.Errorf("%w: want 1 or 2 values, got %d", ErrBadStride, len(j.Stride))
	}

	if err := conv2d.ValidateStride(s); err != nil {
		return s, fmt.Errorf("%w: %w", ErrBadStride, err)
	}
	return s, nil
}

// Options returns the driver options selected by the job.
func (j *Job) Options() ([]conv2d.Option, error) {
	layout, err := conv2d.ParseLayout(j.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadLayout, err)
	}
	return []conv2d.Option{
		conv2d.WithLayout(layout),
		conv2d.WithWorkers(j.Workers),
	}, nil
}

// Run validates the job and convolves its input.
func (j *Job) Run(ctx context.Context) (conv2d.Matrix[float64], error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	kernel, err := j.KernelMatrix()
	if err != nil {
		return nil, err
	}
	stride, err := j.StrideValue()
	if err != nil {
		return nil, err
	}
	opts, err := j.Options()
	if err != nil {
		return nil, err
	}

	return conv2d.ConvolveWith(ctx, conv2d.Matrix[float64](j.Input), kernel, j.Padding, stride, opts...)
}
