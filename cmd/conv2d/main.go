// Command conv2d runs a 2D convolution job and prints the result.
//
// Usage:
//
//	conv2d run [flags] [job.yaml]
//	conv2d kernels
//
// Without a job file, run convolves the built-in 3x3 demo grid with the
// Laplacian kernel.
//
// Examples:
//
//	conv2d run
//	conv2d run --kernel sobel-x --stride 2,2 image.yaml
//	conv2d run --compact --workers 4 job.yaml
//	conv2d kernels
package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd(newLogger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
