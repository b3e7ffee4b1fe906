package conv2d_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cwbudde/algo-conv2d/conv2d"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"ints", conv2d.Format(conv2d.Matrix[int]{{-3, -3, 11}, {9, 0, 21}}), "-3 -3 11 \n9 0 21 \n"},
		{"ragged", conv2d.Format(conv2d.Matrix[int]{{1}, {}, {2, 3}}), "1 \n\n2 3 \n"},
		{"floats", conv2d.Format(conv2d.Matrix[float64]{{0.5, -2}}), "0.5 -2 \n"},
		{"bytes print as numbers", conv2d.Format(conv2d.Matrix[uint8]{{65, 0}}), "65 0 \n"},
		{"empty", conv2d.Format(conv2d.Matrix[int]{}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestMatrixString(t *testing.T) {
	m := conv2d.Matrix[int]{{1, 2}}
	require.Equal(t, "1 2 \n", m.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, conv2d.Fprint(&buf, conv2d.Matrix[int]{{1, 2, 3}}))
	require.Equal(t, "1 2 3 \n", buf.String())

	require.ErrorIs(t, conv2d.Fprint(failingWriter{}, conv2d.Matrix[int]{{1}}), errWrite)
}
