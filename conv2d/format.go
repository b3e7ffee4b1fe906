package conv2d

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Fprint writes m to w, one row per line. Every element is followed by a
// single space and rendered with the %v verb.
func Fprint[T Number](w io.Writer, m Matrix[T]) error {
	bw := bufio.NewWriter(w)
	for _, row := range m {
		for _, v := range row {
			if _, err := fmt.Fprintf(bw, "%v ", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Print writes m to standard output.
func Print[T Number](m Matrix[T]) error {
	return Fprint(os.Stdout, m)
}

// Format returns the text Fprint would write.
func Format[T Number](m Matrix[T]) string {
	var sb strings.Builder
	_ = Fprint(&sb, m)
	return sb.String()
}

// String implements fmt.Stringer.
func (m Matrix[T]) String() string {
	return Format(m)
}
