package routines

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
)

// impl provides the kernels backing the host execution path.
var impl = hostblas.Default()

// vectorSize is the minimum element count for a strided, offset vector.
func vectorSize(n, inc, off int) int {
	return n*inc + off
}

// storedDims returns the (major, minor) dimensions of a rows-by-cols logical
// matrix in the given layout: major counts strides of the leading dimension,
// minor is the lower bound for the leading dimension itself.
func storedDims(layout algoblas.Layout, rows, cols int) (major, minor int) {
	if layout == algoblas.RowMajor {
		return rows, cols
	}
	return cols, rows
}

// matrixSize is the minimum element count for a matrix stored with the given
// layout, leading dimension and offset.
func matrixSize(layout algoblas.Layout, rows, cols, ld, off int) int {
	major, _ := storedDims(layout, rows, cols)
	return major*ld + off
}

func download[T algoblas.Element](buf device.Buffer, q device.Queue) ([]T, error) {
	host := make([]T, buf.Len())
	if err := buf.Read(q, len(host), host); err != nil {
		return nil, err
	}
	return host, nil
}

func upload[T algoblas.Element](buf device.Buffer, q device.Queue, host []T) error {
	return buf.Write(q, len(host), host)
}
