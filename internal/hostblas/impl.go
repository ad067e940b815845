package hostblas

import (
	"gonum.org/v1/gonum/blas"
	blasgonum "gonum.org/v1/gonum/blas/gonum"

	algoblas "github.com/cwbudde/algo-blas"
)

// Implementation is the kernel provider contract: the four per-precision
// gonum BLAS interfaces combined. Both gonum.Implementation (pure Go) and
// netlib.Implementation (cgo system BLAS) satisfy it.
type Implementation interface {
	blas.Float32
	blas.Float64
	blas.Complex64
	blas.Complex128
}

// Default returns the pure-Go gonum implementation.
func Default() Implementation {
	return blasgonum.Implementation{}
}

func uplo(t algoblas.Triangle) blas.Uplo {
	if t == algoblas.Lower {
		return blas.Lower
	}
	return blas.Upper
}

// trans maps a transpose mode to the gonum constant. For real element types
// a conjugate transpose degenerates to a plain transpose.
func trans(t algoblas.Transpose, complexElem bool) blas.Transpose {
	switch t {
	case algoblas.Yes:
		return blas.Trans
	case algoblas.Conjugate:
		if complexElem {
			return blas.ConjTrans
		}
		return blas.Trans
	default:
		return blas.NoTrans
	}
}

func diag(d algoblas.Diagonal) blas.Diag {
	if d == algoblas.NonUnit {
		return blas.NonUnit
	}
	return blas.Unit
}

// gatherVector copies n logical vector elements into a dense unit-stride
// slice. Element i lives at src[off + i*inc].
func gatherVector[T algoblas.Element](src []T, off, inc, n int) []T {
	dst := make([]T, n)
	for i := 0; i < n; i++ {
		dst[i] = src[off+i*inc]
	}
	return dst
}

// scatterVector writes a dense unit-stride slice back into strided storage.
func scatterVector[T algoblas.Element](dst []T, off, inc, n int, src []T) {
	for i := 0; i < n; i++ {
		dst[off+i*inc] = src[i]
	}
}

// gatherMatrix copies a rows-by-cols logical matrix into dense row-major
// storage with leading dimension cols. Logical element (i, j) lives at
// src[off + i*ld + j] for row-major storage and src[off + j*ld + i] for
// column-major storage.
func gatherMatrix[T algoblas.Element](src []T, off, ld int, layout algoblas.Layout, rows, cols int) []T {
	dst := make([]T, rows*cols)
	if layout == algoblas.RowMajor {
		for i := 0; i < rows; i++ {
			copy(dst[i*cols:(i+1)*cols], src[off+i*ld:off+i*ld+cols])
		}
		return dst
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[i*cols+j] = src[off+j*ld+i]
		}
	}
	return dst
}

// scatterMatrix writes dense row-major storage back through the layout
// addressing used by gatherMatrix.
func scatterMatrix[T algoblas.Element](dst []T, off, ld int, layout algoblas.Layout, rows, cols int, src []T) {
	if layout == algoblas.RowMajor {
		for i := 0; i < rows; i++ {
			copy(dst[off+i*ld:off+i*ld+cols], src[i*cols:(i+1)*cols])
		}
		return
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[off+j*ld+i] = src[i*cols+j]
		}
	}
}
