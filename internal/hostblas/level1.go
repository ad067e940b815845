package hostblas

import algoblas "github.com/cwbudde/algo-blas"

// Axpy computes y := alpha*x + y on strided, offset vector storage. Vectors
// are passed to the kernel in place: element i of x lives at x[xOff + i*xInc],
// which matches the BLAS convention once the slices are rebased to the offset.
func Axpy[T algoblas.Element](impl Implementation, n int, alpha T, x []T, xOff, xInc int, y []T, yOff, yInc int) {
	switch xv := any(x).(type) {
	case []float32:
		impl.Saxpy(n, any(alpha).(float32), xv[xOff:], xInc, any(y).([]float32)[yOff:], yInc)
	case []float64:
		impl.Daxpy(n, any(alpha).(float64), xv[xOff:], xInc, any(y).([]float64)[yOff:], yInc)
	case []complex64:
		impl.Caxpy(n, any(alpha).(complex64), xv[xOff:], xInc, any(y).([]complex64)[yOff:], yInc)
	case []complex128:
		impl.Zaxpy(n, any(alpha).(complex128), xv[xOff:], xInc, any(y).([]complex128)[yOff:], yInc)
	}
}
