package routines

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
)

// Syrk computes the rank-k update C := alpha*op(A)*op(A)^T + beta*C on the
// stored triangle of the n-by-n matrix C. A conjugate transpose of A is not
// defined for this routine.
func Syrk[T algoblas.Element](layout algoblas.Layout, tri algoblas.Triangle,
	aTrans algoblas.Transpose, n, k int, alpha T,
	a device.Buffer, aOff, aLD int, beta T,
	c device.Buffer, cOff, cLD int,
	q device.Queue) algoblas.StatusCode {

	if n < 1 || k < 1 {
		return algoblas.StatusInvalidDimension
	}
	if aTrans == algoblas.Conjugate {
		return algoblas.StatusNotImplemented
	}
	aRows, aCols := n, k
	if aTrans != algoblas.NoTranspose {
		aRows, aCols = k, n
	}
	if _, minor := storedDims(layout, aRows, aCols); aLD < minor {
		return algoblas.StatusInvalidLeadDimA
	}
	if cLD < n {
		return algoblas.StatusInvalidLeadDimC
	}
	if a == nil || a.Len() < matrixSize(layout, aRows, aCols, aLD, aOff) {
		return algoblas.StatusInsufficientMemoryA
	}
	if c == nil || c.Len() < n*cLD+cOff {
		return algoblas.StatusInsufficientMemoryC
	}

	av, err := download[T](a, q)
	if err != nil {
		return algoblas.StatusInvalidMatrixA
	}
	cv, err := download[T](c, q)
	if err != nil {
		return algoblas.StatusInvalidMatrixC
	}
	hostblas.Syrk(impl, layout, tri, aTrans, n, k, alpha, av, aOff, aLD, beta, cv, cOff, cLD)
	if err := upload(c, q, cv); err != nil {
		return algoblas.StatusKernelRunError
	}
	return algoblas.StatusSuccess
}
