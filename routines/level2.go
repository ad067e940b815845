package routines

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
)

// Gemv computes y := alpha*op(A)*x + beta*y with A of logical size m-by-n.
func Gemv[T algoblas.Element](layout algoblas.Layout, aTrans algoblas.Transpose,
	m, n int, alpha T,
	a device.Buffer, aOff, aLD int,
	x device.Buffer, xOff, xInc int, beta T,
	y device.Buffer, yOff, yInc int,
	q device.Queue) algoblas.StatusCode {

	if m < 1 || n < 1 {
		return algoblas.StatusInvalidDimension
	}
	if xInc < 1 {
		return algoblas.StatusInvalidIncrementX
	}
	if yInc < 1 {
		return algoblas.StatusInvalidIncrementY
	}
	if _, minor := storedDims(layout, m, n); aLD < minor {
		return algoblas.StatusInvalidLeadDimA
	}
	xLen, yLen := n, m
	if aTrans != algoblas.NoTranspose {
		xLen, yLen = m, n
	}
	if a == nil || a.Len() < matrixSize(layout, m, n, aLD, aOff) {
		return algoblas.StatusInsufficientMemoryA
	}
	if x == nil || x.Len() < vectorSize(xLen, xInc, xOff) {
		return algoblas.StatusInsufficientMemoryX
	}
	if y == nil || y.Len() < vectorSize(yLen, yInc, yOff) {
		return algoblas.StatusInsufficientMemoryY
	}

	av, err := download[T](a, q)
	if err != nil {
		return algoblas.StatusInvalidMatrixA
	}
	xv, err := download[T](x, q)
	if err != nil {
		return algoblas.StatusInvalidVectorX
	}
	yv, err := download[T](y, q)
	if err != nil {
		return algoblas.StatusInvalidVectorY
	}
	hostblas.Gemv(impl, layout, aTrans, m, n, alpha, av, aOff, aLD, xv, xOff, xInc, beta, yv, yOff, yInc)
	if err := upload(y, q, yv); err != nil {
		return algoblas.StatusKernelRunError
	}
	return algoblas.StatusSuccess
}

// Her computes the rank-1 update A := alpha*x*x^H + A on the stored triangle
// of the n-by-n matrix A. Alpha is real also for complex element types; real
// element types perform the symmetric update SYR.
func Her[T algoblas.Element](layout algoblas.Layout, tri algoblas.Triangle,
	n int, alpha float64,
	x device.Buffer, xOff, xInc int,
	a device.Buffer, aOff, aLD int,
	q device.Queue) algoblas.StatusCode {

	if n < 1 {
		return algoblas.StatusInvalidDimension
	}
	if xInc < 1 {
		return algoblas.StatusInvalidIncrementX
	}
	if aLD < n {
		return algoblas.StatusInvalidLeadDimA
	}
	if x == nil || x.Len() < vectorSize(n, xInc, xOff) {
		return algoblas.StatusInsufficientMemoryX
	}
	if a == nil || a.Len() < n*aLD+aOff {
		return algoblas.StatusInsufficientMemoryA
	}

	xv, err := download[T](x, q)
	if err != nil {
		return algoblas.StatusInvalidVectorX
	}
	av, err := download[T](a, q)
	if err != nil {
		return algoblas.StatusInvalidMatrixA
	}
	hostblas.Her(impl, layout, tri, n, alpha, xv, xOff, xInc, av, aOff, aLD)
	if err := upload(a, q, av); err != nil {
		return algoblas.StatusKernelRunError
	}
	return algoblas.StatusSuccess
}

// Trsv solves op(A)*x = b in place for a triangular n-by-n matrix A, where b
// is the incoming content of x.
func Trsv[T algoblas.Element](layout algoblas.Layout, tri algoblas.Triangle,
	aTrans algoblas.Transpose, d algoblas.Diagonal, n int,
	a device.Buffer, aOff, aLD int,
	x device.Buffer, xOff, xInc int,
	q device.Queue) algoblas.StatusCode {

	if n < 1 {
		return algoblas.StatusInvalidDimension
	}
	if xInc < 1 {
		return algoblas.StatusInvalidIncrementX
	}
	if aLD < n {
		return algoblas.StatusInvalidLeadDimA
	}
	if a == nil || a.Len() < n*aLD+aOff {
		return algoblas.StatusInsufficientMemoryA
	}
	if x == nil || x.Len() < vectorSize(n, xInc, xOff) {
		return algoblas.StatusInsufficientMemoryX
	}

	av, err := download[T](a, q)
	if err != nil {
		return algoblas.StatusInvalidMatrixA
	}
	xv, err := download[T](x, q)
	if err != nil {
		return algoblas.StatusInvalidVectorX
	}
	hostblas.Trsv(impl, layout, tri, aTrans, d, n, av, aOff, aLD, xv, xOff, xInc)
	if err := upload(x, q, xv); err != nil {
		return algoblas.StatusKernelRunError
	}
	return algoblas.StatusSuccess
}
