package routines

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
)

// Axpy computes y := alpha*x + y.
func Axpy[T algoblas.Element](n int, alpha T,
	x device.Buffer, xOff, xInc int,
	y device.Buffer, yOff, yInc int,
	q device.Queue) algoblas.StatusCode {

	if n < 1 {
		return algoblas.StatusInvalidDimension
	}
	if xInc < 1 {
		return algoblas.StatusInvalidIncrementX
	}
	if yInc < 1 {
		return algoblas.StatusInvalidIncrementY
	}
	if x == nil || x.Len() < vectorSize(n, xInc, xOff) {
		return algoblas.StatusInsufficientMemoryX
	}
	if y == nil || y.Len() < vectorSize(n, yInc, yOff) {
		return algoblas.StatusInsufficientMemoryY
	}

	xv, err := download[T](x, q)
	if err != nil {
		return algoblas.StatusInvalidVectorX
	}
	yv, err := download[T](y, q)
	if err != nil {
		return algoblas.StatusInvalidVectorY
	}
	hostblas.Axpy(impl, n, alpha, xv, xOff, xInc, yv, yOff, yInc)
	if err := upload(y, q, yv); err != nil {
		return algoblas.StatusKernelRunError
	}
	return algoblas.StatusSuccess
}

// AxpyBatched computes y_b := alpha_b*x_b + y_b for every batch b, with all
// batches addressed as offsets into shared x and y buffers.
func AxpyBatched[T algoblas.Element](n int, alphas []T,
	x device.Buffer, xOffs []int, xInc int,
	y device.Buffer, yOffs []int, yInc int,
	batchCount int, q device.Queue) algoblas.StatusCode {

	if n < 1 || batchCount < 1 {
		return algoblas.StatusInvalidDimension
	}
	if len(alphas) < batchCount || len(xOffs) < batchCount || len(yOffs) < batchCount {
		return algoblas.StatusInvalidDimension
	}
	if xInc < 1 {
		return algoblas.StatusInvalidIncrementX
	}
	if yInc < 1 {
		return algoblas.StatusInvalidIncrementY
	}
	for b := 0; b < batchCount; b++ {
		if x == nil || x.Len() < vectorSize(n, xInc, xOffs[b]) {
			return algoblas.StatusInsufficientMemoryX
		}
		if y == nil || y.Len() < vectorSize(n, yInc, yOffs[b]) {
			return algoblas.StatusInsufficientMemoryY
		}
	}

	xv, err := download[T](x, q)
	if err != nil {
		return algoblas.StatusInvalidVectorX
	}
	yv, err := download[T](y, q)
	if err != nil {
		return algoblas.StatusInvalidVectorY
	}
	for b := 0; b < batchCount; b++ {
		hostblas.Axpy(impl, n, alphas[b], xv, xOffs[b], xInc, yv, yOffs[b], yInc)
	}
	if err := upload(y, q, yv); err != nil {
		return algoblas.StatusKernelRunError
	}
	return algoblas.StatusSuccess
}
