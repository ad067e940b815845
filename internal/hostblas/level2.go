package hostblas

import algoblas "github.com/cwbudde/algo-blas"

// Gemv computes y := alpha*op(A)*x + beta*y. A has logical dimensions m-by-n
// before op is applied; x and y follow the usual op-dependent lengths.
func Gemv[T algoblas.Element](impl Implementation, layout algoblas.Layout, aTrans algoblas.Transpose,
	m, n int, alpha T,
	a []T, aOff, aLD int,
	x []T, xOff, xInc int, beta T,
	y []T, yOff, yInc int) {

	xLen := n
	yLen := m
	if aTrans != algoblas.NoTranspose {
		xLen, yLen = m, n
	}
	ad := gatherMatrix(a, aOff, aLD, layout, m, n)
	xd := gatherVector(x, xOff, xInc, xLen)
	yd := gatherVector(y, yOff, yInc, yLen)

	switch av := any(ad).(type) {
	case []float32:
		impl.Sgemv(trans(aTrans, false), m, n, any(alpha).(float32),
			av, n, any(xd).([]float32), 1, any(beta).(float32), any(yd).([]float32), 1)
	case []float64:
		impl.Dgemv(trans(aTrans, false), m, n, any(alpha).(float64),
			av, n, any(xd).([]float64), 1, any(beta).(float64), any(yd).([]float64), 1)
	case []complex64:
		impl.Cgemv(trans(aTrans, true), m, n, any(alpha).(complex64),
			av, n, any(xd).([]complex64), 1, any(beta).(complex64), any(yd).([]complex64), 1)
	case []complex128:
		impl.Zgemv(trans(aTrans, true), m, n, any(alpha).(complex128),
			av, n, any(xd).([]complex128), 1, any(beta).(complex128), any(yd).([]complex128), 1)
	}
	scatterVector(y, yOff, yInc, yLen, yd)
}

// Her computes the rank-1 update A := alpha*x*x^H + A on the stored triangle
// of A. For complex element types this is the hermitian update with a real
// alpha; for real element types it degenerates to the symmetric update SYR.
// Only the stored triangle of A is modified.
func Her[T algoblas.Element](impl Implementation, layout algoblas.Layout, tri algoblas.Triangle,
	n int, alpha float64,
	x []T, xOff, xInc int,
	a []T, aOff, aLD int) {

	xd := gatherVector(x, xOff, xInc, n)
	ad := gatherMatrix(a, aOff, aLD, layout, n, n)

	switch av := any(ad).(type) {
	case []float32:
		impl.Ssyr(uplo(tri), n, float32(alpha), any(xd).([]float32), 1, av, n)
	case []float64:
		impl.Dsyr(uplo(tri), n, alpha, any(xd).([]float64), 1, av, n)
	case []complex64:
		impl.Cher(uplo(tri), n, float32(alpha), any(xd).([]complex64), 1, av, n)
	case []complex128:
		impl.Zher(uplo(tri), n, alpha, any(xd).([]complex128), 1, av, n)
	}
	scatterMatrix(a, aOff, aLD, layout, n, n, ad)
}

// Trsv solves op(A)*x = b in place, where b is the incoming content of x and
// A is triangular.
func Trsv[T algoblas.Element](impl Implementation, layout algoblas.Layout, tri algoblas.Triangle,
	aTrans algoblas.Transpose, d algoblas.Diagonal, n int,
	a []T, aOff, aLD int,
	x []T, xOff, xInc int) {

	ad := gatherMatrix(a, aOff, aLD, layout, n, n)
	xd := gatherVector(x, xOff, xInc, n)

	switch av := any(ad).(type) {
	case []float32:
		impl.Strsv(uplo(tri), trans(aTrans, false), diag(d), n, av, n, any(xd).([]float32), 1)
	case []float64:
		impl.Dtrsv(uplo(tri), trans(aTrans, false), diag(d), n, av, n, any(xd).([]float64), 1)
	case []complex64:
		impl.Ctrsv(uplo(tri), trans(aTrans, true), diag(d), n, av, n, any(xd).([]complex64), 1)
	case []complex128:
		impl.Ztrsv(uplo(tri), trans(aTrans, true), diag(d), n, av, n, any(xd).([]complex128), 1)
	}
	scatterVector(x, xOff, xInc, n, xd)
}
