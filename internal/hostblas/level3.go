package hostblas

import algoblas "github.com/cwbudde/algo-blas"

// Syrk computes the rank-k update C := alpha*op(A)*op(A)^T + beta*C on the
// stored triangle of the n-by-n matrix C. op(A) is n-by-k, so the stored A
// is n-by-k for the non-transposed case and k-by-n otherwise. A conjugate
// transpose is not defined for SYRK; callers filter it out beforehand.
func Syrk[T algoblas.Element](impl Implementation, layout algoblas.Layout, tri algoblas.Triangle,
	aTrans algoblas.Transpose, n, k int, alpha T,
	a []T, aOff, aLD int, beta T,
	c []T, cOff, cLD int) {

	aRows, aCols := n, k
	if aTrans != algoblas.NoTranspose {
		aRows, aCols = k, n
	}
	ad := gatherMatrix(a, aOff, aLD, layout, aRows, aCols)
	cd := gatherMatrix(c, cOff, cLD, layout, n, n)

	switch av := any(ad).(type) {
	case []float32:
		impl.Ssyrk(uplo(tri), trans(aTrans, false), n, k, any(alpha).(float32),
			av, aCols, any(beta).(float32), any(cd).([]float32), n)
	case []float64:
		impl.Dsyrk(uplo(tri), trans(aTrans, false), n, k, any(alpha).(float64),
			av, aCols, any(beta).(float64), any(cd).([]float64), n)
	case []complex64:
		impl.Csyrk(uplo(tri), trans(aTrans, false), n, k, any(alpha).(complex64),
			av, aCols, any(beta).(complex64), any(cd).([]complex64), n)
	case []complex128:
		impl.Zsyrk(uplo(tri), trans(aTrans, false), n, k, any(alpha).(complex128),
			av, aCols, any(beta).(complex128), any(cd).([]complex128), n)
	}
	scatterMatrix(c, cOff, cLD, layout, n, n, cd)
}
