// Package hostblas executes BLAS operations on host slices that use the
// generalized (layout, offset, increment, leading-dimension) addressing of
// the public routine API. It canonicalizes operands into the row-major,
// unit-stride form consumed by a gonum-style BLAS implementation and scatters
// the results back, so the same code path serves the pure-Go kernels and the
// cgo system BLAS.
//
// The gather/scatter index arithmetic in this package must agree exactly with
// the buffer-size and result-index formulas in package blastest; the tests
// there cross-check both directions.
package hostblas
