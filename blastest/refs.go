package blastest

import "github.com/cwbudde/algo-blas/internal/hostblas"

// referenceImpl backs the always-available RunReference2 methods with the
// pure-Go gonum kernels. The netlib (cgo) and cuBLAS reference paths live in
// build-tag-gated files and provide RunReference1/RunReference3.
var referenceImpl hostblas.Implementation = hostblas.Default()
