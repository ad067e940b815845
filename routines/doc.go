// Package routines implements the device BLAS entry points exercised by the
// test harness: AXPY, GEMV, HER, SYRK, TRSV and the batched AXPY variant.
//
// Every routine validates its arguments against the shared status taxonomy,
// stages buffer contents through the device queue, executes the operation and
// leaves the result in the output buffer. Numerical kernels are not written
// here; execution delegates to the gonum BLAS implementation through
// internal/hostblas. Backends with native kernels would replace that path,
// the validation and addressing contract stays the same.
package routines
