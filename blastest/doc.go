// Package blastest contains the routine-description protocol that lets one
// generic driver validate and benchmark every BLAS routine in this module
// without routine-specific test code.
//
// Each routine supplies a stateless descriptor (an empty struct implementing
// Routine[T]) describing which arguments it consumes, which buffer roles it
// reads and writes, how buffer sizes follow from the problem arguments, how
// to invoke the routine under test and up to three reference implementations,
// how downloaded results are indexed for comparison, and how many flops and
// bytes a single invocation costs. The correctness tester and the performance
// client are written once against that contract; adding a routine to the
// library never touches them.
package blastest
