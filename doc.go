// Package algoblas defines the shared vocabulary of the algo-blas project:
// the element-type constraints, the storage-layout enumerations used by every
// BLAS-style routine (layout, transpose, triangle, side, diagonal), the
// precision kinds, and the status-code taxonomy returned by routine execution.
//
// The package is intentionally a leaf: the device abstraction (package
// device), the routines under test (package routines) and the generic test
// harness (package blastest) all build on these types without algoblas
// importing any of them back.
package algoblas
