package algoblas

// StatusCode is the shared result taxonomy for routine execution. Routine and
// reference invocations report through this type instead of returning errors,
// so the test harness can record partial outcomes (routine failed, reference
// succeeded) without aborting.
type StatusCode int

const (
	StatusSuccess StatusCode = 0

	// Argument validation failures.
	StatusNotImplemented    StatusCode = -1024
	StatusInvalidMatrixA    StatusCode = -1022
	StatusInvalidMatrixB    StatusCode = -1021
	StatusInvalidMatrixC    StatusCode = -1020
	StatusInvalidVectorX    StatusCode = -1019
	StatusInvalidVectorY    StatusCode = -1018
	StatusInvalidDimension  StatusCode = -1017
	StatusInvalidLeadDimA   StatusCode = -1016
	StatusInvalidLeadDimB   StatusCode = -1015
	StatusInvalidLeadDimC   StatusCode = -1014
	StatusInvalidIncrementX StatusCode = -1013
	StatusInvalidIncrementY StatusCode = -1012

	// Undersized device buffers.
	StatusInsufficientMemoryA StatusCode = -1011
	StatusInsufficientMemoryB StatusCode = -1010
	StatusInsufficientMemoryC StatusCode = -1009
	StatusInsufficientMemoryX StatusCode = -1008
	StatusInsufficientMemoryY StatusCode = -1007

	// Execution failures.
	StatusKernelLaunchError StatusCode = -2048
	StatusKernelRunError    StatusCode = -2047

	// Backend-native failures with no 1:1 translation.
	StatusUnknownError StatusCode = -2147483648
)

// OK reports whether the status denotes a successful execution.
func (s StatusCode) OK() bool { return s == StatusSuccess }

func (s StatusCode) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotImplemented:
		return "not implemented"
	case StatusInvalidMatrixA:
		return "invalid matrix A"
	case StatusInvalidMatrixB:
		return "invalid matrix B"
	case StatusInvalidMatrixC:
		return "invalid matrix C"
	case StatusInvalidVectorX:
		return "invalid vector X"
	case StatusInvalidVectorY:
		return "invalid vector Y"
	case StatusInvalidDimension:
		return "invalid dimension"
	case StatusInvalidLeadDimA:
		return "invalid leading dimension of A"
	case StatusInvalidLeadDimB:
		return "invalid leading dimension of B"
	case StatusInvalidLeadDimC:
		return "invalid leading dimension of C"
	case StatusInvalidIncrementX:
		return "invalid increment of X"
	case StatusInvalidIncrementY:
		return "invalid increment of Y"
	case StatusInsufficientMemoryA:
		return "buffer A too small"
	case StatusInsufficientMemoryB:
		return "buffer B too small"
	case StatusInsufficientMemoryC:
		return "buffer C too small"
	case StatusInsufficientMemoryX:
		return "buffer X too small"
	case StatusInsufficientMemoryY:
		return "buffer Y too small"
	case StatusKernelLaunchError:
		return "kernel launch error"
	case StatusKernelRunError:
		return "kernel run error"
	default:
		return "unknown error"
	}
}

// TranslateError maps a backend-native error onto the shared taxonomy.
// A nil error is success; an unrecognized error becomes StatusUnknownError.
func TranslateError(err error) StatusCode {
	if err == nil {
		return StatusSuccess
	}
	return StatusUnknownError
}
