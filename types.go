package algoblas

// Element is a type constraint for buffer element types supported by the
// routines and by the test harness.
type Element interface {
	float32 | float64 | complex64 | complex128
}

// Precision identifies the element type of a buffer or a routine instance.
// The numeric values follow the "bits per component" convention, with complex
// types repeating the component width.
type Precision uint16

const (
	PrecisionSingle        Precision = 32
	PrecisionDouble        Precision = 64
	PrecisionComplexSingle Precision = 3232
	PrecisionComplexDouble Precision = 6464
)

func (p Precision) String() string {
	switch p {
	case PrecisionSingle:
		return "single"
	case PrecisionDouble:
		return "double"
	case PrecisionComplexSingle:
		return "complex-single"
	case PrecisionComplexDouble:
		return "complex-double"
	default:
		return "unknown"
	}
}

// Complex reports whether elements of this precision are complex-valued.
func (p Precision) Complex() bool {
	return p == PrecisionComplexSingle || p == PrecisionComplexDouble
}

// ElemSize returns the size of one element in bytes, or 0 for an unknown
// precision.
func (p Precision) ElemSize() int {
	switch p {
	case PrecisionSingle:
		return 4
	case PrecisionDouble, PrecisionComplexSingle:
		return 8
	case PrecisionComplexDouble:
		return 16
	default:
		return 0
	}
}

// PrecisionOf returns the Precision corresponding to the element type T.
func PrecisionOf[T Element]() Precision {
	var zero T
	switch any(zero).(type) {
	case float32:
		return PrecisionSingle
	case float64:
		return PrecisionDouble
	case complex64:
		return PrecisionComplexSingle
	default:
		return PrecisionComplexDouble
	}
}
