package blastest

import algoblas "github.com/cwbudde/algo-blas"

// Names of the routine-specific arguments, as reported by Routine.Options and
// used in command-line flags and reports.
const (
	ArgM          = "m"
	ArgN          = "n"
	ArgK          = "k"
	ArgLayout     = "layout"
	ArgATransp    = "transA"
	ArgBTransp    = "transB"
	ArgSide       = "side"
	ArgTriangle   = "triangle"
	ArgDiagonal   = "diagonal"
	ArgXInc       = "incx"
	ArgYInc       = "incy"
	ArgXOffset    = "offx"
	ArgYOffset    = "offy"
	ArgALeadDim   = "lda"
	ArgBLeadDim   = "ldb"
	ArgCLeadDim   = "ldc"
	ArgAOffset    = "offa"
	ArgBOffset    = "offb"
	ArgCOffset    = "offc"
	ArgAlpha      = "alpha"
	ArgBeta       = "beta"
	ArgBatchCount = "batch_num"
)

// Arguments carries every problem parameter a routine descriptor may consume,
// plus the derived buffer sizes written back by SetSizes. It is a plain value
// bag owned by the driver; descriptors read it and only ever write the size
// fields.
type Arguments[T algoblas.Element] struct {
	// Problem dimensions.
	M, N, K int

	// Storage and operation selectors.
	Layout     algoblas.Layout
	ATranspose algoblas.Transpose
	BTranspose algoblas.Transpose
	Side       algoblas.Side
	Triangle   algoblas.Triangle
	Diagonal   algoblas.Diagonal

	// Vector strides and base offsets.
	XInc, YInc       int
	XOffset, YOffset int

	// Matrix leading dimensions and base offsets.
	ALeadDim, BLeadDim, CLeadDim int
	AOffset, BOffset, COffset    int

	// Scalar coefficients.
	Alpha, Beta T

	// Derived buffer sizes, written by SetSizes.
	XSize, YSize, ASize, BSize, CSize int

	// Batched-routine parameters.
	BatchCount int
}

// NewArguments returns an Arguments value with the neutral defaults assumed
// by the descriptors: unit increments and scalars, everything else zero.
func NewArguments[T algoblas.Element]() Arguments[T] {
	return Arguments[T]{
		XInc:       1,
		YInc:       1,
		Alpha:      fromFloat[T](1),
		Beta:       fromFloat[T](1),
		BatchCount: 1,
	}
}
