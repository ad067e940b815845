package algoblas

// Layout selects how matrices are stored in linear memory.
type Layout uint8

const (
	RowMajor Layout = iota
	ColMajor
)

func (l Layout) String() string {
	if l == ColMajor {
		return "colmajor"
	}
	return "rowmajor"
}

// Transpose selects the operation applied to a matrix operand.
type Transpose uint8

const (
	NoTranspose Transpose = iota
	Yes
	Conjugate
)

func (t Transpose) String() string {
	switch t {
	case Yes:
		return "transposed"
	case Conjugate:
		return "conjugate"
	default:
		return "notransposed"
	}
}

// Triangle selects which triangle of a symmetric/hermitian/triangular matrix
// is stored.
type Triangle uint8

const (
	Upper Triangle = iota
	Lower
)

func (t Triangle) String() string {
	if t == Lower {
		return "lower"
	}
	return "upper"
}

// Side selects whether a matrix operand appears on the left or the right of
// a product.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Diagonal states whether a triangular matrix has an implicit unit diagonal.
type Diagonal uint8

const (
	Unit Diagonal = iota
	NonUnit
)

func (d Diagonal) String() string {
	if d == NonUnit {
		return "nonunit"
	}
	return "unit"
}
