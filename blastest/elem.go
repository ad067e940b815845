package blastest

import (
	"math"
	"math/cmplx"
	"math/rand"

	algoblas "github.com/cwbudde/algo-blas"
)

// fromFloat builds an element with the given real part and a zero imaginary
// part.
func fromFloat[T algoblas.Element](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	case complex64:
		return any(complex(float32(v), 0)).(T)
	default:
		return any(complex(v, 0)).(T)
	}
}

// realOf extracts the real part of an element as float64.
func realOf[T algoblas.Element](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case complex64:
		return float64(real(x))
	default:
		return real(x.(complex128))
	}
}

// absOf returns the modulus of an element.
func absOf[T algoblas.Element](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	default:
		return cmplx.Abs(x.(complex128))
	}
}

// addFloat adds a real constant to an element.
func addFloat[T algoblas.Element](v T, c float64) T {
	switch x := any(v).(type) {
	case float32:
		return any(x + float32(c)).(T)
	case float64:
		return any(x + c).(T)
	case complex64:
		return any(x + complex(float32(c), 0)).(T)
	default:
		return any(x.(complex128) + complex(c, 0)).(T)
	}
}

// scaleFloat multiplies an element by a real constant.
func scaleFloat[T algoblas.Element](v T, c float64) T {
	switch x := any(v).(type) {
	case float32:
		return any(x * float32(c)).(T)
	case float64:
		return any(x * c).(T)
	case complex64:
		return any(x * complex(float32(c), 0)).(T)
	default:
		return any(x.(complex128) * complex(c, 0)).(T)
	}
}

// Test data is drawn uniformly from this interval, matching the value range
// the comparison tolerances are calibrated for.
const (
	testDataLowerLimit = -2.0
	testDataUpperLimit = 2.0
)

func randomElem[T algoblas.Element](rng *rand.Rand) T {
	span := testDataUpperLimit - testDataLowerLimit
	re := testDataLowerLimit + span*rng.Float64()
	if !algoblas.PrecisionOf[T]().Complex() {
		return fromFloat[T](re)
	}
	im := testDataLowerLimit + span*rng.Float64()
	var zero T
	if _, ok := any(zero).(complex64); ok {
		return any(complex(float32(re), float32(im))).(T)
	}
	return any(complex(re, im)).(T)
}

// fillRandom fills a host slice with seeded uniform random data.
func fillRandom[T algoblas.Element](dst []T, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range dst {
		dst[i] = randomElem[T](rng)
	}
}

// tolerance returns the per-element comparison tolerance for T. Values are
// calibrated for data in [-2, 2] and independently-sourced kernels.
func tolerance[T algoblas.Element]() float64 {
	switch algoblas.PrecisionOf[T]() {
	case algoblas.PrecisionSingle, algoblas.PrecisionComplexSingle:
		return 1e-3
	default:
		return 1e-9
	}
}

// exampleScalars returns the alpha/beta values exercised by the tester. The
// full set adds the identity-like corner cases.
func exampleScalars[T algoblas.Element](full bool) []T {
	if !full {
		return []T{exampleScalar[T]()}
	}
	return []T{fromFloat[T](0), fromFloat[T](1), exampleScalar[T]()}
}

func exampleScalar[T algoblas.Element]() T {
	if !algoblas.PrecisionOf[T]().Complex() {
		return fromFloat[T](3.14)
	}
	var zero T
	if _, ok := any(zero).(complex64); ok {
		return any(complex(float32(2.42), float32(3.14))).(T)
	}
	return any(complex(2.42, 3.14)).(T)
}
