package algoblas

import (
	"errors"
	"testing"
)

func TestPrecisionOf(t *testing.T) {
	t.Parallel()
	if p := PrecisionOf[float32](); p != PrecisionSingle || p.Complex() || p.ElemSize() != 4 {
		t.Fatalf("float32: %v", p)
	}
	if p := PrecisionOf[float64](); p != PrecisionDouble || p.ElemSize() != 8 {
		t.Fatalf("float64: %v", p)
	}
	if p := PrecisionOf[complex64](); p != PrecisionComplexSingle || !p.Complex() || p.ElemSize() != 8 {
		t.Fatalf("complex64: %v", p)
	}
	if p := PrecisionOf[complex128](); p != PrecisionComplexDouble || !p.Complex() || p.ElemSize() != 16 {
		t.Fatalf("complex128: %v", p)
	}
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		RowMajor.String():    "rowmajor",
		ColMajor.String():    "colmajor",
		NoTranspose.String(): "notransposed",
		Conjugate.String():   "conjugate",
		Upper.String():       "upper",
		Lower.String():       "lower",
		Left.String():        "left",
		Right.String():       "right",
		Unit.String():        "unit",
		NonUnit.String():     "nonunit",
	}
	for got, want := range cases {
		if got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestStatusCode(t *testing.T) {
	t.Parallel()
	if !StatusSuccess.OK() {
		t.Fatal("success should be OK")
	}
	if StatusInvalidLeadDimA.OK() {
		t.Fatal("error codes are not OK")
	}
	if StatusInvalidLeadDimA.String() != "invalid leading dimension of A" {
		t.Fatalf("String() = %q", StatusInvalidLeadDimA.String())
	}
	if StatusCode(-7).String() != "unknown error" {
		t.Fatalf("unmapped code: %q", StatusCode(-7).String())
	}
}

func TestTranslateError(t *testing.T) {
	t.Parallel()
	if TranslateError(nil) != StatusSuccess {
		t.Fatal("nil error must be success")
	}
	if TranslateError(errors.New("boom")) != StatusUnknownError {
		t.Fatal("unrecognized errors map to the unknown code")
	}
}
