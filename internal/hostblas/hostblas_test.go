package hostblas

import (
	"math"
	"testing"

	algoblas "github.com/cwbudde/algo-blas"
)

func TestGatherScatterVector(t *testing.T) {
	t.Parallel()
	src := []float64{9, 9, 1, 9, 9, 2, 9, 9, 3}
	got := gatherVector(src, 2, 3, 3)
	want := []float64{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("gather[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	dst := make([]float64, len(src))
	scatterVector(dst, 2, 3, 3, []float64{4, 5, 6})
	if dst[2] != 4 || dst[5] != 5 || dst[8] != 6 {
		t.Fatalf("scatter result %v", dst)
	}
	if dst[0] != 0 || dst[3] != 0 {
		t.Fatalf("scatter touched non-strided slots: %v", dst)
	}
}

func TestGatherMatrixLayouts(t *testing.T) {
	t.Parallel()
	// Logical 2x3 matrix {{1,2,3},{4,5,6}}.
	dense := []float64{1, 2, 3, 4, 5, 6}

	rowMajor := []float64{0, 1, 2, 3, 9, 4, 5, 6, 9} // off=1, ld=4
	got := gatherMatrix(rowMajor, 1, 4, algoblas.RowMajor, 2, 3)
	for i := range dense {
		if got[i] != dense[i] {
			t.Fatalf("row-major gather = %v", got)
		}
	}

	colMajor := []float64{0, 1, 4, 9, 2, 5, 9, 3, 6, 9} // off=1, ld=3
	got = gatherMatrix(colMajor, 1, 3, algoblas.ColMajor, 2, 3)
	for i := range dense {
		if got[i] != dense[i] {
			t.Fatalf("col-major gather = %v", got)
		}
	}

	// Scatter must invert gather and leave padding untouched.
	dst := append([]float64(nil), colMajor...)
	scatterMatrix(dst, 1, 3, algoblas.ColMajor, 2, 3, dense)
	for i := range colMajor {
		if dst[i] != colMajor[i] {
			t.Fatalf("col-major scatter changed slot %d: %v", i, dst)
		}
	}
}

func TestHerMatchesManualLoop(t *testing.T) {
	t.Parallel()
	impl := Default()
	const n, ld = 3, 4
	x := []float64{1, -1, 2}
	init := make([]float64, n*ld)
	for i := range init {
		init[i] = float64(i)
	}

	for _, layout := range []algoblas.Layout{algoblas.RowMajor, algoblas.ColMajor} {
		a := append([]float64(nil), init...)
		Her(impl, layout, algoblas.Upper, n, 0.5, x, 0, 1, a, 0, ld)

		at := func(i, j int) float64 {
			if layout == algoblas.RowMajor {
				return a[i*ld+j]
			}
			return a[j*ld+i]
		}
		atInit := func(i, j int) float64 {
			if layout == algoblas.RowMajor {
				return init[i*ld+j]
			}
			return init[j*ld+i]
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				want := atInit(i, j)
				if i <= j {
					want += 0.5 * x[i] * x[j]
				}
				if math.Abs(at(i, j)-want) > 1e-12 {
					t.Fatalf("layout %v: A[%d,%d] = %v, want %v", layout, i, j, at(i, j), want)
				}
			}
		}
	}
}

func TestAxpyStridedOffsets(t *testing.T) {
	t.Parallel()
	impl := Default()
	x := []float32{0, 1, 2, 3}
	y := []float32{9, 9, 10, 20}
	Axpy[float32](impl, 2, 2, x, 1, 2, y, 2, 1)
	if y[2] != 12 || y[3] != 26 {
		t.Fatalf("y = %v", y)
	}
	if y[0] != 9 || y[1] != 9 {
		t.Fatalf("y prefix touched: %v", y)
	}
}

func TestGemvKnownValues(t *testing.T) {
	t.Parallel()
	impl := Default()
	// A = {{1,2,3},{4,5,6}}, column-major with ld=2.
	a := []float64{1, 4, 2, 5, 3, 6}
	x := []float64{1, 1, 1}
	y := []float64{10, 20}

	Gemv(impl, algoblas.ColMajor, algoblas.NoTranspose, 2, 3, 1.0, a, 0, 2, x, 0, 1, 0.5, y, 0, 1)
	if y[0] != 1+2+3+5 || y[1] != 4+5+6+10 {
		t.Fatalf("y = %v", y)
	}

	// Transposed: y (len 3) = A^T * x2.
	x2 := []float64{1, 2}
	y3 := []float64{0, 0, 0}
	Gemv(impl, algoblas.ColMajor, algoblas.Yes, 2, 3, 1.0, a, 0, 2, x2, 0, 1, 0.0, y3, 0, 1)
	if y3[0] != 1+8 || y3[1] != 2+10 || y3[2] != 3+12 {
		t.Fatalf("y3 = %v", y3)
	}
}

func TestTrsvSolves(t *testing.T) {
	t.Parallel()
	impl := Default()
	const n = 4
	// Upper triangular, row-major, dominant diagonal.
	a := []float64{
		4, 1, 0.5, 0.25,
		0, 5, 1, 0.5,
		0, 0, 6, 1,
		0, 0, 0, 7,
	}
	want := []float64{1, -2, 3, -4}

	// b = A*want, then solving must recover want.
	b := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			b[i] += a[i*n+j] * want[j]
		}
	}
	Trsv(impl, algoblas.RowMajor, algoblas.Upper, algoblas.NoTranspose, algoblas.NonUnit, n, a, 0, n, b, 0, 1)
	for i := range want {
		if math.Abs(b[i]-want[i]) > 1e-12 {
			t.Fatalf("x[%d] = %v, want %v", i, b[i], want[i])
		}
	}
}

func TestSyrkKnownValues(t *testing.T) {
	t.Parallel()
	impl := Default()
	// A = {{1,2},{3,4}} row-major, C := 1*A*A^T + 0*C on the lower triangle.
	a := []float64{1, 2, 3, 4}
	c := make([]float64, 4)
	Syrk(impl, algoblas.RowMajor, algoblas.Lower, algoblas.NoTranspose, 2, 2, 1.0, a, 0, 2, 0.0, c, 0, 2)

	// A*A^T = {{5,11},{11,25}}; only the lower triangle is written.
	if c[0] != 5 || c[2] != 11 || c[3] != 25 {
		t.Fatalf("c = %v", c)
	}
	if c[1] != 0 {
		t.Fatalf("upper triangle touched: %v", c)
	}
}
