package blastest

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
)

// testSettings keeps the sweeps small enough for the host-backed mock device.
func testSettings() *Settings {
	return &Settings{
		VectorDims:       []int{17},
		MatrixVectorDims: []int{13},
		MatrixDims:       []int{6},
		Increments:       []int{1, 2},
		Offsets:          []int{0, 3},
		BatchCounts:      []int{2},
		NumRuns:          1,
	}
}

func TestCorrectnessAllRoutines(t *testing.T) {
	t.Parallel()
	precs := []algoblas.Precision{
		algoblas.PrecisionSingle, algoblas.PrecisionDouble,
		algoblas.PrecisionComplexSingle, algoblas.PrecisionComplexDouble,
	}
	for _, name := range Names() {
		for _, prec := range precs {
			t.Run(name+"/"+prec.String(), func(t *testing.T) {
				t.Parallel()
				e, ok := Get(name)
				require.True(t, ok)
				sum, err := e.Test(prec, testSettings(), zerolog.Nop())
				require.NoError(t, err)
				assert.Zero(t, sum.Failed, "summary: %s", sum)
				assert.Zero(t, sum.Skipped, "summary: %s", sum)
				assert.Positive(t, sum.Passed)
			})
		}
	}
}

// skewedAxpy wraps the axpy descriptor with a reference that returns results
// off by one, so a sweep against it must report failures.
type skewedAxpy struct {
	Xaxpy[float32]
}

func (r skewedAxpy) RunReference2(args *Arguments[float32], bufs *Buffers[float32], q device.Queue) algoblas.StatusCode {
	if status := r.Xaxpy.RunReference2(args, bufs, q); !status.OK() {
		return status
	}
	yv := make([]float32, args.YSize)
	if bufs.Y.Read(q, args.YSize, yv) != nil {
		return algoblas.StatusInvalidVectorY
	}
	yv[args.YOffset]++
	if bufs.Y.Write(q, args.YSize, yv) != nil {
		return algoblas.StatusInvalidVectorY
	}
	return algoblas.StatusSuccess
}

func TestCorrectnessFlagsMismatches(t *testing.T) {
	t.Parallel()
	sum, err := RunCorrectness[float32](skewedAxpy{}, testSettings(), zerolog.Nop())
	require.NoError(t, err)
	assert.Positive(t, sum.Failed)
}

func TestGenerateCasesCartesianProduct(t *testing.T) {
	t.Parallel()
	settings := testSettings()
	// xaxpy sweeps n(1) * incx(2) * incy(2) * offx(2) * offy(2) * alpha(1).
	cases := generateCases[float32](Xaxpy[float32]{}, settings)
	assert.Len(t, cases, 16)

	// The full sweep widens alpha to three values.
	settings.Full = true
	cases = generateCases[float32](Xaxpy[float32]{}, settings)
	assert.Len(t, cases, 48)
}

func TestGenerateCasesAssignsLeadDims(t *testing.T) {
	t.Parallel()
	settings := testSettings()
	for _, c := range generateCases[float64](Xher[float64]{}, settings) {
		assert.Equal(t, c.N, c.ALeadDim)
	}

	settings.Full = true
	sawPadded := false
	for _, c := range generateCases[float64](Xher[float64]{}, settings) {
		if c.ALeadDim == c.N+7 {
			sawPadded = true
		} else {
			assert.Equal(t, c.N, c.ALeadDim)
		}
	}
	assert.True(t, sawPadded)
}

func TestTransposeCandidatesPerElemType(t *testing.T) {
	t.Parallel()
	assert.Len(t, transposeCandidates[float64](), 2)
	assert.Len(t, transposeCandidates[complex128](), 3)
	assert.Contains(t, transposeCandidates[complex64](), algoblas.Conjugate)
}

func TestRunBenchmarkMockDevice(t *testing.T) {
	t.Parallel()
	settings := testSettings()
	err := RunBenchmark[float32](Xaxpy[float32]{}, settings, zerolog.Nop())
	require.NoError(t, err)
}

func TestDescribeCase(t *testing.T) {
	t.Parallel()
	args := NewArguments[float32]()
	args.N = 4
	args.ALeadDim = 4
	args.Triangle = algoblas.Lower
	got := describeCase[float32](Xher[float32]{}, &args)
	assert.Contains(t, got, "n=4")
	assert.Contains(t, got, "triangle=lower")
	assert.Contains(t, got, "lda=4")
}
