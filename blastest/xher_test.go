package blastest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
)

func TestXherSizes(t *testing.T) {
	t.Parallel()
	r := Xher[float32]{}

	tests := []struct {
		name          string
		n, xInc, xOff int
		lda, aOff     int
		wantX, wantA  int
	}{
		{"unit strides", 4, 1, 0, 4, 0, 4, 16},
		{"strided offset x", 5, 3, 2, 5, 0, 17, 25},
		{"padded lda and offset a", 4, 1, 0, 7, 3, 4, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			args := NewArguments[float32]()
			args.N = tt.n
			args.XInc = tt.xInc
			args.XOffset = tt.xOff
			args.ALeadDim = tt.lda
			args.AOffset = tt.aOff

			assert.Equal(t, tt.wantX, r.GetSizeX(&args))
			assert.Equal(t, tt.wantA, r.GetSizeA(&args))

			r.SetSizes(&args)
			assert.Equal(t, tt.wantX, args.XSize)
			assert.Equal(t, tt.wantA, args.ASize)

			// Rerunning must not change anything.
			r.SetSizes(&args)
			assert.Equal(t, tt.wantX, args.XSize)
			assert.Equal(t, tt.wantA, args.ASize)
		})
	}
}

func TestXherCostModel(t *testing.T) {
	t.Parallel()
	args := NewArguments[float32]()
	args.N = 4
	args.ALeadDim = 4

	assert.Equal(t, int64(48), Xher[float32]{}.Flops(&args))
	assert.Equal(t, int64(80), Xher[float32]{}.Bytes(&args))

	cargs := NewArguments[complex64]()
	cargs.N = 4
	cargs.ALeadDim = 4
	assert.Equal(t, int64(48), Xher[complex64]{}.Flops(&cargs))
	assert.Equal(t, int64(160), Xher[complex64]{}.Bytes(&cargs))
}

func TestXherDefaultLeadDim(t *testing.T) {
	t.Parallel()
	args := NewArguments[float64]()
	args.N = 9
	ld, ok := Xher[float64]{}.DefaultLDA(&args)
	require.True(t, ok)
	assert.Equal(t, 9, ld)

	_, ok = Xher[float64]{}.DefaultLDB(&args)
	assert.False(t, ok)
	_, ok = Xher[float64]{}.DefaultLDC(&args)
	assert.False(t, ok)
}

func TestXherResultIndexStaysInBuffer(t *testing.T) {
	t.Parallel()
	r := Xher[float64]{}
	args := NewArguments[float64]()
	args.N = 6
	args.ALeadDim = 8
	args.AOffset = 5
	r.SetSizes(&args)

	for id2 := 0; id2 < r.ResultID2(&args); id2++ {
		for id1 := 0; id1 < r.ResultID1(&args); id1++ {
			idx := r.ResultIndex(&args, id1, id2)
			require.GreaterOrEqual(t, idx, args.AOffset)
			require.Less(t, idx, args.ASize)
		}
	}
}

// TestXherAgainstManualUpdate runs the routine on the mock device and checks
// the stored triangle against a plain rank-1 loop, including that the other
// triangle stays untouched.
func TestXherAgainstManualUpdate(t *testing.T) {
	t.Parallel()
	ctx, err := device.NewContext(0)
	require.NoError(t, err)
	defer ctx.Close()
	q, err := ctx.NewQueue()
	require.NoError(t, err)
	defer q.Close()

	r := Xher[float64]{}
	args := NewArguments[float64]()
	args.N = 3
	args.ALeadDim = 3
	args.Alpha = 2
	args.Triangle = algoblas.Upper
	r.SetSizes(&args)

	x := []float64{1, 2, 3}
	a := []float64{
		1, 1, 1,
		9, 1, 1,
		9, 9, 1,
	}
	bufs, err := AllocateBuffers(ctx, &args)
	require.NoError(t, err)
	defer bufs.Close()
	require.NoError(t, bufs.X.Write(q, len(x), x))
	require.NoError(t, bufs.A.Write(q, len(a), a))

	status := r.RunRoutine(&args, bufs, q)
	require.True(t, status.OK(), "status %v", status)

	got, status := r.DownloadResult(&args, bufs, q)
	require.True(t, status.OK())

	want := append([]float64(nil), a...)
	for i := 0; i < args.N; i++ {
		for j := i; j < args.N; j++ {
			want[i*args.ALeadDim+j] += 2 * x[i] * x[j]
		}
	}
	assert.Equal(t, want, got)
}

func TestXherBufferRoles(t *testing.T) {
	t.Parallel()
	r := Xher[complex128]{}
	assert.Equal(t, []BufferRole{RoleMatA, RoleVecX}, r.BuffersIn())
	assert.Equal(t, []BufferRole{RoleMatA}, r.BuffersOut())
	assert.Equal(t, 2, r.BLASLevel())
	assert.Nil(t, r.ATransposes([]algoblas.Transpose{algoblas.NoTranspose, algoblas.Yes}))
}
