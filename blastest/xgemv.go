package blastest

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
	"github.com/cwbudde/algo-blas/routines"
)

// Xgemv describes the matrix-vector product y := alpha*op(A)*x + beta*y.
type Xgemv[T algoblas.Element] struct {
	RoutineBase[T]
}

func (Xgemv[T]) Name() string   { return "xgemv" }
func (Xgemv[T]) BLASLevel() int { return 2 }

func (Xgemv[T]) Options() []string {
	return []string{
		ArgM, ArgN,
		ArgLayout, ArgATransp,
		ArgALeadDim, ArgXInc, ArgYInc,
		ArgAOffset, ArgXOffset, ArgYOffset,
		ArgAlpha, ArgBeta,
	}
}

func (Xgemv[T]) BuffersIn() []BufferRole  { return []BufferRole{RoleMatA, RoleVecX, RoleVecY} }
func (Xgemv[T]) BuffersOut() []BufferRole { return []BufferRole{RoleVecY} }

func (Xgemv[T]) GetSizeA(args *Arguments[T]) int {
	// The number of leading-dimension strides depends on which dimension is
	// stored along the major axis.
	aTwo := args.N
	if args.Layout == algoblas.RowMajor {
		aTwo = args.M
	}
	return aTwo*args.ALeadDim + args.AOffset
}

func (Xgemv[T]) GetSizeX(args *Arguments[T]) int {
	nReal := args.N
	if args.ATranspose != algoblas.NoTranspose {
		nReal = args.M
	}
	return nReal*args.XInc + args.XOffset
}

func (Xgemv[T]) GetSizeY(args *Arguments[T]) int {
	mReal := args.M
	if args.ATranspose != algoblas.NoTranspose {
		mReal = args.N
	}
	return mReal*args.YInc + args.YOffset
}

func (r Xgemv[T]) SetSizes(args *Arguments[T]) {
	args.ASize = r.GetSizeA(args)
	args.XSize = r.GetSizeX(args)
	args.YSize = r.GetSizeY(args)
}

func (Xgemv[T]) DefaultLDA(args *Arguments[T]) (int, bool) {
	if args.Layout == algoblas.RowMajor {
		return args.N, true
	}
	return args.M, true
}

func (Xgemv[T]) ATransposes(candidates []algoblas.Transpose) []algoblas.Transpose {
	return candidates
}

func (r Xgemv[T]) RunRoutine(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	status := routines.Gemv[T](args.Layout, args.ATranspose,
		args.M, args.N, args.Alpha,
		bufs.A, args.AOffset, args.ALeadDim,
		bufs.X, args.XOffset, args.XInc, args.Beta,
		bufs.Y, args.YOffset, args.YInc,
		q)
	return finishRun(status, q)
}

// RunReference2 runs the pure-Go gonum kernel on host copies of the buffers.
func (r Xgemv[T]) RunReference2(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(referenceImpl, args, bufs, q)
}

func (Xgemv[T]) hostReference(impl hostblas.Implementation, args *Arguments[T], bufs *Buffers[T], q device.Queue) (status algoblas.StatusCode) {
	defer guardReference(&status)
	av, status := downloadBuffer[T](bufs.A, q, args.ASize, algoblas.StatusInvalidMatrixA)
	if !status.OK() {
		return status
	}
	xv, status := downloadBuffer[T](bufs.X, q, args.XSize, algoblas.StatusInvalidVectorX)
	if !status.OK() {
		return status
	}
	yv, status := downloadBuffer[T](bufs.Y, q, args.YSize, algoblas.StatusInvalidVectorY)
	if !status.OK() {
		return status
	}
	hostblas.Gemv(impl, args.Layout, args.ATranspose,
		args.M, args.N, args.Alpha,
		av, args.AOffset, args.ALeadDim,
		xv, args.XOffset, args.XInc, args.Beta,
		yv, args.YOffset, args.YInc)
	if bufs.Y.Write(q, args.YSize, yv) != nil {
		return algoblas.StatusInvalidVectorY
	}
	return algoblas.StatusSuccess
}

func (Xgemv[T]) DownloadResult(args *Arguments[T], bufs *Buffers[T], q device.Queue) ([]T, algoblas.StatusCode) {
	return downloadBuffer[T](bufs.Y, q, args.YSize, algoblas.StatusInvalidVectorY)
}

func (Xgemv[T]) ResultID1(args *Arguments[T]) int {
	if args.ATranspose != algoblas.NoTranspose {
		return args.N
	}
	return args.M
}

func (Xgemv[T]) ResultID2(*Arguments[T]) int { return 1 }

func (Xgemv[T]) ResultIndex(args *Arguments[T], id1, _ int) int {
	return id1*args.YInc + args.YOffset
}

func (Xgemv[T]) Flops(args *Arguments[T]) int64 {
	return 2 * int64(args.M) * int64(args.N)
}

func (Xgemv[T]) Bytes(args *Arguments[T]) int64 {
	m, n := int64(args.M), int64(args.N)
	return (m*n + 2*m + n) * int64(algoblas.PrecisionOf[T]().ElemSize())
}

func init() {
	registerRoutine(entryFor[Xgemv[float32], Xgemv[float64], Xgemv[complex64], Xgemv[complex128]]("xgemv"))
}
