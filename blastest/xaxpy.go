package blastest

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
	"github.com/cwbudde/algo-blas/routines"
)

// Xaxpy describes the vector update y := alpha*x + y.
type Xaxpy[T algoblas.Element] struct {
	RoutineBase[T]
}

func (Xaxpy[T]) Name() string   { return "xaxpy" }
func (Xaxpy[T]) BLASLevel() int { return 1 }

func (Xaxpy[T]) Options() []string {
	return []string{
		ArgN,
		ArgXInc, ArgYInc,
		ArgXOffset, ArgYOffset,
		ArgAlpha,
	}
}

func (Xaxpy[T]) BuffersIn() []BufferRole  { return []BufferRole{RoleVecX, RoleVecY} }
func (Xaxpy[T]) BuffersOut() []BufferRole { return []BufferRole{RoleVecY} }

func (Xaxpy[T]) GetSizeX(args *Arguments[T]) int {
	return args.N*args.XInc + args.XOffset
}

func (Xaxpy[T]) GetSizeY(args *Arguments[T]) int {
	return args.N*args.YInc + args.YOffset
}

func (r Xaxpy[T]) SetSizes(args *Arguments[T]) {
	args.XSize = r.GetSizeX(args)
	args.YSize = r.GetSizeY(args)
}

func (r Xaxpy[T]) RunRoutine(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	status := routines.Axpy[T](args.N, args.Alpha,
		bufs.X, args.XOffset, args.XInc,
		bufs.Y, args.YOffset, args.YInc,
		q)
	return finishRun(status, q)
}

// RunReference2 runs the pure-Go gonum kernel on host copies of the buffers.
func (r Xaxpy[T]) RunReference2(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(referenceImpl, args, bufs, q)
}

func (Xaxpy[T]) hostReference(impl hostblas.Implementation, args *Arguments[T], bufs *Buffers[T], q device.Queue) (status algoblas.StatusCode) {
	defer guardReference(&status)
	xv, status := downloadBuffer[T](bufs.X, q, args.XSize, algoblas.StatusInvalidVectorX)
	if !status.OK() {
		return status
	}
	yv, status := downloadBuffer[T](bufs.Y, q, args.YSize, algoblas.StatusInvalidVectorY)
	if !status.OK() {
		return status
	}
	hostblas.Axpy(impl, args.N, args.Alpha, xv, args.XOffset, args.XInc, yv, args.YOffset, args.YInc)
	if bufs.Y.Write(q, args.YSize, yv) != nil {
		return algoblas.StatusInvalidVectorY
	}
	return algoblas.StatusSuccess
}

func (Xaxpy[T]) DownloadResult(args *Arguments[T], bufs *Buffers[T], q device.Queue) ([]T, algoblas.StatusCode) {
	return downloadBuffer[T](bufs.Y, q, args.YSize, algoblas.StatusInvalidVectorY)
}

func (Xaxpy[T]) ResultID1(args *Arguments[T]) int { return args.N }
func (Xaxpy[T]) ResultID2(*Arguments[T]) int      { return 1 }

func (Xaxpy[T]) ResultIndex(args *Arguments[T], id1, _ int) int {
	return id1*args.YInc + args.YOffset
}

func (Xaxpy[T]) Flops(args *Arguments[T]) int64 {
	return 2 * int64(args.N)
}

func (Xaxpy[T]) Bytes(args *Arguments[T]) int64 {
	return 3 * int64(args.N) * int64(algoblas.PrecisionOf[T]().ElemSize())
}

func init() {
	registerRoutine(entryFor[Xaxpy[float32], Xaxpy[float64], Xaxpy[complex64], Xaxpy[complex128]]("xaxpy"))
}
