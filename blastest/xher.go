package blastest

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
	"github.com/cwbudde/algo-blas/routines"
)

// Xher describes the rank-1 hermitian update A := alpha*x*x^H + A (the
// symmetric update SYR for real element types). A is updated in place, so the
// matrix role appears in both buffer sets.
type Xher[T algoblas.Element] struct {
	RoutineBase[T]
}

func (Xher[T]) Name() string   { return "xher" }
func (Xher[T]) BLASLevel() int { return 2 }

func (Xher[T]) Options() []string {
	return []string{
		ArgN,
		ArgLayout, ArgTriangle,
		ArgALeadDim, ArgXInc,
		ArgAOffset, ArgXOffset,
		ArgAlpha,
	}
}

func (Xher[T]) BuffersIn() []BufferRole  { return []BufferRole{RoleMatA, RoleVecX} }
func (Xher[T]) BuffersOut() []BufferRole { return []BufferRole{RoleMatA} }

func (Xher[T]) GetSizeX(args *Arguments[T]) int {
	return args.N*args.XInc + args.XOffset
}

func (Xher[T]) GetSizeA(args *Arguments[T]) int {
	return args.N*args.ALeadDim + args.AOffset
}

func (r Xher[T]) SetSizes(args *Arguments[T]) {
	args.ASize = r.GetSizeA(args)
	args.XSize = r.GetSizeX(args)
}

func (Xher[T]) DefaultLDA(args *Arguments[T]) (int, bool) { return args.N, true }

func (r Xher[T]) RunRoutine(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	status := routines.Her[T](args.Layout, args.Triangle,
		args.N, realOf(args.Alpha),
		bufs.X, args.XOffset, args.XInc,
		bufs.A, args.AOffset, args.ALeadDim,
		q)
	return finishRun(status, q)
}

// RunReference2 runs the pure-Go gonum kernel on host copies of the buffers.
func (r Xher[T]) RunReference2(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(referenceImpl, args, bufs, q)
}

func (Xher[T]) hostReference(impl hostblas.Implementation, args *Arguments[T], bufs *Buffers[T], q device.Queue) (status algoblas.StatusCode) {
	defer guardReference(&status)
	xv, status := downloadBuffer[T](bufs.X, q, args.XSize, algoblas.StatusInvalidVectorX)
	if !status.OK() {
		return status
	}
	av, status := downloadBuffer[T](bufs.A, q, args.ASize, algoblas.StatusInvalidMatrixA)
	if !status.OK() {
		return status
	}
	hostblas.Her(impl, args.Layout, args.Triangle,
		args.N, realOf(args.Alpha),
		xv, args.XOffset, args.XInc,
		av, args.AOffset, args.ALeadDim)
	if bufs.A.Write(q, args.ASize, av) != nil {
		return algoblas.StatusInvalidMatrixA
	}
	return algoblas.StatusSuccess
}

func (Xher[T]) DownloadResult(args *Arguments[T], bufs *Buffers[T], q device.Queue) ([]T, algoblas.StatusCode) {
	return downloadBuffer[T](bufs.A, q, args.ASize, algoblas.StatusInvalidMatrixA)
}

func (Xher[T]) ResultID1(args *Arguments[T]) int { return args.N }
func (Xher[T]) ResultID2(args *Arguments[T]) int { return args.N }

func (Xher[T]) ResultIndex(args *Arguments[T], id1, id2 int) int {
	return id2*args.ALeadDim + id1 + args.AOffset
}

func (Xher[T]) Flops(args *Arguments[T]) int64 {
	n := int64(args.N)
	return 3 * n * n
}

func (Xher[T]) Bytes(args *Arguments[T]) int64 {
	n := int64(args.N)
	return (n*n + n) * int64(algoblas.PrecisionOf[T]().ElemSize())
}

func init() {
	registerRoutine(entryFor[Xher[float32], Xher[float64], Xher[complex64], Xher[complex128]]("xher"))
}
