package blastest

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
	"github.com/cwbudde/algo-blas/routines"
)

// XaxpyBatched describes the batched vector update y_b := alpha_b*x_b + y_b.
// All batches live in the shared x and y buffers at per-batch offsets, and
// every batch gets its own alpha derived from the base value. Although not a
// standard BLAS routine, it is tested like a level-1 routine with the batch
// index as the second result axis.
type XaxpyBatched[T algoblas.Element] struct {
	RoutineBase[T]
}

func (XaxpyBatched[T]) Name() string   { return "xaxpybatched" }
func (XaxpyBatched[T]) BLASLevel() int { return 1 }

func (XaxpyBatched[T]) Options() []string {
	return []string{
		ArgN,
		ArgXInc, ArgYInc,
		ArgAlpha, ArgBatchCount,
	}
}

func (XaxpyBatched[T]) BuffersIn() []BufferRole  { return []BufferRole{RoleVecX, RoleVecY} }
func (XaxpyBatched[T]) BuffersOut() []BufferRole { return []BufferRole{RoleVecY} }

// BatchAlpha derives the per-batch scalar from the base alpha.
func (XaxpyBatched[T]) BatchAlpha(alphaBase T, batch int) T {
	return addFloat(alphaBase, float64(batch))
}

func (XaxpyBatched[T]) GetSizeX(args *Arguments[T]) int {
	return args.N * args.XInc * args.BatchCount
}

func (XaxpyBatched[T]) GetSizeY(args *Arguments[T]) int {
	return args.N * args.YInc * args.BatchCount
}

func (r XaxpyBatched[T]) SetSizes(args *Arguments[T]) {
	args.XSize = r.GetSizeX(args)
	args.YSize = r.GetSizeY(args)
}

func (r XaxpyBatched[T]) batchParams(args *Arguments[T]) (alphas []T, xOffs, yOffs []int) {
	alphas = make([]T, args.BatchCount)
	xOffs = make([]int, args.BatchCount)
	yOffs = make([]int, args.BatchCount)
	for b := 0; b < args.BatchCount; b++ {
		alphas[b] = r.BatchAlpha(args.Alpha, b)
		xOffs[b] = b * args.N * args.XInc
		yOffs[b] = b * args.N * args.YInc
	}
	return alphas, xOffs, yOffs
}

func (r XaxpyBatched[T]) RunRoutine(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	alphas, xOffs, yOffs := r.batchParams(args)
	status := routines.AxpyBatched[T](args.N, alphas,
		bufs.X, xOffs, args.XInc,
		bufs.Y, yOffs, args.YInc,
		args.BatchCount, q)
	return finishRun(status, q)
}

// RunReference2 runs the pure-Go gonum kernel batch by batch on host copies.
func (r XaxpyBatched[T]) RunReference2(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(referenceImpl, args, bufs, q)
}

func (r XaxpyBatched[T]) hostReference(impl hostblas.Implementation, args *Arguments[T], bufs *Buffers[T], q device.Queue) (status algoblas.StatusCode) {
	defer guardReference(&status)
	xv, status := downloadBuffer[T](bufs.X, q, args.XSize, algoblas.StatusInvalidVectorX)
	if !status.OK() {
		return status
	}
	yv, status := downloadBuffer[T](bufs.Y, q, args.YSize, algoblas.StatusInvalidVectorY)
	if !status.OK() {
		return status
	}
	alphas, xOffs, yOffs := r.batchParams(args)
	for b := 0; b < args.BatchCount; b++ {
		hostblas.Axpy(impl, args.N, alphas[b], xv, xOffs[b], args.XInc, yv, yOffs[b], args.YInc)
	}
	if bufs.Y.Write(q, args.YSize, yv) != nil {
		return algoblas.StatusInvalidVectorY
	}
	return algoblas.StatusSuccess
}

func (XaxpyBatched[T]) DownloadResult(args *Arguments[T], bufs *Buffers[T], q device.Queue) ([]T, algoblas.StatusCode) {
	return downloadBuffer[T](bufs.Y, q, args.YSize, algoblas.StatusInvalidVectorY)
}

func (XaxpyBatched[T]) ResultID1(args *Arguments[T]) int { return args.N }
func (XaxpyBatched[T]) ResultID2(args *Arguments[T]) int { return args.BatchCount }

func (XaxpyBatched[T]) ResultIndex(args *Arguments[T], id1, id2 int) int {
	return id2*args.N*args.YInc + id1*args.YInc
}

func (XaxpyBatched[T]) Flops(args *Arguments[T]) int64 {
	return 2 * int64(args.N) * int64(args.BatchCount)
}

func (XaxpyBatched[T]) Bytes(args *Arguments[T]) int64 {
	return 3 * int64(args.N) * int64(args.BatchCount) * int64(algoblas.PrecisionOf[T]().ElemSize())
}

func init() {
	registerRoutine(entryFor[XaxpyBatched[float32], XaxpyBatched[float64], XaxpyBatched[complex64], XaxpyBatched[complex128]]("xaxpybatched"))
}
