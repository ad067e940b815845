package blastest

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
	"github.com/cwbudde/algo-blas/routines"
)

// Xtrsv describes the triangular solve op(A)*x = b, overwriting x with the
// solution. Uniform random input would make the system arbitrarily
// ill-conditioned, so PrepareData reshapes it into a diagonally dominant one.
type Xtrsv[T algoblas.Element] struct {
	RoutineBase[T]
}

func (Xtrsv[T]) Name() string   { return "xtrsv" }
func (Xtrsv[T]) BLASLevel() int { return 2 }

func (Xtrsv[T]) Options() []string {
	return []string{
		ArgN,
		ArgLayout, ArgTriangle, ArgATransp, ArgDiagonal,
		ArgALeadDim, ArgXInc,
		ArgAOffset, ArgXOffset,
	}
}

func (Xtrsv[T]) BuffersIn() []BufferRole  { return []BufferRole{RoleMatA, RoleVecX} }
func (Xtrsv[T]) BuffersOut() []BufferRole { return []BufferRole{RoleVecX} }

func (Xtrsv[T]) GetSizeX(args *Arguments[T]) int {
	return args.N*args.XInc + args.XOffset
}

func (Xtrsv[T]) GetSizeA(args *Arguments[T]) int {
	return args.N*args.ALeadDim + args.AOffset
}

func (r Xtrsv[T]) SetSizes(args *Arguments[T]) {
	args.ASize = r.GetSizeA(args)
	args.XSize = r.GetSizeX(args)
}

func (Xtrsv[T]) DefaultLDA(args *Arguments[T]) (int, bool) { return args.N, true }

func (Xtrsv[T]) ATransposes(candidates []algoblas.Transpose) []algoblas.Transpose {
	return candidates
}

// PrepareData scales the matrix rows down and boosts the diagonal so the
// triangular system stays well-conditioned, halving the right-hand side to
// keep solution magnitudes in the comparison range.
func (Xtrsv[T]) PrepareData(args *Arguments[T], q device.Queue, _ int64, bufs *Buffers[T]) error {
	if args.ALeadDim < args.N {
		return nil
	}
	av := make([]T, args.ASize)
	if err := bufs.A.Read(q, args.ASize, av); err != nil {
		return err
	}
	xv := make([]T, args.XSize)
	if err := bufs.X.Read(q, args.XSize, xv); err != nil {
		return err
	}
	for i := 0; i < args.N; i++ {
		diagIdx := i*args.ALeadDim + i + args.AOffset
		diagonal := fromFloat[T](absOf(av[diagIdx]) + float64(args.N/4))
		for j := 0; j < args.N; j++ {
			idx := j*args.ALeadDim + i + args.AOffset
			av[idx] = scaleFloat(av[idx], 0.5)
		}
		av[diagIdx] = diagonal
		xIdx := i*args.XInc + args.XOffset
		xv[xIdx] = scaleFloat(xv[xIdx], 0.5)
	}
	if err := bufs.A.Write(q, args.ASize, av); err != nil {
		return err
	}
	return bufs.X.Write(q, args.XSize, xv)
}

func (r Xtrsv[T]) RunRoutine(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	status := routines.Trsv[T](args.Layout, args.Triangle, args.ATranspose, args.Diagonal,
		args.N,
		bufs.A, args.AOffset, args.ALeadDim,
		bufs.X, args.XOffset, args.XInc,
		q)
	return finishRun(status, q)
}

// RunReference2 runs the pure-Go gonum kernel on host copies of the buffers.
func (r Xtrsv[T]) RunReference2(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(referenceImpl, args, bufs, q)
}

func (Xtrsv[T]) hostReference(impl hostblas.Implementation, args *Arguments[T], bufs *Buffers[T], q device.Queue) (status algoblas.StatusCode) {
	defer guardReference(&status)
	av, status := downloadBuffer[T](bufs.A, q, args.ASize, algoblas.StatusInvalidMatrixA)
	if !status.OK() {
		return status
	}
	xv, status := downloadBuffer[T](bufs.X, q, args.XSize, algoblas.StatusInvalidVectorX)
	if !status.OK() {
		return status
	}
	hostblas.Trsv(impl, args.Layout, args.Triangle, args.ATranspose, args.Diagonal,
		args.N,
		av, args.AOffset, args.ALeadDim,
		xv, args.XOffset, args.XInc)
	if bufs.X.Write(q, args.XSize, xv) != nil {
		return algoblas.StatusInvalidVectorX
	}
	return algoblas.StatusSuccess
}

func (Xtrsv[T]) DownloadResult(args *Arguments[T], bufs *Buffers[T], q device.Queue) ([]T, algoblas.StatusCode) {
	return downloadBuffer[T](bufs.X, q, args.XSize, algoblas.StatusInvalidVectorX)
}

func (Xtrsv[T]) ResultID1(args *Arguments[T]) int { return args.N }
func (Xtrsv[T]) ResultID2(*Arguments[T]) int      { return 1 }

func (Xtrsv[T]) ResultIndex(args *Arguments[T], id1, _ int) int {
	return id1*args.XInc + args.XOffset
}

func (Xtrsv[T]) Flops(args *Arguments[T]) int64 {
	n := int64(args.N)
	return 2 * n * n
}

func (Xtrsv[T]) Bytes(args *Arguments[T]) int64 {
	n := int64(args.N)
	return (n*n + 3*n) * int64(algoblas.PrecisionOf[T]().ElemSize())
}

func init() {
	registerRoutine(entryFor[Xtrsv[float32], Xtrsv[float64], Xtrsv[complex64], Xtrsv[complex128]]("xtrsv"))
}
