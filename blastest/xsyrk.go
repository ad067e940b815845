package blastest

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
	"github.com/cwbudde/algo-blas/routines"
)

// Xsyrk describes the rank-k update C := alpha*op(A)*op(A)^T + beta*C on the
// stored triangle of C. C is updated in place.
type Xsyrk[T algoblas.Element] struct {
	RoutineBase[T]
}

func (Xsyrk[T]) Name() string   { return "xsyrk" }
func (Xsyrk[T]) BLASLevel() int { return 3 }

func (Xsyrk[T]) Options() []string {
	return []string{
		ArgN, ArgK,
		ArgLayout, ArgTriangle, ArgATransp,
		ArgALeadDim, ArgCLeadDim,
		ArgAOffset, ArgCOffset,
		ArgAlpha, ArgBeta,
	}
}

func (Xsyrk[T]) BuffersIn() []BufferRole  { return []BufferRole{RoleMatA, RoleMatC} }
func (Xsyrk[T]) BuffersOut() []BufferRole { return []BufferRole{RoleMatC} }

// storedADims returns the stored (rows, cols) of A given the transpose mode.
func (Xsyrk[T]) storedADims(args *Arguments[T]) (int, int) {
	if args.ATranspose != algoblas.NoTranspose {
		return args.K, args.N
	}
	return args.N, args.K
}

func (r Xsyrk[T]) GetSizeA(args *Arguments[T]) int {
	rows, cols := r.storedADims(args)
	aTwo := cols
	if args.Layout == algoblas.RowMajor {
		aTwo = rows
	}
	return aTwo*args.ALeadDim + args.AOffset
}

func (Xsyrk[T]) GetSizeC(args *Arguments[T]) int {
	return args.N*args.CLeadDim + args.COffset
}

func (r Xsyrk[T]) SetSizes(args *Arguments[T]) {
	args.ASize = r.GetSizeA(args)
	args.CSize = r.GetSizeC(args)
}

func (r Xsyrk[T]) DefaultLDA(args *Arguments[T]) (int, bool) {
	rows, cols := r.storedADims(args)
	if args.Layout == algoblas.RowMajor {
		return cols, true
	}
	return rows, true
}

func (Xsyrk[T]) DefaultLDC(args *Arguments[T]) (int, bool) { return args.N, true }

// ATransposes keeps the plain modes only: a conjugate transpose is not
// defined for the symmetric rank-k update.
func (Xsyrk[T]) ATransposes(candidates []algoblas.Transpose) []algoblas.Transpose {
	var out []algoblas.Transpose
	for _, t := range candidates {
		if t != algoblas.Conjugate {
			out = append(out, t)
		}
	}
	return out
}

func (r Xsyrk[T]) RunRoutine(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	status := routines.Syrk[T](args.Layout, args.Triangle, args.ATranspose,
		args.N, args.K, args.Alpha,
		bufs.A, args.AOffset, args.ALeadDim, args.Beta,
		bufs.C, args.COffset, args.CLeadDim,
		q)
	return finishRun(status, q)
}

// RunReference2 runs the pure-Go gonum kernel on host copies of the buffers.
func (r Xsyrk[T]) RunReference2(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(referenceImpl, args, bufs, q)
}

func (Xsyrk[T]) hostReference(impl hostblas.Implementation, args *Arguments[T], bufs *Buffers[T], q device.Queue) (status algoblas.StatusCode) {
	defer guardReference(&status)
	av, status := downloadBuffer[T](bufs.A, q, args.ASize, algoblas.StatusInvalidMatrixA)
	if !status.OK() {
		return status
	}
	cv, status := downloadBuffer[T](bufs.C, q, args.CSize, algoblas.StatusInvalidMatrixC)
	if !status.OK() {
		return status
	}
	hostblas.Syrk(impl, args.Layout, args.Triangle, args.ATranspose,
		args.N, args.K, args.Alpha,
		av, args.AOffset, args.ALeadDim, args.Beta,
		cv, args.COffset, args.CLeadDim)
	if bufs.C.Write(q, args.CSize, cv) != nil {
		return algoblas.StatusInvalidMatrixC
	}
	return algoblas.StatusSuccess
}

func (Xsyrk[T]) DownloadResult(args *Arguments[T], bufs *Buffers[T], q device.Queue) ([]T, algoblas.StatusCode) {
	return downloadBuffer[T](bufs.C, q, args.CSize, algoblas.StatusInvalidMatrixC)
}

func (Xsyrk[T]) ResultID1(args *Arguments[T]) int { return args.N }
func (Xsyrk[T]) ResultID2(args *Arguments[T]) int { return args.N }

func (Xsyrk[T]) ResultIndex(args *Arguments[T], id1, id2 int) int {
	return id1*args.CLeadDim + id2 + args.COffset
}

func (Xsyrk[T]) Flops(args *Arguments[T]) int64 {
	n, k := int64(args.N), int64(args.K)
	return 2 * n * n * k
}

func (Xsyrk[T]) Bytes(args *Arguments[T]) int64 {
	n, k := int64(args.N), int64(args.K)
	return (n*k + n*n) * int64(algoblas.PrecisionOf[T]().ElemSize())
}

func init() {
	registerRoutine(entryFor[Xsyrk[float32], Xsyrk[float64], Xsyrk[complex64], Xsyrk[complex128]]("xsyrk"))
}
