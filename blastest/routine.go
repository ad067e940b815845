package blastest

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
)

// Routine is the descriptor contract a routine implements to be testable by
// the generic driver. Implementations are stateless empty structs: every
// method is a pure function of the arguments plus the borrowed buffers and
// queue, so one descriptor value can serve any number of concurrent test
// cases as long as each case owns its own Arguments, Buffers and Queue.
//
// RunRoutine must block until device completion before returning; the driver
// downloads results immediately afterwards.
type Routine[T algoblas.Element] interface {
	// Name is the routine identifier used in registration and reports.
	Name() string

	// BLASLevel classifies operand complexity: 1 vector-only, 2
	// matrix-vector, 3 matrix-matrix. The driver selects test scenarios
	// (dimension sets) by level.
	BLASLevel() int

	// Options lists the argument names relevant for this routine, in a fixed
	// order used for sweeping and reporting.
	Options() []string

	// BuffersIn and BuffersOut name the buffer roles the routine reads and
	// writes. A role may appear in both for an in-place update.
	BuffersIn() []BufferRole
	BuffersOut() []BufferRole

	// GetSizeX..GetSizeC compute the minimum element count per buffer role,
	// generally dimension*stride + offset; 0 for roles the routine does not
	// touch. The driver allocates exactly these counts.
	GetSizeX(args *Arguments[T]) int
	GetSizeY(args *Arguments[T]) int
	GetSizeA(args *Arguments[T]) int
	GetSizeB(args *Arguments[T]) int
	GetSizeC(args *Arguments[T]) int

	// SetSizes writes every computed size back into args. Idempotent.
	SetSizes(args *Arguments[T])

	// DefaultLDA..DefaultLDC return the natural leading dimension for each
	// matrix operand, or ok == false when the routine has no such operand.
	DefaultLDA(args *Arguments[T]) (ld int, ok bool)
	DefaultLDB(args *Arguments[T]) (ld int, ok bool)
	DefaultLDC(args *Arguments[T]) (ld int, ok bool)

	// ATransposes and BTransposes filter a candidate set of transpose modes
	// down to the subset meaningful for this routine. An empty result tells
	// the driver to skip transpose variation entirely.
	ATransposes(candidates []algoblas.Transpose) []algoblas.Transpose
	BTransposes(candidates []algoblas.Transpose) []algoblas.Transpose

	// PrepareData constructs routine-specific input beyond uniform random
	// fill (e.g. a solvable triangular system). The no-op default means
	// random data is sufficient.
	PrepareData(args *Arguments[T], q device.Queue, seed int64, bufs *Buffers[T]) error

	// RunRoutine invokes the implementation under test and synchronizes.
	RunRoutine(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode

	// DownloadResult reads the output buffer back to the host, sized exactly
	// to the computed buffer size.
	DownloadResult(args *Arguments[T], bufs *Buffers[T], q device.Queue) ([]T, algoblas.StatusCode)

	// ResultID1 and ResultID2 bound the two logical iteration axes of the
	// comparison loop; an unused axis reports 1.
	ResultID1(args *Arguments[T]) int
	ResultID2(args *Arguments[T]) int

	// ResultIndex maps a logical (id1, id2) pair to the linear offset within
	// the downloaded result, honoring leading dimension and base offset. The
	// formula must match the addressing of the routine under test and of
	// every reference implementation.
	ResultIndex(args *Arguments[T], id1, id2 int) int

	// Flops and Bytes are closed-form cost models used for throughput
	// reporting only.
	Flops(args *Arguments[T]) int64
	Bytes(args *Arguments[T]) int64
}

// Reference1 is implemented by descriptors wrapping the cgo system BLAS
// (netlib). Compiled in only under the "netlib" build tag.
type Reference1[T algoblas.Element] interface {
	RunReference1(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode
}

// Reference2 is implemented by descriptors wrapping the pure-Go gonum BLAS.
// Always available.
type Reference2[T algoblas.Element] interface {
	RunReference2(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode
}

// Reference3 is implemented by descriptors wrapping cuBLAS. Compiled in only
// under the "cuda" build tag.
type Reference3[T algoblas.Element] interface {
	RunReference3(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode
}

// RoutineBase supplies the not-applicable defaults so descriptors only spell
// out the parts that concern them: zero sizes, absent leading dimensions,
// empty transpose sets and a no-op data preparation hook.
type RoutineBase[T algoblas.Element] struct{}

func (RoutineBase[T]) GetSizeX(*Arguments[T]) int { return 0 }
func (RoutineBase[T]) GetSizeY(*Arguments[T]) int { return 0 }
func (RoutineBase[T]) GetSizeA(*Arguments[T]) int { return 0 }
func (RoutineBase[T]) GetSizeB(*Arguments[T]) int { return 0 }
func (RoutineBase[T]) GetSizeC(*Arguments[T]) int { return 0 }

func (RoutineBase[T]) DefaultLDA(*Arguments[T]) (int, bool) { return 0, false }
func (RoutineBase[T]) DefaultLDB(*Arguments[T]) (int, bool) { return 0, false }
func (RoutineBase[T]) DefaultLDC(*Arguments[T]) (int, bool) { return 0, false }

func (RoutineBase[T]) ATransposes([]algoblas.Transpose) []algoblas.Transpose { return nil }
func (RoutineBase[T]) BTransposes([]algoblas.Transpose) []algoblas.Transpose { return nil }

func (RoutineBase[T]) PrepareData(*Arguments[T], device.Queue, int64, *Buffers[T]) error {
	return nil
}

// finishRun converts the asynchronous dispatch into the blocking contract:
// after a successful dispatch the queue is synchronized, and a failing wait
// surfaces as a kernel-run error rather than silent success.
func finishRun(status algoblas.StatusCode, q device.Queue) algoblas.StatusCode {
	if !status.OK() {
		return status
	}
	if err := q.Synchronize(); err != nil {
		return algoblas.StatusKernelRunError
	}
	return algoblas.StatusSuccess
}

// guardReference converts panics from reference kernels (gonum panics on
// invalid arguments instead of returning codes) into the shared taxonomy.
func guardReference(status *algoblas.StatusCode) {
	if r := recover(); r != nil {
		*status = algoblas.StatusUnknownError
	}
}
