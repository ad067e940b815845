package blastest

import (
	"fmt"

	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
)

// BufferRole tags the logical operand a physical buffer represents,
// independent of its storage.
type BufferRole uint8

const (
	RoleVecX BufferRole = iota
	RoleVecY
	RoleMatA
	RoleMatB
	RoleMatC
	numRoles
)

func (r BufferRole) String() string {
	switch r {
	case RoleVecX:
		return "x"
	case RoleVecY:
		return "y"
	case RoleMatA:
		return "a"
	case RoleMatB:
		return "b"
	case RoleMatC:
		return "c"
	default:
		return "unknown"
	}
}

// Buffers groups the five role-addressed device buffers a test case may use.
// The driver owns allocation and release; descriptors only read and write
// through them.
type Buffers[T algoblas.Element] struct {
	X, Y, A, B, C device.Buffer
}

// Get returns the buffer for a role.
func (b *Buffers[T]) Get(role BufferRole) device.Buffer {
	switch role {
	case RoleVecX:
		return b.X
	case RoleVecY:
		return b.Y
	case RoleMatA:
		return b.A
	case RoleMatB:
		return b.B
	case RoleMatC:
		return b.C
	default:
		return nil
	}
}

// sizeFor reads the derived size field for a role.
func sizeFor[T algoblas.Element](args *Arguments[T], role BufferRole) int {
	switch role {
	case RoleVecX:
		return args.XSize
	case RoleVecY:
		return args.YSize
	case RoleMatA:
		return args.ASize
	case RoleMatB:
		return args.BSize
	case RoleMatC:
		return args.CSize
	default:
		return 0
	}
}

// AllocateBuffers allocates all five buffers according to the derived sizes
// in args (SetSizes must have run). Unused roles get a one-element buffer so
// descriptors can be handed a fully-populated set unconditionally.
func AllocateBuffers[T algoblas.Element](ctx device.Context, args *Arguments[T]) (*Buffers[T], error) {
	prec := algoblas.PrecisionOf[T]()
	bufs := &Buffers[T]{}
	for role := RoleVecX; role < numRoles; role++ {
		size := sizeFor(args, role)
		if size < 1 {
			size = 1
		}
		buf, err := ctx.NewBuffer(size, prec)
		if err != nil {
			bufs.Close()
			return nil, fmt.Errorf("allocate buffer %s: %w", role, err)
		}
		switch role {
		case RoleVecX:
			bufs.X = buf
		case RoleVecY:
			bufs.Y = buf
		case RoleMatA:
			bufs.A = buf
		case RoleMatB:
			bufs.B = buf
		case RoleMatC:
			bufs.C = buf
		}
	}
	return bufs, nil
}

// Close releases all buffers. Safe on partially-allocated sets.
func (b *Buffers[T]) Close() {
	for _, buf := range []device.Buffer{b.X, b.Y, b.A, b.B, b.C} {
		if buf != nil {
			_ = buf.Close()
		}
	}
}

// downloadBuffer copies size elements of a device buffer into a fresh host
// slice, translating transfer failures into the status taxonomy.
func downloadBuffer[T algoblas.Element](buf device.Buffer, q device.Queue, size int, invalid algoblas.StatusCode) ([]T, algoblas.StatusCode) {
	result := make([]T, size)
	if buf == nil || buf.Read(q, size, result) != nil {
		return nil, invalid
	}
	return result, algoblas.StatusSuccess
}
