package device

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	algoblas "github.com/cwbudde/algo-blas"
)

// MockBackend is a host-backed backend for development and tests. It
// satisfies the backend interfaces but keeps all buffers in host memory and
// executes synchronously.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend with a single fake device describing
// the host CPU.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockDevice",
			Vendor:     "algoblas",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: hostFeatures(),
		},
	}
}

// hostFeatures summarizes SIMD capabilities of the host, so benchmark reports
// can tell machines apart.
func hostFeatures() string {
	features := []string{runtime.GOARCH}
	if runtime.GOARCH == "amd64" {
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
		if cpu.X86.HasAVX512F {
			features = append(features, "avx512f")
		}
		if cpu.X86.HasFMA {
			features = append(features, "fma")
		}
	}
	if runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD {
		features = append(features, "asimd")
	}
	return strings.Join(features, "+")
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "host-backed mock device backend",
	}
}

func (b *MockBackend) Available() bool {
	return true
}

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("mock backend: device index %d out of range", deviceIndex)
	}
	return &mockContext{device: b.device}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

type mockContext struct {
	device DeviceInfo
	closed bool
}

func (c *mockContext) Device() DeviceInfo {
	return c.device
}

func (c *mockContext) NewBuffer(elemCount int, precision algoblas.Precision) (Buffer, error) {
	if c.closed {
		return nil, ErrClosed
	}
	if elemCount < 0 {
		return nil, ErrInvalidSize
	}
	switch precision {
	case algoblas.PrecisionSingle:
		return newMockBuffer[float32](elemCount, precision), nil
	case algoblas.PrecisionDouble:
		return newMockBuffer[float64](elemCount, precision), nil
	case algoblas.PrecisionComplexSingle:
		return newMockBuffer[complex64](elemCount, precision), nil
	case algoblas.PrecisionComplexDouble:
		return newMockBuffer[complex128](elemCount, precision), nil
	default:
		return nil, ErrNotImplemented
	}
}

func (c *mockContext) NewQueue() (Queue, error) {
	if c.closed {
		return nil, ErrClosed
	}
	return &mockQueue{}, nil
}

func (c *mockContext) Close() error {
	c.closed = true
	return nil
}

type mockQueue struct {
	closed bool
}

// Synchronize is a no-op: mock transfers and executions complete inline.
func (q *mockQueue) Synchronize() error {
	if q.closed {
		return ErrClosed
	}
	return nil
}

func (q *mockQueue) Close() error {
	q.closed = true
	return nil
}

type mockBuffer[T algoblas.Element] struct {
	precision algoblas.Precision
	data      []T
}

func newMockBuffer[T algoblas.Element](elemCount int, precision algoblas.Precision) *mockBuffer[T] {
	return &mockBuffer[T]{
		precision: precision,
		data:      make([]T, elemCount),
	}
}

func (b *mockBuffer[T]) Len() int {
	return len(b.data)
}

func (b *mockBuffer[T]) Precision() algoblas.Precision {
	return b.precision
}

func (b *mockBuffer[T]) Write(q Queue, n int, src any) error {
	if b.data == nil && n > 0 {
		return ErrClosed
	}
	data, ok := src.([]T)
	if !ok {
		return ErrPrecisionMismatch
	}
	if n < 0 || n > len(b.data) || n > len(data) {
		return ErrLengthMismatch
	}
	copy(b.data[:n], data[:n])
	return nil
}

func (b *mockBuffer[T]) Read(q Queue, n int, dst any) error {
	if b.data == nil && n > 0 {
		return ErrClosed
	}
	data, ok := dst.([]T)
	if !ok {
		return ErrPrecisionMismatch
	}
	if n < 0 || n > len(b.data) || n > len(data) {
		return ErrLengthMismatch
	}
	copy(data[:n], b.data[:n])
	return nil
}

func (b *mockBuffer[T]) Close() error {
	b.data = nil
	return nil
}
