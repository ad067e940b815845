package device

import (
	"sync"

	algoblas "github.com/cwbudde/algo-blas"
)

// Backend is implemented by compute backends (OpenCL, CUDA, mock). It is
// responsible for device discovery and context creation.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific context tied to a single device.
// Its lifetime is owned by the caller; routines and descriptors only borrow
// queues and buffers created from it.
type Context interface {
	Device() DeviceInfo
	// NewBuffer allocates a linear device buffer of elemCount elements.
	NewBuffer(elemCount int, precision algoblas.Precision) (Buffer, error)
	// NewQueue creates a work-submission queue for this device.
	NewQueue() (Queue, error)
	Close() error
}

// Buffer is an opaque linear device memory region. Transfers take a host
// slice whose element type must match the buffer precision ([]float32,
// []float64, []complex64 or []complex128).
type Buffer interface {
	Len() int
	Precision() algoblas.Precision
	// Write copies the first n elements of src from host to device.
	Write(q Queue, n int, src any) error
	// Read copies the first n elements from device into dst.
	Read(q Queue, n int, dst any) error
	Close() error
}

// Queue represents an execution queue. Synchronize blocks until all work
// submitted to the queue has completed.
type Queue interface {
	Synchronize() error
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers a compute backend. Passing nil clears the backend.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// RegisterDefaultBackend registers the backend selected at build time. When
// that backend is missing or reports itself unavailable, the host mock is
// registered instead so there is always a device to target. Reports the
// backend that ended up registered.
func RegisterDefaultBackend() BackendInfo {
	return registerPreferred(platformBackend())
}

func registerPreferred(b Backend) BackendInfo {
	if b == nil || !b.Available() {
		b = NewMockBackend()
	}
	RegisterBackend(b)
	return b.Info()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	b := CurrentBackend()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}

// CurrentBackend returns the registered backend, or nil.
func CurrentBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}

// NewContext creates a context on the registered backend.
func NewContext(deviceIndex int) (Context, error) {
	b := CurrentBackend()
	if b == nil {
		return nil, ErrNoBackend
	}
	if !b.Available() {
		return nil, ErrBackendUnavailable
	}
	return b.NewContext(deviceIndex)
}
