package device

import "errors"

var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("algoblas/device: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("algoblas/device: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("algoblas/device: not implemented")

	// ErrInvalidSize is returned for negative buffer sizes.
	ErrInvalidSize = errors.New("algoblas/device: invalid buffer size")

	// ErrPrecisionMismatch is returned when a host slice type does not match
	// the buffer precision.
	ErrPrecisionMismatch = errors.New("algoblas/device: precision mismatch")

	// ErrLengthMismatch is returned when a host slice is too short for the
	// requested transfer.
	ErrLengthMismatch = errors.New("algoblas/device: length mismatch")

	// ErrClosed is returned when operating on a closed buffer, queue or context.
	ErrClosed = errors.New("algoblas/device: closed")
)
