//go:build !opencl && !cuda

package device

// No device API selected at build time; the host mock serves as the default
// backend.
func platformBackend() Backend {
	return nil
}
