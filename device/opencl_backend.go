//go:build opencl

package device

// openclBackend will drive the OpenCL device API once the BLAS kernels are
// ported to it. Until then it reports itself unavailable, so the default
// registration falls back to the host mock instead of handing out contexts
// that cannot run anything.
type openclBackend struct{}

func platformBackend() Backend {
	return openclBackend{}
}

func (openclBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "opencl",
		Version:     "none",
		Description: "OpenCL device backend (no BLAS kernels ported yet)",
	}
}

func (openclBackend) Available() bool {
	return false
}

func (openclBackend) Devices() ([]DeviceInfo, error) {
	return nil, ErrBackendUnavailable
}

func (openclBackend) NewContext(int) (Context, error) {
	return nil, ErrBackendUnavailable
}
