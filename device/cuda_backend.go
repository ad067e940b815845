//go:build cuda && !opencl

package device

// cudaBackend will drive the CUDA device API once the BLAS kernels are
// ported to it. Until then it reports itself unavailable, so the default
// registration falls back to the host mock. The opencl tag takes precedence
// when both device APIs are requested at build time.
type cudaBackend struct{}

func platformBackend() Backend {
	return cudaBackend{}
}

func (cudaBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "cuda",
		Version:     "none",
		Description: "CUDA device backend (no BLAS kernels ported yet)",
	}
}

func (cudaBackend) Available() bool {
	return false
}

func (cudaBackend) Devices() ([]DeviceInfo, error) {
	return nil, ErrBackendUnavailable
}

func (cudaBackend) NewContext(int) (Context, error) {
	return nil, ErrBackendUnavailable
}
