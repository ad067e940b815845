//go:build cuda

package blastest

import (
	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
)

// cuBLAS reference runs are not wired up yet. The methods exist so builds
// with the cuda tag still satisfy the Reference3 contract; the driver prefers
// the CBLAS and gonum references, so these placeholders are never selected.

func (Xaxpy[T]) RunReference3(*Arguments[T], *Buffers[T], device.Queue) algoblas.StatusCode {
	return algoblas.StatusNotImplemented
}

func (XaxpyBatched[T]) RunReference3(*Arguments[T], *Buffers[T], device.Queue) algoblas.StatusCode {
	return algoblas.StatusNotImplemented
}

func (Xgemv[T]) RunReference3(*Arguments[T], *Buffers[T], device.Queue) algoblas.StatusCode {
	return algoblas.StatusNotImplemented
}

func (Xher[T]) RunReference3(*Arguments[T], *Buffers[T], device.Queue) algoblas.StatusCode {
	return algoblas.StatusNotImplemented
}

func (Xtrsv[T]) RunReference3(*Arguments[T], *Buffers[T], device.Queue) algoblas.StatusCode {
	return algoblas.StatusNotImplemented
}

func (Xsyrk[T]) RunReference3(*Arguments[T], *Buffers[T], device.Queue) algoblas.StatusCode {
	return algoblas.StatusNotImplemented
}
