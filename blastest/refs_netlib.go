//go:build netlib && cgo

package blastest

import (
	"gonum.org/v1/netlib/blas/netlib"

	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
	"github.com/cwbudde/algo-blas/internal/hostblas"
)

// netlibImpl routes reference runs through the system CBLAS. It shares the
// host-side gather/scatter path with the gonum reference, so the two differ
// only in the kernel provider.
var netlibImpl hostblas.Implementation = netlib.Implementation{}

func (r Xaxpy[T]) RunReference1(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(netlibImpl, args, bufs, q)
}

func (r XaxpyBatched[T]) RunReference1(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(netlibImpl, args, bufs, q)
}

func (r Xgemv[T]) RunReference1(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(netlibImpl, args, bufs, q)
}

func (r Xher[T]) RunReference1(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(netlibImpl, args, bufs, q)
}

func (r Xtrsv[T]) RunReference1(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(netlibImpl, args, bufs, q)
}

func (r Xsyrk[T]) RunReference1(args *Arguments[T], bufs *Buffers[T], q device.Queue) algoblas.StatusCode {
	return r.hostReference(netlibImpl, args, bufs, q)
}
