package blastest

import (
	"testing"

	"pgregory.net/rapid"

	algoblas "github.com/cwbudde/algo-blas"
)

// Every logical result coordinate must map inside the allocated buffer, for
// any valid argument combination.

func TestXherIndexWithinBufferProperty(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		r := Xher[float64]{}
		args := NewArguments[float64]()
		args.N = rapid.IntRange(1, 32).Draw(rt, "n")
		args.XInc = rapid.IntRange(1, 4).Draw(rt, "incx")
		args.XOffset = rapid.IntRange(0, 16).Draw(rt, "offx")
		args.AOffset = rapid.IntRange(0, 16).Draw(rt, "offa")
		args.ALeadDim = args.N + rapid.IntRange(0, 8).Draw(rt, "pad")
		r.SetSizes(&args)

		for id2 := 0; id2 < r.ResultID2(&args); id2++ {
			for id1 := 0; id1 < r.ResultID1(&args); id1++ {
				idx := r.ResultIndex(&args, id1, id2)
				if idx < 0 || idx >= args.ASize {
					rt.Fatalf("index %d outside buffer of %d elements (id1=%d id2=%d)", idx, args.ASize, id1, id2)
				}
			}
		}
	})
}

func TestXgemvIndexWithinBufferProperty(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		r := Xgemv[float32]{}
		args := NewArguments[float32]()
		args.M = rapid.IntRange(1, 24).Draw(rt, "m")
		args.N = rapid.IntRange(1, 24).Draw(rt, "n")
		args.Layout = algoblas.Layout(rapid.IntRange(0, 1).Draw(rt, "layout"))
		args.ATranspose = algoblas.Transpose(rapid.IntRange(0, 1).Draw(rt, "trans"))
		args.XInc = rapid.IntRange(1, 3).Draw(rt, "incx")
		args.YInc = rapid.IntRange(1, 3).Draw(rt, "incy")
		args.YOffset = rapid.IntRange(0, 8).Draw(rt, "offy")
		ld, _ := r.DefaultLDA(&args)
		args.ALeadDim = ld + rapid.IntRange(0, 4).Draw(rt, "pad")
		r.SetSizes(&args)

		for id1 := 0; id1 < r.ResultID1(&args); id1++ {
			idx := r.ResultIndex(&args, id1, 0)
			if idx < 0 || idx >= args.YSize {
				rt.Fatalf("index %d outside buffer of %d elements (id1=%d)", idx, args.YSize, id1)
			}
		}
	})
}

func TestXaxpyBatchedIndexWithinBufferProperty(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		r := XaxpyBatched[complex64]{}
		args := NewArguments[complex64]()
		args.N = rapid.IntRange(1, 64).Draw(rt, "n")
		args.XInc = rapid.IntRange(1, 4).Draw(rt, "incx")
		args.YInc = rapid.IntRange(1, 4).Draw(rt, "incy")
		args.BatchCount = rapid.IntRange(1, 5).Draw(rt, "batches")
		r.SetSizes(&args)

		for id2 := 0; id2 < r.ResultID2(&args); id2++ {
			for id1 := 0; id1 < r.ResultID1(&args); id1++ {
				idx := r.ResultIndex(&args, id1, id2)
				if idx < 0 || idx >= args.YSize {
					rt.Fatalf("index %d outside buffer of %d elements (id1=%d id2=%d)", idx, args.YSize, id1, id2)
				}
			}
		}
	})
}

// Buffer sizes reported by GetSize must cover what SetSizes records, so the
// driver can allocate from either.
func TestSetSizesMatchesGettersProperty(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(rt *rapid.T) {
		r := Xsyrk[float64]{}
		args := NewArguments[float64]()
		args.N = rapid.IntRange(1, 16).Draw(rt, "n")
		args.K = rapid.IntRange(1, 16).Draw(rt, "k")
		args.Layout = algoblas.Layout(rapid.IntRange(0, 1).Draw(rt, "layout"))
		args.ATranspose = algoblas.Transpose(rapid.IntRange(0, 1).Draw(rt, "trans"))
		ld, _ := r.DefaultLDA(&args)
		args.ALeadDim = ld
		args.CLeadDim = args.N
		r.SetSizes(&args)

		if args.ASize != r.GetSizeA(&args) || args.CSize != r.GetSizeC(&args) {
			rt.Fatalf("SetSizes disagrees with getters: A %d vs %d, C %d vs %d",
				args.ASize, r.GetSizeA(&args), args.CSize, r.GetSizeC(&args))
		}
	})
}
