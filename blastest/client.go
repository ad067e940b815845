package blastest

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
)

// RunBenchmark times the routine over the configured sweep and reports
// throughput derived from the descriptor's cost model. Each case runs one
// warmup pass plus NumRuns timed passes; the best run counts, matching how
// kernel benchmarks are usually quoted.
func RunBenchmark[T algoblas.Element](r Routine[T], settings *Settings, log zerolog.Logger) error {
	ctx, err := device.NewContext(settings.DeviceIndex)
	if err != nil {
		return fmt.Errorf("create context: %w", err)
	}
	defer ctx.Close()
	q, err := ctx.NewQueue()
	if err != nil {
		return fmt.Errorf("create queue: %w", err)
	}
	defer q.Close()

	prec := algoblas.PrecisionOf[T]()
	cases := generateCases(r, settings)
	log.Info().
		Str("routine", r.Name()).
		Stringer("precision", prec).
		Int("cases", len(cases)).
		Int("runs", settings.NumRuns).
		Msg("benchmark sweep")

	for i := range cases {
		args := &cases[i]
		r.SetSizes(args)
		bufs, err := AllocateBuffers(ctx, args)
		if err != nil {
			return err
		}
		best, status := timeCase(r, args, bufs, q, int64(42+i), settings.NumRuns)
		bufs.Close()
		if !status.OK() {
			log.Warn().
				Str("routine", r.Name()).
				Str("args", describeCase(r, args)).
				Stringer("status", status).
				Msg("benchmark case rejected")
			continue
		}
		seconds := best.Seconds()
		log.Info().
			Str("routine", r.Name()).
			Str("args", describeCase(r, args)).
			Dur("best", best).
			Float64("gflops", float64(r.Flops(args))/seconds/1e9).
			Float64("gbs", float64(r.Bytes(args))/seconds/1e9).
			Msg("benchmark case")
	}
	return nil
}

// timeCase returns the best wall time over runs timed executions after one
// untimed warmup. Input buffers are refilled before every execution so
// in-place routines see equivalent work each run.
func timeCase[T algoblas.Element](r Routine[T], args *Arguments[T], bufs *Buffers[T], q device.Queue, seed int64, runs int) (time.Duration, algoblas.StatusCode) {
	reload := func() algoblas.StatusCode {
		for _, role := range usedRoles(r) {
			size := sizeFor(args, role)
			if size < 1 {
				continue
			}
			host := make([]T, size)
			fillRandom(host, seed+int64(role))
			if err := bufs.Get(role).Write(q, size, host); err != nil {
				return algoblas.TranslateError(err)
			}
		}
		return algoblas.TranslateError(r.PrepareData(args, q, seed, bufs))
	}

	if status := reload(); !status.OK() {
		return 0, status
	}
	if status := r.RunRoutine(args, bufs, q); !status.OK() {
		return 0, status
	}

	best := time.Duration(0)
	for run := 0; run < runs; run++ {
		if status := reload(); !status.OK() {
			return 0, status
		}
		start := time.Now()
		status := r.RunRoutine(args, bufs, q)
		elapsed := time.Since(start)
		if !status.OK() {
			return 0, status
		}
		if best == 0 || elapsed < best {
			best = elapsed
		}
	}
	return best, algoblas.StatusSuccess
}
