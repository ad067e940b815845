package blastest

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	algoblas "github.com/cwbudde/algo-blas"
	"github.com/cwbudde/algo-blas/device"
)

// Summary aggregates the outcome of one correctness run.
type Summary struct {
	Cases   int
	Passed  int
	Failed  int
	Skipped int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d cases: %d passed, %d failed, %d skipped", s.Cases, s.Passed, s.Failed, s.Skipped)
}

// RunCorrectness sweeps the routine over the parameter space described by
// settings, comparing against the best available reference implementation.
// Cases where routine and reference agree on a failure status count as
// passed; cases without any compiled-in reference are skipped.
func RunCorrectness[T algoblas.Element](r Routine[T], settings *Settings, log zerolog.Logger) (Summary, error) {
	ctx, err := device.NewContext(settings.DeviceIndex)
	if err != nil {
		return Summary{}, fmt.Errorf("create context: %w", err)
	}
	defer ctx.Close()
	q, err := ctx.NewQueue()
	if err != nil {
		return Summary{}, fmt.Errorf("create queue: %w", err)
	}
	defer q.Close()

	prec := algoblas.PrecisionOf[T]()
	cases := generateCases(r, settings)
	log.Info().
		Str("routine", r.Name()).
		Stringer("precision", prec).
		Int("cases", len(cases)).
		Msg("correctness sweep")

	var sum Summary
	sum.Cases = len(cases)
	for i := range cases {
		outcome, err := runCase(r, ctx, q, &cases[i], int64(42+i))
		if err != nil {
			return sum, fmt.Errorf("case %d (%s): %w", i, describeCase(r, &cases[i]), err)
		}
		switch outcome {
		case casePassed:
			sum.Passed++
		case caseSkipped:
			sum.Skipped++
		default:
			sum.Failed++
			log.Error().
				Str("routine", r.Name()).
				Stringer("precision", prec).
				Str("args", describeCase(r, &cases[i])).
				Msg("result mismatch")
		}
	}

	invalid, err := runInvalidBufferChecks(r, ctx, q, settings)
	if err != nil {
		return sum, err
	}
	sum.Cases += invalid.Cases
	sum.Passed += invalid.Passed
	if invalid.Failed > 0 {
		sum.Failed += invalid.Failed
		log.Error().
			Str("routine", r.Name()).
			Int("failed", invalid.Failed).
			Msg("undersized buffers were not rejected")
	}

	log.Info().Str("routine", r.Name()).Stringer("summary", sum).Msg("done")
	return sum, nil
}

type caseOutcome uint8

const (
	casePassed caseOutcome = iota
	caseFailed
	caseSkipped
)

// runCase executes one parameter combination against the reference. Both
// sides work on their own identically-seeded buffer set since routines update
// operands in place.
func runCase[T algoblas.Element](r Routine[T], ctx device.Context, q device.Queue, args *Arguments[T], seed int64) (caseOutcome, error) {
	r.SetSizes(args)

	run, err := AllocateBuffers(ctx, args)
	if err != nil {
		return caseFailed, err
	}
	defer run.Close()
	ref, err := AllocateBuffers(ctx, args)
	if err != nil {
		return caseFailed, err
	}
	defer ref.Close()

	for _, role := range usedRoles(r) {
		size := sizeFor(args, role)
		if size < 1 {
			continue
		}
		host := make([]T, size)
		fillRandom(host, seed+int64(role))
		if err := run.Get(role).Write(q, size, host); err != nil {
			return caseFailed, fmt.Errorf("upload %s: %w", role, err)
		}
		if err := ref.Get(role).Write(q, size, host); err != nil {
			return caseFailed, fmt.Errorf("upload %s: %w", role, err)
		}
	}
	if err := r.PrepareData(args, q, seed, run); err != nil {
		return caseFailed, fmt.Errorf("prepare data: %w", err)
	}
	if err := r.PrepareData(args, q, seed, ref); err != nil {
		return caseFailed, fmt.Errorf("prepare data: %w", err)
	}

	status := r.RunRoutine(args, run, q)
	refStatus, ok := runReference(r, args, ref, q)
	if !ok {
		return caseSkipped, nil
	}
	if !status.OK() || !refStatus.OK() {
		// Agreement on rejection is a pass; a one-sided failure is not.
		if status == refStatus {
			return casePassed, nil
		}
		return caseFailed, nil
	}

	got, status := r.DownloadResult(args, run, q)
	if !status.OK() {
		return caseFailed, nil
	}
	want, status := r.DownloadResult(args, ref, q)
	if !status.OK() {
		return caseFailed, nil
	}
	if compareResults(r, args, got, want) > 0 {
		return caseFailed, nil
	}
	return casePassed, nil
}

// compareResults walks the logical result grid and counts elements deviating
// beyond the precision tolerance, absolute for small values and relative
// otherwise.
func compareResults[T algoblas.Element](r Routine[T], args *Arguments[T], got, want []T) int {
	tol := tolerance[T]()
	mismatches := 0
	for id2 := 0; id2 < r.ResultID2(args); id2++ {
		for id1 := 0; id1 < r.ResultID1(args); id1++ {
			idx := r.ResultIndex(args, id1, id2)
			if idx >= len(got) || idx >= len(want) {
				mismatches++
				continue
			}
			dev := absOf(got[idx] - want[idx])
			if dev > tol && dev > tol*absOf(want[idx]) {
				mismatches++
			}
		}
	}
	return mismatches
}

// runReference picks the first compiled-in reference, preferring the system
// BLAS over the pure-Go one and the pure-Go one over the CUDA stub.
func runReference[T algoblas.Element](r Routine[T], args *Arguments[T], bufs *Buffers[T], q device.Queue) (algoblas.StatusCode, bool) {
	if ref, ok := any(r).(Reference1[T]); ok {
		return ref.RunReference1(args, bufs, q), true
	}
	if ref, ok := any(r).(Reference2[T]); ok {
		return ref.RunReference2(args, bufs, q), true
	}
	if ref, ok := any(r).(Reference3[T]); ok {
		return ref.RunReference3(args, bufs, q), true
	}
	return algoblas.StatusSuccess, false
}

// usedRoles returns the union of input and output roles, inputs first.
func usedRoles[T algoblas.Element](r Routine[T]) []BufferRole {
	seen := [numRoles]bool{}
	var roles []BufferRole
	for _, role := range append(r.BuffersIn(), r.BuffersOut()...) {
		if !seen[role] {
			seen[role] = true
			roles = append(roles, role)
		}
	}
	return roles
}

// runInvalidBufferChecks reruns the smallest case with each used buffer
// undersized by one element, expecting a rejection every time.
func runInvalidBufferChecks[T algoblas.Element](r Routine[T], ctx device.Context, q device.Queue, settings *Settings) (Summary, error) {
	args := smallestCase(r, settings)
	r.SetSizes(&args)

	var sum Summary
	prec := algoblas.PrecisionOf[T]()
	for _, short := range usedRoles(r) {
		if sizeFor(&args, short) < 2 {
			continue
		}
		sum.Cases++
		bufs := &Buffers[T]{}
		alloc := func(role BufferRole) (device.Buffer, error) {
			size := sizeFor(&args, role)
			if role == short {
				size--
			}
			if size < 1 {
				size = 1
			}
			return ctx.NewBuffer(size, prec)
		}
		failed := false
		for role := RoleVecX; role < numRoles; role++ {
			buf, err := alloc(role)
			if err != nil {
				bufs.Close()
				return sum, err
			}
			switch role {
			case RoleVecX:
				bufs.X = buf
			case RoleVecY:
				bufs.Y = buf
			case RoleMatA:
				bufs.A = buf
			case RoleMatB:
				bufs.B = buf
			case RoleMatC:
				bufs.C = buf
			}
		}
		if r.RunRoutine(&args, bufs, q).OK() {
			failed = true
		}
		bufs.Close()
		if failed {
			sum.Failed++
		} else {
			sum.Passed++
		}
	}
	return sum, nil
}

// smallestCase builds the first (smallest-dimension) parameter combination.
func smallestCase[T algoblas.Element](r Routine[T], settings *Settings) Arguments[T] {
	cases := generateCases(r, settings)
	if len(cases) == 0 {
		return NewArguments[T]()
	}
	return cases[0]
}

// generateCases expands the routine's option list into the cartesian product
// of the configured sweep values. Leading dimensions come last within their
// dimension group in every descriptor's option order, so DefaultLDA sees the
// final dimensions when it runs.
func generateCases[T algoblas.Element](r Routine[T], settings *Settings) []Arguments[T] {
	cases := []Arguments[T]{NewArguments[T]()}
	for _, opt := range r.Options() {
		cases = expandOption(r, settings, cases, opt)
	}
	return cases
}

func expandOption[T algoblas.Element](r Routine[T], settings *Settings, cases []Arguments[T], opt string) []Arguments[T] {
	switch opt {
	case ArgN:
		return expandInts(cases, dimsForLevel(r.BLASLevel(), settings), func(a *Arguments[T], v int) { a.N = v })
	case ArgM:
		return expandInts(cases, settings.MatrixVectorDims, func(a *Arguments[T], v int) { a.M = v })
	case ArgK:
		return expandInts(cases, settings.MatrixDims, func(a *Arguments[T], v int) { a.K = v })
	case ArgXInc:
		return expandInts(cases, settings.Increments, func(a *Arguments[T], v int) { a.XInc = v })
	case ArgYInc:
		return expandInts(cases, settings.Increments, func(a *Arguments[T], v int) { a.YInc = v })
	case ArgXOffset:
		return expandInts(cases, settings.Offsets, func(a *Arguments[T], v int) { a.XOffset = v })
	case ArgYOffset:
		return expandInts(cases, settings.Offsets, func(a *Arguments[T], v int) { a.YOffset = v })
	case ArgAOffset:
		return expandInts(cases, settings.Offsets, func(a *Arguments[T], v int) { a.AOffset = v })
	case ArgBOffset:
		return expandInts(cases, settings.Offsets, func(a *Arguments[T], v int) { a.BOffset = v })
	case ArgCOffset:
		return expandInts(cases, settings.Offsets, func(a *Arguments[T], v int) { a.COffset = v })
	case ArgBatchCount:
		return expandInts(cases, settings.BatchCounts, func(a *Arguments[T], v int) { a.BatchCount = v })
	case ArgALeadDim:
		return expandLeadDim(cases, settings, r.DefaultLDA, func(a *Arguments[T], v int) { a.ALeadDim = v })
	case ArgBLeadDim:
		return expandLeadDim(cases, settings, r.DefaultLDB, func(a *Arguments[T], v int) { a.BLeadDim = v })
	case ArgCLeadDim:
		return expandLeadDim(cases, settings, r.DefaultLDC, func(a *Arguments[T], v int) { a.CLeadDim = v })
	case ArgLayout:
		return expandEnum(cases, []algoblas.Layout{algoblas.RowMajor, algoblas.ColMajor},
			func(a *Arguments[T], v algoblas.Layout) { a.Layout = v })
	case ArgATransp:
		return expandEnum(cases, r.ATransposes(transposeCandidates[T]()),
			func(a *Arguments[T], v algoblas.Transpose) { a.ATranspose = v })
	case ArgBTransp:
		return expandEnum(cases, r.BTransposes(transposeCandidates[T]()),
			func(a *Arguments[T], v algoblas.Transpose) { a.BTranspose = v })
	case ArgSide:
		return expandEnum(cases, []algoblas.Side{algoblas.Left, algoblas.Right},
			func(a *Arguments[T], v algoblas.Side) { a.Side = v })
	case ArgTriangle:
		return expandEnum(cases, []algoblas.Triangle{algoblas.Upper, algoblas.Lower},
			func(a *Arguments[T], v algoblas.Triangle) { a.Triangle = v })
	case ArgDiagonal:
		return expandEnum(cases, []algoblas.Diagonal{algoblas.Unit, algoblas.NonUnit},
			func(a *Arguments[T], v algoblas.Diagonal) { a.Diagonal = v })
	case ArgAlpha:
		return expandEnum(cases, exampleScalars[T](settings.Full),
			func(a *Arguments[T], v T) { a.Alpha = v })
	case ArgBeta:
		return expandEnum(cases, exampleScalars[T](settings.Full),
			func(a *Arguments[T], v T) { a.Beta = v })
	default:
		return cases
	}
}

func expandInts[T algoblas.Element](cases []Arguments[T], values []int, set func(*Arguments[T], int)) []Arguments[T] {
	out := make([]Arguments[T], 0, len(cases)*len(values))
	for _, c := range cases {
		for _, v := range values {
			next := c
			set(&next, v)
			out = append(out, next)
		}
	}
	return out
}

func expandEnum[T algoblas.Element, V any](cases []Arguments[T], values []V, set func(*Arguments[T], V)) []Arguments[T] {
	if len(values) == 0 {
		return cases
	}
	out := make([]Arguments[T], 0, len(cases)*len(values))
	for _, c := range cases {
		for _, v := range values {
			next := c
			set(&next, v)
			out = append(out, next)
		}
	}
	return out
}

// expandLeadDim assigns the routine's natural leading dimension per case, and
// in full mode additionally a padded one.
func expandLeadDim[T algoblas.Element](cases []Arguments[T], settings *Settings, def func(*Arguments[T]) (int, bool), set func(*Arguments[T], int)) []Arguments[T] {
	var out []Arguments[T]
	for _, c := range cases {
		ld, ok := def(&c)
		if !ok {
			out = append(out, c)
			continue
		}
		next := c
		set(&next, ld)
		out = append(out, next)
		if settings.Full {
			padded := c
			set(&padded, ld+7)
			out = append(out, padded)
		}
	}
	return out
}

// dimsForLevel maps a BLAS level onto its configured dimension set.
func dimsForLevel(level int, settings *Settings) []int {
	switch level {
	case 1:
		return settings.VectorDims
	case 2:
		return settings.MatrixVectorDims
	default:
		return settings.MatrixDims
	}
}

// transposeCandidates lists the transpose modes meaningful for T before
// routine-specific filtering. Conjugation only exists for complex elements.
func transposeCandidates[T algoblas.Element]() []algoblas.Transpose {
	if algoblas.PrecisionOf[T]().Complex() {
		return []algoblas.Transpose{algoblas.NoTranspose, algoblas.Yes, algoblas.Conjugate}
	}
	return []algoblas.Transpose{algoblas.NoTranspose, algoblas.Yes}
}

// describeCase renders a case's relevant arguments for log output.
func describeCase[T algoblas.Element](r Routine[T], args *Arguments[T]) string {
	var sb strings.Builder
	for i, opt := range r.Options() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(opt)
		sb.WriteByte('=')
		sb.WriteString(describeOption(args, opt))
	}
	return sb.String()
}

func describeOption[T algoblas.Element](args *Arguments[T], opt string) string {
	switch opt {
	case ArgM:
		return fmt.Sprint(args.M)
	case ArgN:
		return fmt.Sprint(args.N)
	case ArgK:
		return fmt.Sprint(args.K)
	case ArgLayout:
		return args.Layout.String()
	case ArgATransp:
		return args.ATranspose.String()
	case ArgBTransp:
		return args.BTranspose.String()
	case ArgSide:
		return args.Side.String()
	case ArgTriangle:
		return args.Triangle.String()
	case ArgDiagonal:
		return args.Diagonal.String()
	case ArgXInc:
		return fmt.Sprint(args.XInc)
	case ArgYInc:
		return fmt.Sprint(args.YInc)
	case ArgXOffset:
		return fmt.Sprint(args.XOffset)
	case ArgYOffset:
		return fmt.Sprint(args.YOffset)
	case ArgALeadDim:
		return fmt.Sprint(args.ALeadDim)
	case ArgBLeadDim:
		return fmt.Sprint(args.BLeadDim)
	case ArgCLeadDim:
		return fmt.Sprint(args.CLeadDim)
	case ArgAOffset:
		return fmt.Sprint(args.AOffset)
	case ArgBOffset:
		return fmt.Sprint(args.BOffset)
	case ArgCOffset:
		return fmt.Sprint(args.COffset)
	case ArgAlpha:
		return fmt.Sprint(args.Alpha)
	case ArgBeta:
		return fmt.Sprint(args.Beta)
	case ArgBatchCount:
		return fmt.Sprint(args.BatchCount)
	default:
		return "?"
	}
}
