package blastest

import (
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	algoblas "github.com/cwbudde/algo-blas"
)

// Entry is a precision-erased handle on one registered routine descriptor.
// The Test and Bench closures dispatch to the generic driver instantiated for
// the requested precision.
type Entry struct {
	Name  string
	Level int

	Test  func(prec algoblas.Precision, settings *Settings, log zerolog.Logger) (Summary, error)
	Bench func(prec algoblas.Precision, settings *Settings, log zerolog.Logger) error
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Entry)
)

func registerRoutine(e Entry) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[e.Name]; dup {
		panic("blastest: duplicate routine registration: " + e.Name)
	}
	registry[e.Name] = e
}

// Get returns the registered entry for name.
func Get(name string) (Entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	return e, ok
}

// Names returns the registered routine names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// entryFor builds the registry entry for a descriptor instantiated at all
// four element types. Descriptors are stateless, so the zero value of each
// instantiation is a usable routine.
func entryFor[R32 Routine[float32], R64 Routine[float64], RC64 Routine[complex64], RC128 Routine[complex128]](name string) Entry {
	var (
		r32  R32
		r64  R64
		rc64 RC64
		rc28 RC128
	)
	return Entry{
		Name:  name,
		Level: r32.BLASLevel(),
		Test: func(prec algoblas.Precision, settings *Settings, log zerolog.Logger) (Summary, error) {
			switch prec {
			case algoblas.PrecisionSingle:
				return RunCorrectness[float32](r32, settings, log)
			case algoblas.PrecisionDouble:
				return RunCorrectness[float64](r64, settings, log)
			case algoblas.PrecisionComplexSingle:
				return RunCorrectness[complex64](rc64, settings, log)
			case algoblas.PrecisionComplexDouble:
				return RunCorrectness[complex128](rc28, settings, log)
			default:
				return Summary{}, fmt.Errorf("blastest: unknown precision %d", prec)
			}
		},
		Bench: func(prec algoblas.Precision, settings *Settings, log zerolog.Logger) error {
			switch prec {
			case algoblas.PrecisionSingle:
				return RunBenchmark[float32](r32, settings, log)
			case algoblas.PrecisionDouble:
				return RunBenchmark[float64](r64, settings, log)
			case algoblas.PrecisionComplexSingle:
				return RunBenchmark[complex64](rc64, settings, log)
			case algoblas.PrecisionComplexDouble:
				return RunBenchmark[complex128](rc28, settings, log)
			default:
				return fmt.Errorf("blastest: unknown precision %d", prec)
			}
		},
	}
}
