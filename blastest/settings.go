package blastest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings controls which parameter values the tester and benchmark client
// sweep over. A zero value is not usable; start from DefaultSettings and
// optionally overlay a YAML file.
type Settings struct {
	// Dimension sets per BLAS level: vector routines sweep VectorDims,
	// matrix-vector routines MatrixVectorDims, matrix-matrix routines
	// MatrixDims.
	VectorDims       []int `yaml:"vector_dims"`
	MatrixVectorDims []int `yaml:"matrix_vector_dims"`
	MatrixDims       []int `yaml:"matrix_dims"`

	Increments  []int `yaml:"increments"`
	Offsets     []int `yaml:"offsets"`
	BatchCounts []int `yaml:"batch_counts"`

	// NumRuns is the number of timed repetitions per benchmark case.
	NumRuns int `yaml:"num_runs"`

	// Full widens the sweeps: extra offsets, the identity scalar corner
	// cases, and padded leading dimensions.
	Full bool `yaml:"full"`

	// DeviceIndex selects the device within the registered backend.
	DeviceIndex int `yaml:"device_index"`
}

// DefaultSettings returns the standard sweep. The full variant adds the
// parameter values that mostly catch addressing bugs rather than arithmetic
// ones.
func DefaultSettings(full bool) *Settings {
	s := &Settings{
		VectorDims:       []int{7, 93, 4096},
		MatrixVectorDims: []int{61, 512},
		MatrixDims:       []int{7, 64},
		Increments:       []int{1, 2, 7},
		Offsets:          []int{0},
		BatchCounts:      []int{1, 3},
		NumRuns:          10,
		Full:             full,
	}
	if full {
		s.Offsets = []int{0, 10}
	}
	return s
}

// LoadSettings reads a YAML settings file over the defaults. An empty path
// returns the defaults unchanged.
func LoadSettings(path string, full bool) (*Settings, error) {
	s := DefaultSettings(full)
	if path == "" {
		return s, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if s.NumRuns < 1 {
		return nil, fmt.Errorf("settings %s: num_runs must be positive", path)
	}
	return s, nil
}
