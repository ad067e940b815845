package blastest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()
	s := DefaultSettings(false)
	assert.Equal(t, []int{0}, s.Offsets)
	assert.Equal(t, []int{1, 2, 7}, s.Increments)
	assert.Equal(t, 10, s.NumRuns)
	assert.False(t, s.Full)

	full := DefaultSettings(true)
	assert.Equal(t, []int{0, 10}, full.Offsets)
	assert.True(t, full.Full)
}

func TestLoadSettingsOverlaysDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("num_runs: 3\nvector_dims: [5]\n"), 0o644))

	s, err := LoadSettings(path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, s.NumRuns)
	assert.Equal(t, []int{5}, s.VectorDims)
	// Unmentioned keys keep their defaults.
	assert.Equal(t, []int{1, 2, 7}, s.Increments)
}

func TestLoadSettingsEmptyPath(t *testing.T) {
	t.Parallel()
	s, err := LoadSettings("", true)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(true), s)
}

func TestLoadSettingsErrors(t *testing.T) {
	t.Parallel()
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"), false)
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("num_runs: 0\n"), 0o644))
	_, err = LoadSettings(bad, false)
	assert.Error(t, err)
}
