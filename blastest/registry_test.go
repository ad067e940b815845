package blastest

import (
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	algoblas "github.com/cwbudde/algo-blas"
)

func TestRegistryContents(t *testing.T) {
	t.Parallel()
	names := Names()
	assert.True(t, sort.StringsAreSorted(names))

	wantLevels := map[string]int{
		"xaxpy":        1,
		"xaxpybatched": 1,
		"xgemv":        2,
		"xher":         2,
		"xtrsv":        2,
		"xsyrk":        3,
	}
	require.Len(t, names, len(wantLevels))
	for name, level := range wantLevels {
		e, ok := Get(name)
		require.True(t, ok, "routine %s not registered", name)
		assert.Equal(t, name, e.Name)
		assert.Equal(t, level, e.Level)
		assert.NotNil(t, e.Test)
		assert.NotNil(t, e.Bench)
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	t.Parallel()
	_, ok := Get("xnope")
	assert.False(t, ok)
}

func TestEntryRejectsUnknownPrecision(t *testing.T) {
	t.Parallel()
	e, ok := Get("xaxpy")
	require.True(t, ok)
	_, err := e.Test(algoblas.Precision(7), DefaultSettings(false), zerolog.Nop())
	assert.Error(t, err)
	assert.Error(t, e.Bench(algoblas.Precision(7), DefaultSettings(false), zerolog.Nop()))
}
