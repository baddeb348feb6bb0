package bench_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/datasets"
)

// TestDefaultPlan checks the documented defaults.
func TestDefaultPlan(t *testing.T) {
	p := bench.DefaultPlan()
	assert.Equal(t, []string{bench.AllAlgorithms}, p.Algorithms)
	assert.Equal(t, []int{50, 100, 200, 500, 1000, 2000, 5000}, p.Sizes)
	assert.Equal(t, datasets.Names(), p.Datasets)
	assert.Equal(t, 5, p.Trials)
	assert.Zero(t, p.Seed)
	assert.Empty(t, p.GapVariants)
	assert.NoError(t, p.Validate())
}

// TestLoadPlan_OverridesDefaults decodes a partial YAML plan.
func TestLoadPlan_OverridesDefaults(t *testing.T) {
	doc := `
algorithms: [shell, insertion]
gap_variants: [knuth]
sizes: [10, 20]
trials: 2
seed: 42
`
	p, err := bench.LoadPlan(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"shell", "insertion"}, p.Algorithms)
	assert.Equal(t, []string{"knuth"}, p.GapVariants)
	assert.Equal(t, []int{10, 20}, p.Sizes)
	assert.Equal(t, 2, p.Trials)
	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, datasets.Names(), p.Datasets, "unspecified keys keep defaults")
}

// TestLoadPlan_Empty yields the default plan.
func TestLoadPlan_Empty(t *testing.T) {
	p, err := bench.LoadPlan(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, bench.DefaultPlan(), p)
}

// TestLoadPlan_Rejects covers unknown keys, bad YAML and invalid values.
func TestLoadPlan_Rejects(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":   "trails: 3\n",
		"bad yaml":      "sizes: [1, 2\n",
		"wrong type":    "trials: many\n",
		"zero trials":   "trials: 0\n",
		"negative size": "sizes: [-1]\n",
		"no algorithms": "algorithms: []\n",
		"no datasets":   "datasets: []\n",
		"no sizes":      "sizes: []\n",
	} {
		_, err := bench.LoadPlan(strings.NewReader(doc))
		assert.ErrorIs(t, err, bench.ErrInvalidPlan, name)
	}
}
