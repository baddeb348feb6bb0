package datasets_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/datasets"
)

// TestGenerate_Deterministic checks that identical arguments give identical
// sequences for every kind.
func TestGenerate_Deterministic(t *testing.T) {
	for _, name := range datasets.Names() {
		for _, n := range []int{0, 1, 2, 17, 250} {
			a, err := datasets.Generate(name, n, 42)
			require.NoError(t, err)
			b, err := datasets.Generate(name, n, 42)
			require.NoError(t, err)
			assert.Equal(t, a, b, "%s n=%d", name, n)
			assert.Len(t, a, n)
		}
	}
}

// TestGenerate_SeedMatters checks different seeds give different random data.
func TestGenerate_SeedMatters(t *testing.T) {
	a, _ := datasets.Generate(datasets.Random, 100, 1)
	b, _ := datasets.Generate(datasets.Random, 100, 2)
	assert.NotEqual(t, a, b)
}

// TestGenerate_Shapes checks each kind's defining property.
func TestGenerate_Shapes(t *testing.T) {
	const n, seed = 300, 7

	random, err := datasets.Generate(datasets.Random, n, seed)
	require.NoError(t, err)
	for _, v := range random {
		assert.True(t, v >= 0 && v <= 10*n, "value %d out of [0,%d]", v, 10*n)
	}

	sorted, err := datasets.Generate(datasets.Sorted, n, seed)
	require.NoError(t, err)
	assert.True(t, sort.IntsAreSorted(sorted))
	assert.ElementsMatch(t, random, sorted, "sorted is a permutation of random")

	reversed, err := datasets.Generate(datasets.Reversed, n, seed)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		assert.GreaterOrEqual(t, reversed[i-1], reversed[i])
	}
	assert.ElementsMatch(t, random, reversed)

	nearly, err := datasets.Generate(datasets.NearlySorted, n, seed)
	require.NoError(t, err)
	assert.ElementsMatch(t, sorted, nearly)
	diff := 0
	for i := range nearly {
		if nearly[i] != sorted[i] {
			diff++
		}
	}
	// 9 swaps touch at most 18 positions
	assert.LessOrEqual(t, diff, 2*int(float64(n)*0.03))

	few, err := datasets.Generate(datasets.FewUnique, n, seed)
	require.NoError(t, err)
	distinct := map[int]struct{}{}
	for _, v := range few {
		distinct[v] = struct{}{}
	}
	assert.LessOrEqual(t, len(distinct), n/10)
}

// TestGenerate_Errors covers unknown kinds and negative sizes.
func TestGenerate_Errors(t *testing.T) {
	_, err := datasets.Generate("gaussian", 10, 0)
	assert.ErrorIs(t, err, datasets.ErrUnknownDataset)

	_, err = datasets.Generate(datasets.Random, -1, 0)
	assert.ErrorIs(t, err, datasets.ErrBadSize)
}

// TestGenerate_CaseInsensitive resolves kinds regardless of case.
func TestGenerate_CaseInsensitive(t *testing.T) {
	a, err := datasets.Generate("Nearly_Sorted", 20, 3)
	require.NoError(t, err)
	b, _ := datasets.Generate(datasets.NearlySorted, 20, 3)
	assert.Equal(t, a, b)
}

// TestOptions tunes the generators and panics on nonsense.
func TestOptions(t *testing.T) {
	small, err := datasets.Generate(datasets.Random, 50, 1, datasets.WithValueFactor(1))
	require.NoError(t, err)
	for _, v := range small {
		assert.LessOrEqual(t, v, 50)
	}

	// a zero fraction still disturbs at least once
	sorted, _ := datasets.Generate(datasets.Sorted, 50, 1)
	nearly, err := datasets.Generate(datasets.NearlySorted, 50, 1, datasets.WithSwapFraction(0))
	require.NoError(t, err)
	assert.ElementsMatch(t, sorted, nearly)

	few, err := datasets.Generate(datasets.FewUnique, 100, 1, datasets.WithUniqueDivisor(50))
	require.NoError(t, err)
	distinct := map[int]struct{}{}
	for _, v := range few {
		distinct[v] = struct{}{}
	}
	assert.LessOrEqual(t, len(distinct), 2)

	assert.Panics(t, func() { datasets.WithValueFactor(0) })
	assert.Panics(t, func() { datasets.WithSwapFraction(1.5) })
	assert.Panics(t, func() { datasets.WithSwapFraction(-0.1) })
	assert.Panics(t, func() { datasets.WithUniqueDivisor(0) })
}

// TestRegistry covers listing and custom registration.
func TestRegistry(t *testing.T) {
	r := datasets.NewRegistry()
	assert.Equal(t, datasets.Names(), r.Names())

	constant := func(n int, _ int64) []int { return make([]int, n) }
	require.NoError(t, r.Register("zeros", constant))
	assert.True(t, r.Has("ZEROS"))
	got, err := r.Generate("zeros", 4, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, got)

	assert.ErrorIs(t, r.Register("random", constant), datasets.ErrBadRegistration)
	assert.ErrorIs(t, r.Register("", constant), datasets.ErrBadRegistration)
	assert.ErrorIs(t, r.Register("x", nil), datasets.ErrBadRegistration)

	require.NoError(t, r.Register("short", func(int, int64) []int { return nil }))
	_, err = r.Generate("short", 3, 0)
	assert.ErrorIs(t, err, datasets.ErrBadSize)
}
