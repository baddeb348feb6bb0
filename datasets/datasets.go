// SPDX-License-Identifier: MIT
// Package: sortlab/datasets
//
// datasets.go — the five built-in generators.
//
// Contract:
//   • Each generator returns exactly n integers, deterministically for a
//     given (n, seed, options).
//   • Every generator seeds its own *rand.Rand; nothing is shared between calls.

package datasets

import (
	"math/rand"
	"sort"
)

// Built-in dataset kinds.
const (
	Random       = "random"
	Sorted       = "sorted"
	Reversed     = "reversed"
	NearlySorted = "nearly_sorted"
	FewUnique    = "few_unique"
)

// genFunc generates a dataset of length n from seed under cfg.
type genFunc func(n int, seed int64, cfg config) []int

// rngFromSeed returns a deterministic source for seed.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// drawUniform fills a fresh slice with n values from [0, cfg.maxValue(n)].
func drawUniform(r *rand.Rand, n int, cfg config) []int {
	out := make([]int, n)
	hi := cfg.maxValue(n) + 1
	for i := range out {
		out[i] = r.Intn(hi)
	}
	return out
}

// randomDataset draws n uniform values.
func randomDataset(n int, seed int64, cfg config) []int {
	return drawUniform(rngFromSeed(seed), n, cfg)
}

// sortedDataset is randomDataset in ascending order.
func sortedDataset(n int, seed int64, cfg config) []int {
	out := randomDataset(n, seed, cfg)
	sort.Ints(out)
	return out
}

// reversedDataset is randomDataset in descending order.
func reversedDataset(n int, seed int64, cfg config) []int {
	out := randomDataset(n, seed, cfg)
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// nearlySortedDataset disturbs sortedDataset with max(1, ⌊f·n⌋) random
// position swaps drawn from a second stream on the same seed.
func nearlySortedDataset(n int, seed int64, cfg config) []int {
	out := sortedDataset(n, seed, cfg)
	if n < 2 {
		return out
	}
	r := rngFromSeed(seed)
	swaps := int(float64(n) * cfg.swapFraction)
	if swaps < minNearlySortedSwaps {
		swaps = minNearlySortedSwaps
	}
	for k := 0; k < swaps; k++ {
		i, j := r.Intn(n), r.Intn(n)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// fewUniqueDataset draws n values from a pool of max(2, n/d) uniform values.
func fewUniqueDataset(n int, seed int64, cfg config) []int {
	r := rngFromSeed(seed)
	k := n / cfg.uniqueDivisor
	if k < minUniqueValues {
		k = minUniqueValues
	}
	// pool values span [0, maxValue(n)], not [0, maxValue(k)]
	hi := cfg.maxValue(n) + 1
	pool := make([]int, k)
	for i := range pool {
		pool[i] = r.Intn(hi)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = pool[r.Intn(len(pool))]
	}
	return out
}
