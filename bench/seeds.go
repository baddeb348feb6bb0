// SPDX-License-Identifier: MIT
// Package: sortlab/bench
//
// seeds.go — deterministic per-trial seeds.
//
// Policy:
//   • One seed per (dataset, size, trial), drawn in exactly that nesting
//     order from a single stream seeded with Plan.Seed.
//   • Every algorithm and gap variant reuses the same seeds, so all of them
//     sort the same inputs.
//   • math/rand.Rand is not goroutine-safe; the map is built once before any
//     worker starts.

package bench

import "math/rand"

// seedSpan bounds drawn seeds to [0, 2^32-1].
const seedSpan = int64(1) << 32

// seedKey identifies one dataset instance.
type seedKey struct {
	dataset string
	n       int
	trial   int
}

// buildSeedMap draws one seed per (dataset, size, trial) from base.
//
// Complexity: O(|datasets|·|sizes|·trials).
func buildSeedMap(datasetNames []string, sizes []int, trials int, base int64) map[seedKey]int64 {
	r := rand.New(rand.NewSource(base))
	seeds := make(map[seedKey]int64, len(datasetNames)*len(sizes)*trials)
	for _, ds := range datasetNames {
		for _, n := range sizes {
			for trial := 1; trial <= trials; trial++ {
				seeds[seedKey{dataset: ds, n: n, trial: trial}] = r.Int63n(seedSpan)
			}
		}
	}
	return seeds
}
