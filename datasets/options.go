// SPDX-License-Identifier: MIT
// Package: sortlab/datasets
//
// options.go — functional options for the dataset generators.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs; the
//     generators themselves only return errors.
//   • Determinism is explicit: the seed is a Generate argument, never an option.

package datasets

// Option customizes a generator by mutating its config before generation.
type Option func(*config)

// WithValueFactor sets k so that values are drawn from [0, k·n].
// Panics if k < 1.
func WithValueFactor(k int) Option {
	if k < 1 {
		panic("datasets: WithValueFactor(k<1)")
	}
	return func(c *config) {
		c.valueFactor = k
	}
}

// WithSwapFraction sets the share of random swaps applied by nearly_sorted.
// Panics unless 0 <= f <= 1. At least one swap is always made for n >= 2.
func WithSwapFraction(f float64) Option {
	if f < 0 || f > 1 {
		panic("datasets: WithSwapFraction(f outside [0,1])")
	}
	return func(c *config) {
		c.swapFraction = f
	}
}

// WithUniqueDivisor sets d so that few_unique draws max(2, n/d) distinct
// values. Panics if d < 1.
func WithUniqueDivisor(d int) Option {
	if d < 1 {
		panic("datasets: WithUniqueDivisor(d<1)")
	}
	return func(c *config) {
		c.uniqueDivisor = d
	}
}
