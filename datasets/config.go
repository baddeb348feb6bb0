// SPDX-License-Identifier: MIT
// Package: sortlab/datasets
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • valueFactor    = 10    values drawn from [0, valueFactor·n]
//   • swapFraction   = 0.03  share of positions disturbed in nearly_sorted
//   • uniqueDivisor  = 10    few_unique draws max(2, n/uniqueDivisor) distinct values
//
// newConfig applies options in order; later options override earlier ones.

package datasets

const (
	defaultValueFactor   = 10   // upper bound multiplier for drawn values
	defaultSwapFraction  = 0.03 // nearly_sorted disturbance ratio
	defaultUniqueDivisor = 10   // few_unique distinct-value divisor
	minUniqueValues      = 2    // few_unique never collapses to one value
	minNearlySortedSwaps = 1    // nearly_sorted always disturbs something
)

// config aggregates every generator knob. It is passed by value.
type config struct {
	valueFactor   int
	swapFraction  float64
	uniqueDivisor int
}

// newConfig returns the defaults with opts applied in order.
func newConfig(opts ...Option) config {
	cfg := config{
		valueFactor:   defaultValueFactor,
		swapFraction:  defaultSwapFraction,
		uniqueDivisor: defaultUniqueDivisor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// maxValue is the inclusive upper bound of drawn values for length n.
func (c config) maxValue(n int) int {
	return n * c.valueFactor
}
