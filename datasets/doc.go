// Package datasets generates deterministic integer sequences to sort.
//
// Generate(name, n, seed) returns n integers and always the same ones for
// the same arguments. Built-in kinds:
//
//	random         uniform values in [0, 10n]
//	sorted         random, ascending
//	reversed       random, descending
//	nearly_sorted  sorted, then max(1, 3% of n) random position swaps
//	few_unique     n draws from a pool of max(2, n/10) uniform values
//
// The multipliers are tunable with WithValueFactor, WithSwapFraction and
// WithUniqueDivisor. Those constructors panic on meaningless values;
// Generate itself only returns ErrUnknownDataset or ErrBadSize.
//
// Each call seeds its own math/rand source, so generation is safe to run
// from concurrent benchmark workers.
package datasets
