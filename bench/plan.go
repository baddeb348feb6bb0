// SPDX-License-Identifier: MIT
// Package: sortlab/bench
//
// plan.go — the declarative benchmark plan and its YAML form.
//
// A plan file overrides DefaultPlan field by field; unknown keys are
// rejected so that typos do not silently fall back to defaults:
//
//	algorithms: [shell, insertion]
//	gap_variants: [knuth, tokuda]
//	sizes: [100, 1000]
//	datasets: [random, nearly_sorted]
//	trials: 3
//	seed: 42

package bench

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sortlab/datasets"
)

// AllAlgorithms expands to every registered algorithm.
const AllAlgorithms = "all"

// Plan describes which (algorithm, gap variant, dataset, size, trial) runs
// a benchmark performs.
type Plan struct {
	// Algorithms to run; "all" expands to every registered algorithm.
	Algorithms []string `yaml:"algorithms"`
	// GapVariants applied to shell sort; empty means every registered variant.
	GapVariants []string `yaml:"gap_variants"`
	// Sizes are the input lengths.
	Sizes []int `yaml:"sizes"`
	// Datasets are the dataset kinds.
	Datasets []string `yaml:"datasets"`
	// Trials per (dataset, size), each with its own seed.
	Trials int `yaml:"trials"`
	// Seed is the base seed the per-trial seeds are drawn from.
	Seed int64 `yaml:"seed"`
}

// DefaultPlan returns every algorithm on every built-in dataset, sizes
// 50..5000, five trials, base seed 0 and every gap variant.
func DefaultPlan() Plan {
	return Plan{
		Algorithms: []string{AllAlgorithms},
		Sizes:      DefaultSizes(),
		Datasets:   datasets.Names(),
		Trials:     5,
		Seed:       0,
	}
}

// DefaultSizes returns the default input lengths.
func DefaultSizes() []int {
	return []int{50, 100, 200, 500, 1000, 2000, 5000}
}

// LoadPlan decodes a YAML plan from r over DefaultPlan and validates it.
// An empty document yields DefaultPlan.
func LoadPlan(r io.Reader) (Plan, error) {
	plan := DefaultPlan()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("%w: decode: %v", ErrInvalidPlan, err)
	}
	if err := plan.Validate(); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

// Validate checks the plan's shape. Names are checked against registries by
// Runner.Run.
func (p Plan) Validate() error {
	switch {
	case len(p.Algorithms) == 0:
		return fmt.Errorf("%w: no algorithms", ErrInvalidPlan)
	case len(p.Sizes) == 0:
		return fmt.Errorf("%w: no sizes", ErrInvalidPlan)
	case len(p.Datasets) == 0:
		return fmt.Errorf("%w: no datasets", ErrInvalidPlan)
	case p.Trials < 1:
		return fmt.Errorf("%w: trials must be >= 1, got %d", ErrInvalidPlan, p.Trials)
	}
	for _, n := range p.Sizes {
		if n < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidPlan, n)
		}
	}
	return nil
}
