// SPDX-License-Identifier: MIT
// Package: sortlab/datasets
//
// registry.go — name → generator lookup and the public Generate entry-point.

package datasets

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps dataset kinds to generators. Build one with NewRegistry and
// pass it to whoever needs lookups.
type Registry struct {
	gens map[string]genFunc
}

// NewRegistry returns a Registry holding the five built-in kinds.
func NewRegistry() *Registry {
	return &Registry{gens: map[string]genFunc{
		Random:       randomDataset,
		Sorted:       sortedDataset,
		Reversed:     reversedDataset,
		NearlySorted: nearlySortedDataset,
		FewUnique:    fewUniqueDataset,
	}}
}

// Register adds a custom generator under name. The generator must be
// deterministic in (n, seed) and return exactly n values; options do not
// apply to it.
func (r *Registry) Register(name string, fn func(n int, seed int64) []int) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || fn == nil {
		return fmt.Errorf("%w: empty name or nil generator", ErrBadRegistration)
	}
	if _, ok := r.gens[key]; ok {
		return fmt.Errorf("%w: %q already registered", ErrBadRegistration, name)
	}
	r.gens[key] = func(n int, seed int64, _ config) []int { return fn(n, seed) }
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.gens[strings.ToLower(name)]
	return ok
}

// Names returns every registered kind in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.gens))
	for name := range r.gens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate returns n integers of kind name, deterministic for fixed
// (name, n, seed, opts).
func (r *Registry) Generate(name string, n int, seed int64, opts ...Option) ([]int, error) {
	gen, ok := r.gens[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	if n < 0 {
		return nil, datasetErrorf(name, ErrBadSize, "n=%d", n)
	}
	out := gen(n, seed, newConfig(opts...))
	if len(out) != n {
		return nil, datasetErrorf(name, ErrBadSize, "generator returned %d values, want %d", len(out), n)
	}
	return out, nil
}

// Generate resolves one of the built-in kinds and generates it.
func Generate(name string, n int, seed int64, opts ...Option) ([]int, error) {
	return NewRegistry().Generate(name, n, seed, opts...)
}

// Names lists the built-in kinds in sorted order.
func Names() []string {
	return []string{FewUnique, NearlySorted, Random, Reversed, Sorted}
}
