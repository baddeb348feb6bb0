// SPDX-License-Identifier: MIT
// Package: sortlab/gaps
//
// registry.go — explicit name → generator registry.
//
// Design:
//   • No package-level mutable state: callers build a Registry at start-up
//     and pass it to whatever needs lookups (sorts, bench).
//   • Names are case-insensitive and stored lower-cased.

package gaps

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateVariant is returned when registering a name twice.
var ErrDuplicateVariant = errors.New("gaps: variant already registered")

// ErrBadRegistration is returned for an empty name or a nil generator.
var ErrBadRegistration = errors.New("gaps: invalid registration")

// Registry maps variant names to generators.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a Registry preloaded with the built-in variants.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func, len(Variants()))}
	for _, v := range Variants() {
		r.funcs[string(v)] = v.Func()
	}
	return r
}

// Register adds a custom generator under name.
func (r *Registry) Register(name string, fn Func) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || fn == nil {
		return fmt.Errorf("%w: name=%q nil=%t", ErrBadRegistration, name, fn == nil)
	}
	if _, ok := r.funcs[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateVariant, name)
	}
	r.funcs[key] = fn
	return nil
}

// Lookup returns the generator registered under name.
func (r *Registry) Lookup(name string) (Func, error) {
	fn, ok := r.funcs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return fn, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[strings.ToLower(name)]
	return ok
}

// Gaps resolves name and returns its sequence for length n. Custom
// generators are checked with Validate.
func (r *Registry) Gaps(name string, n int) ([]int, error) {
	fn, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	gaps := fn(n)
	if err = Validate(gaps); err != nil {
		return nil, fmt.Errorf("variant %q, n=%d: %w", name, n, err)
	}
	return gaps, nil
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
