package sorts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/sortlab/instrument"
)

// Built-in algorithm names.
const (
	NameBubble    = "bubble"
	NameInsertion = "insertion"
	NameSelection = "selection"
	NameShell     = "shell"
)

// Registry maps algorithm names to implementations. Build one with
// NewRegistry at start-up and pass it to whoever needs lookups.
type Registry struct {
	algs map[string]Algorithm
}

// NewRegistry returns a Registry holding the four built-in algorithms.
func NewRegistry() *Registry {
	return &Registry{algs: map[string]Algorithm{
		NameBubble:    Bubble,
		NameInsertion: Insertion,
		NameSelection: Selection,
		NameShell:     Shell,
	}}
}

// Register adds alg under name (case-insensitive).
func (r *Registry) Register(name string, alg Algorithm) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || alg == nil {
		return fmt.Errorf("%w: empty name or nil algorithm", ErrBadRegistration)
	}
	if _, ok := r.algs[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateAlgorithm, name)
	}
	r.algs[key] = alg
	return nil
}

// Lookup returns the algorithm registered under name.
func (r *Registry) Lookup(name string) (Algorithm, error) {
	alg, ok := r.algs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.algs[strings.ToLower(name)]
	return ok
}

// Names returns every registered name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algs))
	for name := range r.algs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run looks name up and sorts seq with it. The lookup fails before seq is
// touched.
func (r *Registry) Run(name string, seq []int, in *instrument.Instrumentation, opts ...Option) ([]int, error) {
	alg, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return alg(seq, in, opts...)
}
