// Package sorts provides tunable options and error definitions for the
// instrumented sorting algorithms.
package sorts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sortlab/gaps"
	"github.com/katalvlaran/sortlab/instrument"
)

// Sentinel errors for sort execution.
var (
	// ErrNilInstrumentation is returned when no Instrumentation is supplied.
	ErrNilInstrumentation = errors.New("sorts: instrumentation is nil")

	// ErrUnknownAlgorithm is returned by Registry lookups for an unregistered name.
	ErrUnknownAlgorithm = errors.New("sorts: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sorts: invalid option supplied")

	// ErrBadRegistration is returned by Registry.Register for an empty name
	// or a nil algorithm.
	ErrBadRegistration = errors.New("sorts: bad algorithm registration")

	// ErrDuplicateAlgorithm is returned when registering a name twice.
	ErrDuplicateAlgorithm = errors.New("sorts: algorithm already registered")
)

// Algorithm sorts seq in place through in and returns seq itself.
// Options that do not apply to an algorithm are ignored by it.
type Algorithm func(seq []int, in *instrument.Instrumentation, opts ...Option) ([]int, error)

// DefaultGapVariant is the gap sequence Shell uses when none is chosen.
const DefaultGapVariant = string(gaps.Shell)

// Option configures a sort invocation via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation before
// the sequence is touched.
type Option func(*Options)

// Options holds per-invocation parameters.
type Options struct {
	// GapVariant names the shell-sort gap sequence (case-insensitive).
	GapVariant string

	// Gaps resolves GapVariant. nil means the built-in variants only.
	Gaps *gaps.Registry

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the "shell" gap variant and no
// custom registry.
func DefaultOptions() Options {
	return Options{GapVariant: DefaultGapVariant}
}

// WithGapVariant selects the shell-sort gap sequence. An empty name keeps
// the default, so that registry callers can pass the variant through
// unconditionally.
func WithGapVariant(name string) Option {
	return func(o *Options) {
		if strings.TrimSpace(name) != "" {
			o.GapVariant = name
		}
	}
}

// WithGapRegistry resolves gap variants through r instead of the built-ins.
func WithGapRegistry(r *gaps.Registry) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: nil gap registry", ErrOptionViolation)
			return
		}
		o.Gaps = r
	}
}

// resolve applies opts over the defaults and checks in.
func resolve(in *instrument.Instrumentation, opts []Option) (Options, error) {
	if in == nil {
		return Options{}, ErrNilInstrumentation
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// gapSequence returns the gap sequence selected by o for length n.
func (o Options) gapSequence(n int) ([]int, error) {
	if o.Gaps != nil {
		return o.Gaps.Gaps(o.GapVariant, n)
	}
	return gaps.Sequence(o.GapVariant, n)
}
