// SPDX-License-Identifier: MIT
// Package: sortlab/instrument
//
// types.go — events, counters, sentinel errors and options.

package instrument

import (
	"errors"
	"fmt"
)

// ErrInvalidOp is returned by Compare/CompareAt and ParseOp for an operator
// outside the closed LT..NE set.
var ErrInvalidOp = errors.New("instrument: invalid comparison operator")

// Kind identifies the operation an Event records.
type Kind uint8

const (
	// KindCompare records a comparison between two positions.
	KindCompare Kind = iota
	// KindSwap records an exchange of two positions.
	KindSwap
	// KindWrite records an assignment of a value to one position.
	KindWrite
	// KindMark records an annotation of one position.
	KindMark
)

var kindNames = [...]string{
	KindCompare: "compare",
	KindSwap:    "swap",
	KindWrite:   "write",
	KindMark:    "mark",
}

// String returns the lower-case wire name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Arity returns how many indices an event of this kind carries.
func (k Kind) Arity() int {
	switch k {
	case KindCompare, KindSwap:
		return 2
	case KindWrite, KindMark:
		return 1
	default:
		return 0
	}
}

// Counters is a snapshot of the three operation counters.
type Counters struct {
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Swaps       int `json:"swaps" yaml:"swaps"`
	Writes      int `json:"writes" yaml:"writes"`
}

// Event is one recorded operation. Events are plain values: a sink may keep
// them without copying.
//
// Index holds Kind.Arity() meaningful entries. Value is set only for
// KindWrite, Label only for KindMark. Counters is the state right after the
// operation completed.
type Event struct {
	Kind     Kind
	Index    [2]int
	Value    int
	Label    string
	Counters Counters
}

// Indices returns the event's positions as a fresh slice of length Kind.Arity().
func (e Event) Indices() []int {
	out := make([]int, e.Kind.Arity())
	copy(out, e.Index[:])
	return out
}

// String renders the event in a compact, log-friendly form.
func (e Event) String() string {
	c := e.Counters
	switch e.Kind {
	case KindCompare, KindSwap:
		return fmt.Sprintf("%s(%d,%d) c=%d s=%d w=%d", e.Kind, e.Index[0], e.Index[1], c.Comparisons, c.Swaps, c.Writes)
	case KindWrite:
		return fmt.Sprintf("write(%d)=%d c=%d s=%d w=%d", e.Index[0], e.Value, c.Comparisons, c.Swaps, c.Writes)
	case KindMark:
		return fmt.Sprintf("mark(%d) %q c=%d s=%d w=%d", e.Index[0], e.Label, c.Comparisons, c.Swaps, c.Writes)
	default:
		return e.Kind.String()
	}
}

// Option configures an Instrumentation at construction time.
type Option func(*Instrumentation)

// WithSink registers s as the event sink. A nil sink, including a typed nil
// such as (*Recorder)(nil), leaves tracing disabled.
func WithSink(s Sink) Option {
	return func(in *Instrumentation) {
		if !isNilSink(s) {
			in.sink = s
		}
	}
}

// WithSinkFunc registers fn as the event sink. A nil fn leaves tracing disabled.
func WithSinkFunc(fn func(Event)) Option {
	return func(in *Instrumentation) {
		if fn != nil {
			in.sink = SinkFunc(fn)
		}
	}
}
