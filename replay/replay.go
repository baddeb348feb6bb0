// Package replay captures sort traces and replays their swap/write events
// against the initial sequence.
//
// A trace is replayable by construction: the instrumented algorithms only
// mutate through Swap and Write, so applying those events in order to a
// copy of the initial sequence reproduces every intermediate state and the
// final sequence. Compare and mark events carry no mutation and are skipped.
package replay

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/sorts"
)

// Sentinel errors for replay.
var (
	// ErrIndexOutOfRange is returned when an event addresses a position
	// outside the sequence.
	ErrIndexOutOfRange = errors.New("replay: event index out of range")

	// ErrMalformedEvent is returned for an event of unknown kind.
	ErrMalformedEvent = errors.New("replay: malformed event")

	// ErrDivergence is returned by Verify when the replayed state or the
	// recorded counters disagree with the trace outcome.
	ErrDivergence = errors.New("replay: replay diverges from recorded outcome")
)

// Trace is everything one sort invocation produced.
type Trace struct {
	Initial  []int
	Events   []instrument.Event
	Final    []int
	Counters instrument.Counters
}

// Capture sorts a copy of seq with alg while recording every event. seq
// itself is left untouched.
func Capture(alg sorts.Algorithm, seq []int, opts ...sorts.Option) (*Trace, error) {
	work := slices.Clone(seq)
	rec := instrument.NewRecorder()
	in := instrument.New(instrument.WithSink(rec))
	out, err := alg(work, in, opts...)
	if err != nil {
		return nil, err
	}
	return &Trace{
		Initial:  slices.Clone(seq),
		Events:   rec.Events(),
		Final:    out,
		Counters: in.Counters(),
	}, nil
}

// Apply replays events onto a copy of initial and returns the result.
func Apply(initial []int, events []instrument.Event) ([]int, error) {
	state := slices.Clone(initial)
	for step, ev := range events {
		if err := applyOne(state, ev); err != nil {
			return nil, fmt.Errorf("step %d: %w", step, err)
		}
	}
	return state, nil
}

// Walk replays events onto a copy of initial and calls fn after each event
// with the state as it stands after that event. state is reused between
// calls; fn must copy it to keep it. A non-nil error from fn stops the walk
// and is returned.
func Walk(initial []int, events []instrument.Event, fn func(step int, ev instrument.Event, state []int) error) error {
	state := slices.Clone(initial)
	for step, ev := range events {
		if err := applyOne(state, ev); err != nil {
			return fmt.Errorf("step %d: %w", step, err)
		}
		if err := fn(step, ev, state); err != nil {
			return err
		}
	}
	return nil
}

// Verify replays t and checks it reproduces t.Final, and that the last event
// carries t.Counters.
func Verify(t *Trace) error {
	got, err := Apply(t.Initial, t.Events)
	if err != nil {
		return err
	}
	if !slices.Equal(got, t.Final) {
		return fmt.Errorf("%w: replayed %v, recorded %v", ErrDivergence, got, t.Final)
	}
	if n := len(t.Events); n > 0 && t.Events[n-1].Counters != t.Counters {
		return fmt.Errorf("%w: last event counters %+v, recorded %+v", ErrDivergence, t.Events[n-1].Counters, t.Counters)
	}
	return nil
}

// applyOne mutates state according to a single event.
func applyOne(state []int, ev instrument.Event) error {
	switch ev.Kind {
	case instrument.KindSwap:
		i, j := ev.Index[0], ev.Index[1]
		if !inRange(state, i) || !inRange(state, j) {
			return fmt.Errorf("%w: swap(%d,%d) on length %d", ErrIndexOutOfRange, i, j, len(state))
		}
		state[i], state[j] = state[j], state[i]
	case instrument.KindWrite:
		i := ev.Index[0]
		if !inRange(state, i) {
			return fmt.Errorf("%w: write(%d) on length %d", ErrIndexOutOfRange, i, len(state))
		}
		state[i] = ev.Value
	case instrument.KindCompare, instrument.KindMark:
		// observation only
	default:
		return fmt.Errorf("%w: kind %s", ErrMalformedEvent, ev.Kind)
	}
	return nil
}

func inRange(s []int, i int) bool { return i >= 0 && i < len(s) }
