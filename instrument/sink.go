// SPDX-License-Identifier: MIT
// Package: sortlab/instrument
//
// sink.go — event sinks: the interface, a func adapter, an in-memory
// recorder and an ordered fan-out.

package instrument

import "reflect"

// Sink receives events synchronously, in operation order.
// Accept must not retain a reference to anything but the Event value.
type Sink interface {
	Accept(Event)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Event)

// Accept calls f(ev).
func (f SinkFunc) Accept(ev Event) { f(ev) }

// Recorder collects every accepted event in memory. The zero value is ready
// to use. It is not safe for concurrent use, matching Instrumentation.
type Recorder struct {
	events []Event
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Accept appends ev.
func (r *Recorder) Accept(ev Event) {
	r.events = append(r.events, ev)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int { return len(r.events) }

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Reset drops every recorded event, keeping the backing storage.
func (r *Recorder) Reset() { r.events = r.events[:0] }

// isNilSink reports whether s is nil or an interface holding a nil pointer,
// func, map, slice or chan.
func isNilSink(s Sink) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Tee returns a Sink forwarding each event to every non-nil sink, in the
// order given. It returns nil when no sink remains, so that
// New(WithSink(Tee())) keeps tracing disabled.
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if !isNilSink(s) {
			out = append(out, s)
		}
	}
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	}
	return out
}

type tee []Sink

func (t tee) Accept(ev Event) {
	for _, s := range t {
		s.Accept(ev)
	}
}
