// SPDX-License-Identifier: MIT
// Package: sortlab/instrument
//
// instrument.go — counters and the five mediated operations.
//
// Contract:
//   • Counters only grow; nothing resets them.
//   • An event is emitted after the operation and its counter updates, so the
//     snapshot it carries always describes a completed operation.
//   • emit is guarded by a nil check on the sink before any Event is built.

package instrument

// Instrumentation mediates every element operation of one sort invocation.
type Instrumentation struct {
	comparisons int
	swaps       int
	writes      int
	sink        Sink
}

// New returns a fresh Instrumentation with zero counters.
func New(opts ...Option) *Instrumentation {
	in := &Instrumentation{}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Tracing reports whether a sink is registered.
func (in *Instrumentation) Tracing() bool { return in.sink != nil }

// Comparisons returns the number of comparisons performed so far.
func (in *Instrumentation) Comparisons() int { return in.comparisons }

// Swaps returns the number of effective swaps performed so far.
func (in *Instrumentation) Swaps() int { return in.swaps }

// Writes returns the number of element writes performed so far; a swap
// accounts for two.
func (in *Instrumentation) Writes() int { return in.writes }

// Counters returns a snapshot of all three counters.
func (in *Instrumentation) Counters() Counters {
	return Counters{Comparisons: in.comparisons, Swaps: in.swaps, Writes: in.writes}
}

// Compare evaluates a op b and counts one comparison. No event is emitted
// because no positions are known.
//
// An invalid op is counted before ErrInvalidOp is returned.
func (in *Instrumentation) Compare(a, b int, op Op) (bool, error) {
	in.comparisons++
	return op.Eval(a, b)
}

// CompareAt evaluates a op b, counts one comparison and emits a compare
// event for positions (i, j).
//
// An invalid op is counted and its event emitted before ErrInvalidOp is
// returned.
func (in *Instrumentation) CompareAt(a, b, i, j int, op Op) (bool, error) {
	in.comparisons++
	if in.sink != nil {
		in.emit(Event{Kind: KindCompare, Index: [2]int{i, j}})
	}
	return op.Eval(a, b)
}

// Swap exchanges seq[i] and seq[j]. Swapping a position with itself is not
// observable work: no counter moves and no event is emitted.
func (in *Instrumentation) Swap(seq []int, i, j int) {
	if i == j {
		return
	}
	seq[i], seq[j] = seq[j], seq[i]
	in.swaps++
	in.writes += 2
	if in.sink != nil {
		in.emit(Event{Kind: KindSwap, Index: [2]int{i, j}})
	}
}

// Write assigns v to seq[i] and counts one write.
func (in *Instrumentation) Write(seq []int, i, v int) {
	seq[i] = v
	in.writes++
	if in.sink != nil {
		in.emit(Event{Kind: KindWrite, Index: [2]int{i, 0}, Value: v})
	}
}

// Mark annotates position i with label. Counters are untouched; without a
// sink Mark does nothing.
func (in *Instrumentation) Mark(i int, label string) {
	if in.sink != nil {
		in.emit(Event{Kind: KindMark, Index: [2]int{i, 0}, Label: label})
	}
}

// emit stamps ev with the current counters and hands it to the sink.
func (in *Instrumentation) emit(ev Event) {
	ev.Counters = in.Counters()
	in.sink.Accept(ev)
}
