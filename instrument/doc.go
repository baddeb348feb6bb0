// Package instrument counts and traces the element operations a sorting
// algorithm performs.
//
// What
//
//   - Every comparison, swap and write an algorithm performs goes through an
//     *Instrumentation. Algorithms never mutate the sequence themselves.
//   - Three monotonic counters are maintained: comparisons, swaps, writes.
//   - An optional Sink receives one Event per observable operation, carrying
//     the operation's indices and a snapshot of the counters taken right
//     after the operation completed.
//
// Why
//
//   - Benchmarks only need the final counters (no sink, no allocations).
//   - Visualizers need the ordered event stream: replaying the swap and
//     write events against the initial sequence reproduces every
//     intermediate state (see package replay).
//
// Operations
//
//	Compare(a, b, op)          comparisons+1, no event
//	CompareAt(a, b, i, j, op)  comparisons+1, compare event (i, j)
//	Swap(seq, i, j)            i==j is a no-op; else swaps+1, writes+2, swap event (i, j)
//	Write(seq, i, v)           writes+1, write event (i) with value v
//	Mark(i, label)             mark event (i) with label, counters untouched
//
// Comparison operators form a closed set (LT, GT, LE, GE, EQ, NE). An Op
// outside that set fails with ErrInvalidOp; the comparison is still counted
// (and its event emitted) before the failure is reported, which keeps the
// counters identical to the reference benchmarks.
//
// No-sink contract
//
//	When no sink is registered no Event value is ever built. The check is a
//	single nil comparison in each operation, so instrumented hot loops pay
//	only for the counter increments.
//
// Concurrency
//
//	An Instrumentation belongs to exactly one sort invocation and is not
//	safe for concurrent use. Sinks are called synchronously and inline;
//	buffering is the sink's responsibility.
//
// Usage
//
//	rec := instrument.NewRecorder()
//	in := instrument.New(instrument.WithSink(rec))
//	if _, err := sorts.Bubble(data, in); err != nil {
//	    // handle
//	}
//	fmt.Println(in.Counters(), rec.Len())
package instrument
