package instrument_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortlab/instrument"
)

// TestNew_ZeroCounters verifies a fresh Instrumentation starts at zero and
// traces nothing without a sink.
func TestNew_ZeroCounters(t *testing.T) {
	in := instrument.New()
	assert.Equal(t, instrument.Counters{}, in.Counters())
	assert.False(t, in.Tracing(), "no sink registered")

	in = instrument.New(instrument.WithSink(nil), instrument.WithSinkFunc(nil))
	assert.False(t, in.Tracing(), "nil sinks must leave tracing disabled")
}

// TestCompare_AllOps checks every operator and that each call counts once.
func TestCompare_AllOps(t *testing.T) {
	cases := []struct {
		op   instrument.Op
		a, b int
		want bool
	}{
		{instrument.LT, 1, 2, true},
		{instrument.LT, 2, 2, false},
		{instrument.GT, 3, 2, true},
		{instrument.GT, 2, 2, false},
		{instrument.LE, 2, 2, true},
		{instrument.LE, 3, 2, false},
		{instrument.GE, 2, 2, true},
		{instrument.GE, 1, 2, false},
		{instrument.EQ, 4, 4, true},
		{instrument.EQ, 4, 5, false},
		{instrument.NE, 4, 5, true},
		{instrument.NE, 5, 5, false},
	}
	in := instrument.New()
	for k, tc := range cases {
		got, err := in.Compare(tc.a, tc.b, tc.op)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%d %s %d", tc.a, tc.op, tc.b)
		assert.Equal(t, k+1, in.Comparisons())
	}
	assert.Zero(t, in.Swaps())
	assert.Zero(t, in.Writes())
}

// TestCompare_NoEventWithoutIndices ensures Compare never reaches the sink.
func TestCompare_NoEventWithoutIndices(t *testing.T) {
	rec := instrument.NewRecorder()
	in := instrument.New(instrument.WithSink(rec))
	_, err := in.Compare(1, 2, instrument.LT)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Len())
	assert.Equal(t, 1, in.Comparisons())
}

// TestCompareAt_EmitsPostIncrementSnapshot checks the compare event payload.
func TestCompareAt_EmitsPostIncrementSnapshot(t *testing.T) {
	rec := instrument.NewRecorder()
	in := instrument.New(instrument.WithSink(rec))

	ok, err := in.CompareAt(5, 3, 0, 1, instrument.GT)
	require.NoError(t, err)
	assert.True(t, ok)

	events := rec.Events()
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, instrument.KindCompare, ev.Kind)
	assert.Equal(t, []int{0, 1}, ev.Indices())
	assert.Equal(t, instrument.Counters{Comparisons: 1}, ev.Counters)
}

// TestCompare_InvalidOpCountsFirst pins the invalid-operator accounting:
// the comparison is counted (and traced) before the error surfaces.
func TestCompare_InvalidOpCountsFirst(t *testing.T) {
	rec := instrument.NewRecorder()
	in := instrument.New(instrument.WithSink(rec))
	bad := instrument.Op(42)

	_, err := in.Compare(1, 2, bad)
	assert.ErrorIs(t, err, instrument.ErrInvalidOp)
	assert.Equal(t, 1, in.Comparisons())
	assert.Equal(t, 0, rec.Len())

	_, err = in.CompareAt(1, 2, 3, 4, bad)
	assert.ErrorIs(t, err, instrument.ErrInvalidOp)
	assert.Equal(t, 2, in.Comparisons())
	require.Equal(t, 1, rec.Len())
	assert.Equal(t, 2, rec.Events()[0].Counters.Comparisons)

	// other counters are untouched
	assert.Zero(t, in.Swaps())
	assert.Zero(t, in.Writes())
}

// TestSwap covers the exchange, the counters and the self-swap no-op.
func TestSwap(t *testing.T) {
	rec := instrument.NewRecorder()
	in := instrument.New(instrument.WithSink(rec))
	seq := []int{1, 2, 3}

	in.Swap(seq, 1, 1)
	assert.Equal(t, []int{1, 2, 3}, seq)
	assert.Equal(t, instrument.Counters{}, in.Counters(), "self-swap is not work")
	assert.Equal(t, 0, rec.Len(), "self-swap emits nothing")

	in.Swap(seq, 0, 2)
	assert.Equal(t, []int{3, 2, 1}, seq)
	assert.Equal(t, instrument.Counters{Swaps: 1, Writes: 2}, in.Counters())

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, instrument.KindSwap, events[0].Kind)
	assert.Equal(t, []int{0, 2}, events[0].Indices())
	assert.Equal(t, instrument.Counters{Swaps: 1, Writes: 2}, events[0].Counters)
}

// TestWrite checks assignment, counting and the carried value.
func TestWrite(t *testing.T) {
	rec := instrument.NewRecorder()
	in := instrument.New(instrument.WithSink(rec))
	seq := []int{0, 0}

	in.Write(seq, 1, 9)
	assert.Equal(t, []int{0, 9}, seq)
	assert.Equal(t, 1, in.Writes())

	ev := rec.Events()[0]
	assert.Equal(t, instrument.KindWrite, ev.Kind)
	assert.Equal(t, []int{1}, ev.Indices())
	assert.Equal(t, 9, ev.Value)
	assert.Equal(t, instrument.Counters{Writes: 1}, ev.Counters)
}

// TestMark ensures marks are pure annotations.
func TestMark(t *testing.T) {
	rec := instrument.NewRecorder()
	in := instrument.New(instrument.WithSink(rec))
	in.Mark(3, "pivot")

	assert.Equal(t, instrument.Counters{}, in.Counters())
	ev := rec.Events()[0]
	assert.Equal(t, instrument.KindMark, ev.Kind)
	assert.Equal(t, []int{3}, ev.Indices())
	assert.Equal(t, "pivot", ev.Label)

	// without a sink Mark is inert
	instrument.New().Mark(0, "ignored")
}

// TestEvents_TemporalOrder verifies the snapshots grow with the stream.
func TestEvents_TemporalOrder(t *testing.T) {
	var got []instrument.Event
	in := instrument.New(instrument.WithSinkFunc(func(ev instrument.Event) {
		got = append(got, ev)
	}))
	seq := []int{2, 1}

	_, _ = in.CompareAt(seq[0], seq[1], 0, 1, instrument.GT)
	in.Swap(seq, 0, 1)
	in.Write(seq, 0, 7)
	in.Mark(0, "done")

	kinds := make([]instrument.Kind, len(got))
	for i, ev := range got {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []instrument.Kind{
		instrument.KindCompare, instrument.KindSwap, instrument.KindWrite, instrument.KindMark,
	}, kinds)
	assert.Equal(t, instrument.Counters{Comparisons: 1, Swaps: 1, Writes: 3}, got[3].Counters)
}

// TestNoSink_NoEventConstruction asserts zero allocations on the hot path
// when tracing is disabled.
func TestNoSink_NoEventConstruction(t *testing.T) {
	in := instrument.New()
	seq := []int{1, 2, 3, 4}
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = in.CompareAt(seq[0], seq[1], 0, 1, instrument.LT)
		in.Swap(seq, 0, 1)
		in.Write(seq, 2, 5)
		in.Mark(3, "x")
	})
	assert.Zero(t, allocs)
}

// TestRecorder_CopyAndReset verifies Events returns an independent copy.
func TestRecorder_CopyAndReset(t *testing.T) {
	var rec instrument.Recorder
	rec.Accept(instrument.Event{Kind: instrument.KindMark, Label: "a"})
	events := rec.Events()
	events[0].Label = "mutated"
	assert.Equal(t, "a", rec.Events()[0].Label)

	rec.Reset()
	assert.Equal(t, 0, rec.Len())
}

// TestWithSink_TypedNil keeps tracing off for nil pointers and funcs.
func TestWithSink_TypedNil(t *testing.T) {
	var rec *instrument.Recorder
	var fn instrument.SinkFunc
	for name, s := range map[string]instrument.Sink{"recorder": rec, "func": fn} {
		in := instrument.New(instrument.WithSink(s))
		assert.False(t, in.Tracing(), name)
		assert.NotPanics(t, func() {
			seq := []int{2, 1}
			_, _ = in.CompareAt(seq[0], seq[1], 0, 1, instrument.GT)
			in.Swap(seq, 0, 1)
			in.Mark(0, "x")
		}, name)
	}
	assert.Nil(t, instrument.Tee(rec, fn))
}

// TestTee forwards to every sink in order and collapses trivial cases.
func TestTee(t *testing.T) {
	assert.Nil(t, instrument.Tee())
	assert.Nil(t, instrument.Tee(nil, nil))

	a, b := instrument.NewRecorder(), instrument.NewRecorder()
	assert.Same(t, a, instrument.Tee(nil, a))

	var order []string
	first := instrument.SinkFunc(func(instrument.Event) { order = append(order, "first") })
	second := instrument.SinkFunc(func(instrument.Event) { order = append(order, "second") })
	in := instrument.New(instrument.WithSink(instrument.Tee(a, first, b, second)))
	in.Mark(0, "m")

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, []string{"first", "second"}, order)
}

// TestKind_Names covers the wire names and arities.
func TestKind_Names(t *testing.T) {
	assert.Equal(t, "compare", instrument.KindCompare.String())
	assert.Equal(t, "swap", instrument.KindSwap.String())
	assert.Equal(t, "write", instrument.KindWrite.String())
	assert.Equal(t, "mark", instrument.KindMark.String())
	assert.Equal(t, "Kind(9)", instrument.Kind(9).String())
	assert.Equal(t, 0, instrument.Kind(9).Arity())
}
