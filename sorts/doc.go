// Package sorts implements bubble, insertion, selection and shell sort on
// []int, routing every element comparison, swap and write through an
// *instrument.Instrumentation.
//
// What
//
//   - Each algorithm sorts in place and returns the very slice it was given.
//   - Elements are only mutated through in.Swap / in.Write and only compared
//     through in.CompareAt, so the counters are exact and the event stream
//     (when a sink is attached) replays to the same final sequence.
//   - Attaching a sink never changes the result: tracing is observation only.
//
// Algorithms
//
//	Bubble     adjacent swaps, early exit on a swap-free pass
//	Insertion  held-out key, shifts via writes; compare events use (j, j+1)
//	Selection  min scan with LT, swap only when the minimum moved
//	Shell      gapped insertion over a gap sequence (package gaps)
//
// Options
//
//   - DefaultOptions(): gap variant "shell", built-in gap variants.
//   - WithGapVariant(name):   pick "shell", "knuth", "hibbard", "tokuda" or a registered name.
//   - WithGapRegistry(r):     resolve gap variants through a custom *gaps.Registry.
//
// Registry
//
//	reg := sorts.NewRegistry()
//	out, err := reg.Run("shell", data, instrument.New(), sorts.WithGapVariant("knuth"))
//
// Errors
//
//   - ErrNilInstrumentation  if in is nil.
//   - ErrOptionViolation     for an invalid Option (e.g. nil gap registry).
//   - ErrUnknownAlgorithm    from Registry.Lookup / Registry.Run.
//   - gaps.ErrUnknownVariant from Shell, before any element is touched.
//   - instrument.ErrInvalidOp cannot occur with the built-in algorithms.
//
// Complexity (n = len(seq))
//
//	Bubble, Insertion: O(n²) worst, O(n) on sorted input
//	Selection:         Θ(n²) comparisons, O(n) swaps
//	Shell:             gap-sequence dependent, sub-quadratic for knuth/hibbard/tokuda
package sorts
