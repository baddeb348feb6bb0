// Package sortlab is a small laboratory for watching comparison sorts work:
// every comparison, swap and write they perform is counted and, on demand,
// streamed as an event you can record, replay or export.
//
// 🚀 What is sortlab?
//
//	A deterministic, registry-driven toolkit that brings together:
//		• Instrumentation: operation counters + synchronous event sinks
//		• Algorithms: bubble, insertion, selection, shell
//		• Gap sequences: Shell, Knuth, Hibbard, Tokuda
//		• Datasets: random, sorted, reversed, nearly sorted, few unique
//		• Replay: capture a trace and rebuild every intermediate state
//		• Benchmarks: seeded plans, bounded workers, one row per run
//		• Metrics: Prometheus counters and histograms over runs
//
// ✨ Why sortlab?
//
//   - Reproducible – every input derives from one base seed
//   - Explicit – registries are values, nothing is global
//   - Cheap when quiet – no event is built unless a sink listens
//   - Extensible – register your own algorithm, gap sequence or dataset
//
// Under the hood the work is split into subpackages:
//
//	instrument/ — counters, the Op set, events and sinks
//	gaps/       — gap sequence generators + registry
//	sorts/      — the algorithms, their options + registry
//	datasets/   — seeded input generators + registry
//	replay/     — trace capture, apply, walk and verify
//	bench/      — plan (YAML), job expansion, runner, rows
//	metrics/    — Prometheus collector fed by sinks and rows
//
// Quick example:
//
//	in := instrument.New()
//	out, _ := sorts.Shell([]int{5, 1, 4, 2}, in, sorts.WithGapVariant("knuth"))
//	fmt.Println(out, in.Counters())
//
//	go get github.com/katalvlaran/sortlab
package sortlab
