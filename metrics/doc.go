// Package metrics exports sorting activity as Prometheus metrics.
//
// A Collector registers its vectors on a caller-supplied
// prometheus.Registerer (never the global default registry) and feeds them
// from two places:
//
//   - Collector.Sink(algorithm) is an instrument.Sink counting events by
//     kind under sortlab_operations_total{algorithm,kind};
//   - Collector.ObserveRow is a bench row hook filling the per-run
//     histograms sortlab_run_comparisons, sortlab_run_writes and
//     sortlab_run_duration_seconds.
//
// Both can be attached to a bench.Runner:
//
//	col, _ := metrics.NewCollector(reg)
//	rn := bench.NewRunner(
//		bench.WithRowHook(col.ObserveRow),
//		bench.WithSinkFactory(func(j bench.Job) instrument.Sink { return col.Sink(j.Algorithm) }),
//	)
//
// Collector methods are safe for concurrent use.
package metrics
