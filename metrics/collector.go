// SPDX-License-Identifier: MIT
// Package: sortlab/metrics
//
// collector.go — Prometheus vectors fed by instrumentation sinks and
// benchmark rows.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/sortlab/bench"
	"github.com/katalvlaran/sortlab/instrument"
)

const namespace = "sortlab"

// kinds lists every event kind a sink may see, in Kind order.
var kinds = []instrument.Kind{
	instrument.KindCompare,
	instrument.KindSwap,
	instrument.KindWrite,
	instrument.KindMark,
}

// Collector owns the sortlab metric vectors.
type Collector struct {
	operations  *prometheus.CounterVec
	comparisons *prometheus.HistogramVec
	writes      *prometheus.HistogramVec
	duration    *prometheus.HistogramVec
}

// NewCollector builds the vectors and registers them on reg.
// It fails if any of them is already registered there.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		return nil, fmt.Errorf("metrics: nil registerer")
	}
	c := &Collector{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Instrumented operations by algorithm and kind.",
		}, []string{"algorithm", "kind"}),
		comparisons: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_comparisons",
			Help:      "Comparisons per benchmark run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm"}),
		writes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_writes",
			Help:      "Writes per benchmark run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"algorithm"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the sort in each benchmark run.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm"}),
	}
	for _, col := range []prometheus.Collector{c.operations, c.comparisons, c.writes, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// Sink returns an instrument.Sink adding one to
// sortlab_operations_total{algorithm, kind} per accepted event.
// Label children are resolved once, up front. kind="write" counts write
// events, not the Writes counter, which also adds two per swap.
func (c *Collector) Sink(algorithm string) instrument.Sink {
	counters := make([]prometheus.Counter, len(kinds))
	for _, k := range kinds {
		counters[k] = c.operations.WithLabelValues(algorithm, k.String())
	}
	return instrument.SinkFunc(func(ev instrument.Event) {
		if int(ev.Kind) < len(counters) {
			counters[ev.Kind].Inc()
		}
	})
}

// ObserveRow records one benchmark row. Its signature matches
// bench.WithRowHook.
func (c *Collector) ObserveRow(row bench.Row) {
	c.comparisons.WithLabelValues(row.Algorithm).Observe(float64(row.Comparisons))
	c.writes.WithLabelValues(row.Algorithm).Observe(float64(row.Writes))
	c.duration.WithLabelValues(row.Algorithm).Observe(row.TimeMS / 1e3)
}
