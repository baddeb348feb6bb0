// SPDX-License-Identifier: MIT
// Package: sortlab/bench
//
// runner.go — plan expansion and bounded parallel execution.
//
// Contract:
//   • Every name in the plan is resolved before the first sort starts.
//   • Each job generates its own input and owns its own Instrumentation;
//     jobs share nothing mutable.
//   • Rows come back in job order whatever the worker count.
//   • Cancellation is checked between jobs; a sort in progress runs to
//     completion.

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sortlab/datasets"
	"github.com/katalvlaran/sortlab/gaps"
	"github.com/katalvlaran/sortlab/instrument"
	"github.com/katalvlaran/sortlab/sorts"
)

// ErrInvalidPlan is returned for a plan that cannot be executed.
var ErrInvalidPlan = errors.New("bench: invalid plan")

// Job is one (algorithm, gap variant, dataset, size, trial) execution.
type Job struct {
	Index      int
	Algorithm  string
	GapVariant string
	Dataset    string
	N          int
	Trial      int
	Seed       int64
}

// Runner executes plans. Build it with NewRunner.
type Runner struct {
	algorithms  *sorts.Registry
	gaps        *gaps.Registry
	datasets    *datasets.Registry
	logger      *slog.Logger
	workers     int
	rowHook     func(Row)
	sinkFactory func(Job) instrument.Sink
	now         func() time.Time
}

// RunnerOption configures a Runner. Constructors panic on nil or
// meaningless values.
type RunnerOption func(*Runner)

// WithAlgorithms sets the algorithm registry.
func WithAlgorithms(r *sorts.Registry) RunnerOption {
	if r == nil {
		panic("bench: WithAlgorithms(nil)")
	}
	return func(rn *Runner) { rn.algorithms = r }
}

// WithGaps sets the gap-variant registry.
func WithGaps(r *gaps.Registry) RunnerOption {
	if r == nil {
		panic("bench: WithGaps(nil)")
	}
	return func(rn *Runner) { rn.gaps = r }
}

// WithDatasets sets the dataset registry.
func WithDatasets(r *datasets.Registry) RunnerOption {
	if r == nil {
		panic("bench: WithDatasets(nil)")
	}
	return func(rn *Runner) { rn.datasets = r }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) RunnerOption {
	if l == nil {
		panic("bench: WithLogger(nil)")
	}
	return func(rn *Runner) { rn.logger = l }
}

// WithWorkers bounds the number of jobs run concurrently. Timings are only
// comparable between rows when workers == 1 (the default).
func WithWorkers(n int) RunnerOption {
	if n < 1 {
		panic("bench: WithWorkers(n<1)")
	}
	return func(rn *Runner) { rn.workers = n }
}

// WithRowHook registers fn to receive each row as soon as its job finishes.
// Calls are serialized but arrive in completion order.
func WithRowHook(fn func(Row)) RunnerOption {
	if fn == nil {
		panic("bench: WithRowHook(nil)")
	}
	return func(rn *Runner) { rn.rowHook = fn }
}

// WithSinkFactory attaches fn(job) as the event sink of each job's
// Instrumentation. A nil sink from fn leaves that job untraced. The sink is
// used by a single goroutine.
func WithSinkFactory(fn func(Job) instrument.Sink) RunnerOption {
	if fn == nil {
		panic("bench: WithSinkFactory(nil)")
	}
	return func(rn *Runner) { rn.sinkFactory = fn }
}

// NewRunner returns a Runner with the built-in registries, one worker and a
// discarding logger, then applies opts in order.
func NewRunner(opts ...RunnerOption) *Runner {
	rn := &Runner{
		algorithms: sorts.NewRegistry(),
		gaps:       gaps.NewRegistry(),
		datasets:   datasets.NewRegistry(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers:    1,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(rn)
	}
	return rn
}

// Jobs expands plan into its ordered job list without running anything.
func (rn *Runner) Jobs(plan Plan) ([]Job, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	algs, err := rn.resolveAlgorithms(plan.Algorithms)
	if err != nil {
		return nil, err
	}
	variants, err := rn.resolveVariants(plan.GapVariants)
	if err != nil {
		return nil, err
	}
	dsNames, err := rn.resolveDatasets(plan.Datasets)
	if err != nil {
		return nil, err
	}

	seeds := buildSeedMap(dsNames, plan.Sizes, plan.Trials, plan.Seed)
	var jobs []Job
	for _, alg := range algs {
		algVariants := []string{""}
		if alg == sorts.NameShell {
			algVariants = variants
		}
		for _, variant := range algVariants {
			for _, ds := range dsNames {
				for _, n := range plan.Sizes {
					for trial := 1; trial <= plan.Trials; trial++ {
						jobs = append(jobs, Job{
							Index:      len(jobs),
							Algorithm:  alg,
							GapVariant: variant,
							Dataset:    ds,
							N:          n,
							Trial:      trial,
							Seed:       seeds[seedKey{dataset: ds, n: n, trial: trial}],
						})
					}
				}
			}
		}
	}
	return jobs, nil
}

// Run executes plan and returns one row per job, in job order.
func (rn *Runner) Run(ctx context.Context, plan Plan) (*Report, error) {
	jobs, err := rn.Jobs(plan)
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.New(), Started: rn.now()}
	logger := rn.logger.With(slog.String("run_id", report.RunID.String()))
	logger.Info("benchmark started",
		slog.Int("jobs", len(jobs)),
		slog.Int("workers", rn.workers),
		slog.Int64("seed", plan.Seed))

	rows := make([]Row, len(jobs))
	var hookMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rn.workers)
	for _, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row, err := rn.runJob(job)
			if err != nil {
				logger.Error("benchmark job failed",
					slog.Int("job", job.Index),
					slog.String("algorithm", job.Algorithm),
					slog.String("gap_variant", job.GapVariant),
					slog.String("dataset", job.Dataset),
					slog.Int("n", job.N),
					slog.String("error", err.Error()))
				return fmt.Errorf("job %d (%s/%s/%s n=%d trial=%d): %w",
					job.Index, job.Algorithm, job.GapVariant, job.Dataset, job.N, job.Trial, err)
			}
			rows[job.Index] = row
			logger.Debug("benchmark job done",
				slog.Int("job", job.Index),
				slog.String("algorithm", job.Algorithm),
				slog.String("gap_variant", job.GapVariant),
				slog.String("dataset", job.Dataset),
				slog.Int("n", job.N),
				slog.Int("trial", job.Trial),
				slog.Float64("time_ms", row.TimeMS),
				slog.Int("comparisons", row.Comparisons))
			if rn.rowHook != nil {
				hookMu.Lock()
				rn.rowHook(row)
				hookMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Wait returns nil when cancellation stopped scheduling before any job failed.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report.Rows = rows
	report.Elapsed = rn.now().Sub(report.Started)
	logger.Info("benchmark finished",
		slog.Int("rows", len(rows)),
		slog.Duration("elapsed", report.Elapsed))
	return report, nil
}

// runJob generates the job's input, sorts it and measures the run.
func (rn *Runner) runJob(job Job) (Row, error) {
	data, err := rn.datasets.Generate(job.Dataset, job.N, job.Seed)
	if err != nil {
		return Row{}, err
	}
	alg, err := rn.algorithms.Lookup(job.Algorithm)
	if err != nil {
		return Row{}, err
	}

	var in *instrument.Instrumentation
	if rn.sinkFactory != nil {
		in = instrument.New(instrument.WithSink(rn.sinkFactory(job)))
	} else {
		in = instrument.New()
	}

	start := time.Now()
	_, err = alg(data, in, sorts.WithGapRegistry(rn.gaps), sorts.WithGapVariant(job.GapVariant))
	elapsed := time.Since(start)
	if err != nil {
		return Row{}, err
	}

	c := in.Counters()
	return Row{
		Algorithm:   job.Algorithm,
		GapVariant:  job.GapVariant,
		N:           job.N,
		Dataset:     job.Dataset,
		Trial:       job.Trial,
		Seed:        job.Seed,
		TimeMS:      roundMS(elapsed),
		Comparisons: c.Comparisons,
		Swaps:       c.Swaps,
		Writes:      c.Writes,
	}, nil
}

// resolveAlgorithms expands "all" and checks every name.
func (rn *Runner) resolveAlgorithms(names []string) ([]string, error) {
	if slices.Contains(names, AllAlgorithms) {
		return rn.algorithms.Names(), nil
	}
	out := make([]string, len(names))
	for i, name := range names {
		if !rn.algorithms.Has(name) {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidPlan, sorts.ErrUnknownAlgorithm, name)
		}
		out[i] = strings.ToLower(name)
	}
	return out, nil
}

// resolveVariants defaults to every registered variant and checks names.
func (rn *Runner) resolveVariants(names []string) ([]string, error) {
	if len(names) == 0 {
		return rn.gaps.Names(), nil
	}
	out := make([]string, len(names))
	for i, name := range names {
		if !rn.gaps.Has(name) {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidPlan, gaps.ErrUnknownVariant, name)
		}
		out[i] = strings.ToLower(name)
	}
	return out, nil
}

// resolveDatasets checks names and lower-cases them. Spellings that differ
// only in case collapse to the first occurrence.
func (rn *Runner) resolveDatasets(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if !rn.datasets.Has(name) {
			return nil, fmt.Errorf("%w: %w: %q", ErrInvalidPlan, datasets.ErrUnknownDataset, name)
		}
		key := strings.ToLower(name)
		if !slices.Contains(out, key) {
			out = append(out, key)
		}
	}
	return out, nil
}

// roundMS converts d to milliseconds rounded to four decimals.
func roundMS(d time.Duration) float64 {
	ms := float64(d) / float64(time.Millisecond)
	return math.Round(ms*1e4) / 1e4
}
