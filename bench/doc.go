// Package bench runs sorting benchmarks and produces one Row per run.
//
// A Plan names algorithms, shell gap variants, dataset kinds, sizes, a trial
// count and a base seed. The Runner expands it into jobs:
//
//	for algorithm
//	  for gap variant   (shell only; "" for every other algorithm)
//	    for dataset
//	      for size
//	        for trial   → Job{Seed: seeds[dataset, size, trial]}
//
// Seeds are drawn once per (dataset, size, trial) from the base seed, so
// every algorithm sorts exactly the same inputs and results are comparable
// row by row. Each job generates its input, sorts it with a fresh
// Instrumentation and records time_ms plus the three counters.
//
// Plans can be written in YAML and loaded with LoadPlan. Rows expose the
// column contract (Fields, Row.Values) and carry json/yaml tags; writing
// them to files is left to the caller.
//
// Logging goes through an injected *slog.Logger (WithLogger); every record
// carries the run_id of the Report.
package bench
