// SPDX-License-Identifier: MIT
// Package: sortlab/bench
//
// row.go — the benchmark row contract and the run report.

package bench

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Row is the measured outcome of one Job. Field names follow the tabular
// contract returned by Fields.
type Row struct {
	Algorithm   string  `json:"algorithm" yaml:"algorithm"`
	GapVariant  string  `json:"gap_variant" yaml:"gap_variant"`
	N           int     `json:"n" yaml:"n"`
	Dataset     string  `json:"dataset" yaml:"dataset"`
	Trial       int     `json:"trial" yaml:"trial"`
	Seed        int64   `json:"seed" yaml:"seed"`
	TimeMS      float64 `json:"time_ms" yaml:"time_ms"`
	Comparisons int     `json:"comparisons" yaml:"comparisons"`
	Swaps       int     `json:"swaps" yaml:"swaps"`
	Writes      int     `json:"writes" yaml:"writes"`
}

// Fields returns the column names of a row, in column order.
func Fields() []string {
	return []string{
		"algorithm", "gap_variant", "n", "dataset", "trial",
		"seed", "time_ms", "comparisons", "swaps", "writes",
	}
}

// Values renders the row in the column order of Fields.
func (r Row) Values() []string {
	return []string{
		r.Algorithm,
		r.GapVariant,
		strconv.Itoa(r.N),
		r.Dataset,
		strconv.Itoa(r.Trial),
		strconv.FormatInt(r.Seed, 10),
		strconv.FormatFloat(r.TimeMS, 'f', -1, 64),
		strconv.Itoa(r.Comparisons),
		strconv.Itoa(r.Swaps),
		strconv.Itoa(r.Writes),
	}
}

// Report is the result of one Runner.Run.
type Report struct {
	RunID   uuid.UUID     `json:"run_id" yaml:"run_id"`
	Started time.Time     `json:"started" yaml:"started"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
	// Rows are in job order: algorithm, gap variant, dataset, size, trial.
	Rows []Row `json:"rows" yaml:"rows"`
}
