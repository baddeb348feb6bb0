// SPDX-License-Identifier: MIT
// Package: sortlab/datasets
//
// errors.go — sentinel errors for the datasets package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failure site, never baked into the
//     sentinel text.
//   • Generators never panic; option constructors (WithX) do, on values that
//     cannot mean anything.

package datasets

import (
	"errors"
	"fmt"
)

// ErrUnknownDataset indicates a dataset kind that is not registered.
var ErrUnknownDataset = errors.New("datasets: unknown dataset")

// ErrBadSize indicates a negative sequence length.
var ErrBadSize = errors.New("datasets: invalid size")

// ErrBadRegistration indicates an empty name, a nil generator or a duplicate
// name passed to Registry.Register.
var ErrBadRegistration = errors.New("datasets: invalid registration")

// datasetErrorf wraps err with the dataset name for context:
// "<name>: <formatted message>: <err>".
func datasetErrorf(name string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", name, fmt.Sprintf(format, args...), err)
}
