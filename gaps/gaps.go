// SPDX-License-Identifier: MIT
// Package: sortlab/gaps
//
// gaps.go — the four built-in gap generators and the pure resolver.

package gaps

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownVariant is returned for a gap variant name that is not registered.
var ErrUnknownVariant = errors.New("gaps: unknown gap variant")

// ErrInvalidSequence is returned by Validate for a malformed gap sequence.
var ErrInvalidSequence = errors.New("gaps: invalid gap sequence")

// Func maps an array length to a descending gap sequence.
type Func func(n int) []int

// Variant names a built-in gap sequence.
type Variant string

// Built-in variants.
const (
	Shell   Variant = "shell"
	Knuth   Variant = "knuth"
	Hibbard Variant = "hibbard"
	Tokuda  Variant = "tokuda"
)

// Variants lists the built-in variants in sorted order.
func Variants() []Variant {
	return []Variant{Hibbard, Knuth, Shell, Tokuda}
}

// Func returns the generator of a built-in variant, or nil.
func (v Variant) Func() Func {
	switch v {
	case Shell:
		return ShellGaps
	case Knuth:
		return KnuthGaps
	case Hibbard:
		return HibbardGaps
	case Tokuda:
		return TokudaGaps
	default:
		return nil
	}
}

// Sequence returns the gaps of the built-in variant name (case-insensitive)
// for length n.
func Sequence(name string, n int) ([]int, error) {
	fn := Variant(strings.ToLower(name)).Func()
	if fn == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return fn(n), nil
}

// ShellGaps halves from n/2 down to 1: n=5 → [2 1].
func ShellGaps(n int) []int {
	var out []int
	for gap := n / 2; gap > 0; gap /= 2 {
		out = append(out, gap)
	}
	return out
}

// KnuthGaps grows g = 3g+1 from 1 while g < n, then reverses: n=10 → [4 1].
func KnuthGaps(n int) []int {
	var asc []int
	for gap := 1; gap < n; gap = gap*3 + 1 {
		asc = append(asc, gap)
	}
	return reversed(asc)
}

// HibbardGaps uses 2^k-1 for k = 1, 2, ... while below n: n=10 → [7 3 1].
func HibbardGaps(n int) []int {
	var asc []int
	for k := 1; k < 63; k++ {
		gap := 1<<k - 1
		if gap >= n {
			break
		}
		asc = append(asc, gap)
	}
	return reversed(asc)
}

// TokudaGaps uses ceil((9·(9/4)^(k-1) - 4)/5) for k = 1, 2, ... while below
// n: n=30 → [20 9 4 1].
func TokudaGaps(n int) []int {
	var asc []int
	for k := 1; ; k++ {
		gap := int(math.Ceil((9*math.Pow(9.0/4.0, float64(k-1)) - 4) / 5))
		if gap >= n {
			break
		}
		asc = append(asc, gap)
	}
	return reversed(asc)
}

// Validate checks that gaps is strictly decreasing, positive and, when
// non-empty, ends at 1.
func Validate(gaps []int) error {
	for i, g := range gaps {
		if g <= 0 {
			return fmt.Errorf("%w: gap[%d]=%d is not positive", ErrInvalidSequence, i, g)
		}
		if i > 0 && g >= gaps[i-1] {
			return fmt.Errorf("%w: gap[%d]=%d does not decrease from %d", ErrInvalidSequence, i, g, gaps[i-1])
		}
	}
	if len(gaps) > 0 && gaps[len(gaps)-1] != 1 {
		return fmt.Errorf("%w: last gap is %d, want 1", ErrInvalidSequence, gaps[len(gaps)-1])
	}
	return nil
}

// reversed reverses s in place and returns it.
func reversed(s []int) []int {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
	return s
}
