// SPDX-License-Identifier: MIT
// Package: sortlab/instrument
//
// op.go — the closed set of relational operators accepted by Compare.

package instrument

import (
	"fmt"
	"strings"
)

// Op is a relational operator. Only the six declared constants are valid.
type Op uint8

const (
	// LT is a < b.
	LT Op = iota
	// GT is a > b.
	GT
	// LE is a <= b.
	LE
	// GE is a >= b.
	GE
	// EQ is a == b.
	EQ
	// NE is a != b.
	NE

	opCount
)

var opTokens = [...]string{
	LT: "lt",
	GT: "gt",
	LE: "le",
	GE: "ge",
	EQ: "eq",
	NE: "ne",
}

// Valid reports whether op is one of the six declared operators.
func (op Op) Valid() bool { return op < opCount }

// String returns the operator token ("lt", "gt", ...).
func (op Op) String() string {
	if op.Valid() {
		return opTokens[op]
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// Eval applies op to a and b.
func (op Op) Eval(a, b int) (bool, error) {
	switch op {
	case LT:
		return a < b, nil
	case GT:
		return a > b, nil
	case LE:
		return a <= b, nil
	case GE:
		return a >= b, nil
	case EQ:
		return a == b, nil
	case NE:
		return a != b, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidOp, op)
	}
}

// ParseOp maps a token ("lt", "GT", ...) to its Op, case-insensitively.
func ParseOp(token string) (Op, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for op, s := range opTokens {
		if s == t {
			return Op(op), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOp, token)
}
