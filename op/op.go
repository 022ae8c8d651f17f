// Package op defines the arithmetic edge label used by the grid walk-score
// solver and its composition law.
//
// An Op is the pair (Mul, Add) representing the affine transform
// x → Mul*x + Add. Two canonical shapes occur in problem files:
// multiplicative ("*k", k≥2, Add==0) and additive ("+k"/"-k", Add!=0,
// Mul==1). Composition is non-commutative: applying a then b is not the
// same transform as applying b then a.
package op

import (
	"errors"
	"strconv"
)

// ErrEmptyToken indicates an op token was shorter than two characters (an
// operator character followed by at least one digit).
var ErrEmptyToken = errors.New("op: empty token")

// ErrUnknownOperator indicates a token's leading character was not one of +, -, *.
var ErrUnknownOperator = errors.New("op: unknown operator character")

// ErrBadOperand indicates the digits following the operator did not parse as an integer.
var ErrBadOperand = errors.New("op: operand is not an integer")

// Op represents the affine transform x → Mul*x + Add.
//
// AddPositive caches max(0, Add) for the search package's upper-bound
// estimator, which assumes every still-usable edge contributes its best
// case (a positive additive gain, or a multiplier ≥ 1) before the rest of
// the walk is taken. It is derived once at construction time, never
// recomputed on the hot path.
type Op struct {
	Mul         int64
	Add         int64
	AddPositive int64
}

// New builds an Op from its (mul, add) components, deriving AddPositive.
func New(mul, add int64) Op {
	addPositive := add
	if addPositive < 0 {
		addPositive = 0
	}

	return Op{Mul: mul, Add: add, AddPositive: addPositive}
}

// Apply returns Mul*x + Add.
func (o Op) Apply(x int64) int64 {
	return o.Mul*x + o.Add
}

// IsMultiplicative reports whether o is a canonical "*k" op (k≥2, no additive term).
func (o Op) IsMultiplicative() bool {
	return o.Add == 0 && o.Mul >= 2
}

// IsAdditive reports whether o carries a non-zero additive term.
func (o Op) IsAdditive() bool {
	return o.Add != 0
}

// Compose returns the Op equivalent to applying a, then b: b.Apply(a.Apply(x)).
// Composition is non-commutative in general.
func Compose(a, b Op) Op {
	return New(a.Mul*b.Mul, a.Add*b.Mul+b.Add)
}

// Parse decodes a single problem-file token of the form {+,-,*}<digits>
// into an Op. It is the sole entry point the problem package uses to turn
// board-file tokens into edge labels; unknown operators or malformed
// operands are reported as sentinel errors rather than panics, mirroring
// the strict-sentinel discipline used throughout this module's packages.
func Parse(tok string) (Op, error) {
	if len(tok) < 2 {
		return Op{}, ErrEmptyToken
	}

	n, err := strconv.Atoi(tok[1:])
	if err != nil {
		return Op{}, ErrBadOperand
	}

	switch tok[0] {
	case '+':
		return New(1, int64(n)), nil
	case '-':
		return New(1, int64(-n)), nil
	case '*':
		return New(int64(n), 0), nil
	default:
		return Op{}, ErrUnknownOperator
	}
}
