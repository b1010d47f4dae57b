// Package calc evaluates single infix expressions over num.Int, one operator
// at a time, for the numcalc tool.
package calc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	num "github.com/shabbyrobe/go-bignum"
)

var (
	// ErrUnknownOperator is returned when an expression names an operator
	// that Eval does not support.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrBadExpression is returned when an expression has the wrong shape, or
	// an operand can not be used with its operator.
	ErrBadExpression = errors.New("bad expression")
)

// Result holds either an integer or, for comparison operators, a boolean.
type Result struct {
	Int    *num.Int
	Bool   bool
	IsBool bool
}

func (r Result) String() string {
	if r.IsBool {
		return strconv.FormatBool(r.Bool)
	}
	return r.Int.String()
}

type binaryOp func(a, b *num.Int) (Result, error)

type unaryOp func(a *num.Int) *num.Int

func intResult(v *num.Int) (Result, error) { return Result{Int: v}, nil }
func boolResult(v bool) (Result, error)    { return Result{Bool: v, IsBool: true}, nil }

var binaryOps = map[string]binaryOp{
	"+":  func(a, b *num.Int) (Result, error) { return intResult(a.Add(b)) },
	"-":  func(a, b *num.Int) (Result, error) { return intResult(a.Sub(b)) },
	"*":  func(a, b *num.Int) (Result, error) { return intResult(a.Mul(b)) },
	"&":  func(a, b *num.Int) (Result, error) { return intResult(a.And(b)) },
	"|":  func(a, b *num.Int) (Result, error) { return intResult(a.Or(b)) },
	"^":  func(a, b *num.Int) (Result, error) { return intResult(a.Xor(b)) },
	"&^": func(a, b *num.Int) (Result, error) { return intResult(a.AndNot(b)) },
	"==": func(a, b *num.Int) (Result, error) { return boolResult(a.Equal(b)) },
	"!=": func(a, b *num.Int) (Result, error) { return boolResult(a.NotEqual(b)) },
	"<":  func(a, b *num.Int) (Result, error) { return boolResult(a.LessThan(b)) },
	"<=": func(a, b *num.Int) (Result, error) { return boolResult(a.LessOrEqualTo(b)) },
	">":  func(a, b *num.Int) (Result, error) { return boolResult(a.GreaterThan(b)) },
	">=": func(a, b *num.Int) (Result, error) { return boolResult(a.GreaterOrEqualTo(b)) },

	"/": func(a, b *num.Int) (Result, error) {
		q, _, err := a.CheckedQuoRem(b)
		if err != nil {
			return Result{}, err
		}
		return intResult(q)
	},

	"%": func(a, b *num.Int) (Result, error) {
		_, r, err := a.CheckedQuoRem(b)
		if err != nil {
			return Result{}, err
		}
		return intResult(r)
	},

	"<<": func(a, b *num.Int) (Result, error) {
		n, err := shiftCount(b)
		if err != nil {
			return Result{}, err
		}
		return intResult(a.Lsh(n))
	},

	">>": func(a, b *num.Int) (Result, error) {
		n, err := shiftCount(b)
		if err != nil {
			return Result{}, err
		}
		return intResult(a.Rsh(n))
	},
}

var unaryOps = map[string]unaryOp{
	"+":  (*num.Int).Clone,
	"-":  (*num.Int).Neg,
	"~":  (*num.Int).Not,
	"++": (*num.Int).Inc,
	"--": (*num.Int).Dec,
}

// maxShift bounds shift counts so a typo can't ask for a few billion digits.
const maxShift = 1 << 24

func shiftCount(b *num.Int) (uint, error) {
	if b.Sign() < 0 || !b.IsUint64() || b.AsUint64() > maxShift {
		return 0, errors.Wrapf(ErrBadExpression, "shift count %s out of range", b)
	}
	return uint(b.AsUint64()), nil
}

type Evaluator struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Evaluator {
	return &Evaluator{log: log}
}

// EvalLine splits line on whitespace and evaluates it with Eval.
func (e *Evaluator) EvalLine(line string) (Result, error) {
	return e.Eval(strings.Fields(line))
}

// Eval evaluates either a binary expression ("<a> <op> <b>") or a unary
// expression ("<op> <a>"). Operands are base 10 integers.
func (e *Evaluator) Eval(tokens []string) (res Result, err error) {
	defer func() {
		if err != nil {
			e.log.Error().Err(err).Strs("tokens", tokens).Msg("eval failed")
		}
	}()

	switch len(tokens) {
	case 2:
		return e.evalUnary(tokens[0], tokens[1])
	case 3:
		return e.evalBinary(tokens[0], tokens[1], tokens[2])
	default:
		return res, errors.Wrapf(ErrBadExpression, "expected 2 or 3 tokens, found %d", len(tokens))
	}
}

func (e *Evaluator) evalUnary(op, operand string) (Result, error) {
	fn, ok := unaryOps[op]
	if !ok {
		return Result{}, errors.Wrapf(ErrUnknownOperator, "unary %q", op)
	}
	a, err := num.IntFromString(operand)
	if err != nil {
		return Result{}, errors.Wrap(err, "operand")
	}

	e.log.Debug().Str("op", op).Int("digits", digitCount(a)).Msg("eval unary")
	return Result{Int: fn(a)}, nil
}

func (e *Evaluator) evalBinary(lhs, op, rhs string) (Result, error) {
	fn, ok := binaryOps[op]
	if !ok {
		return Result{}, errors.Wrapf(ErrUnknownOperator, "binary %q", op)
	}
	a, err := num.IntFromString(lhs)
	if err != nil {
		return Result{}, errors.Wrap(err, "left operand")
	}
	b, err := num.IntFromString(rhs)
	if err != nil {
		return Result{}, errors.Wrap(err, "right operand")
	}

	e.log.Debug().
		Str("op", op).
		Int("lhs_digits", digitCount(a)).
		Int("rhs_digits", digitCount(b)).
		Msg("eval binary")

	res, err := fn(a, b)
	if err != nil {
		return res, errors.Wrapf(err, "%s %s %s", lhs, op, rhs)
	}
	return res, nil
}

func digitCount(v *num.Int) int {
	_, digits := v.Raw()
	return len(digits)
}
