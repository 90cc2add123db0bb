package core

import (
	"errors"
	"fmt"

	"github.com/donovandicks/monadc/instr"
)

// ErrDivisionByZero is returned when div or mod has a right-hand side that
// is provably zero. Programs must not contain such instructions.
var ErrDivisionByZero = errors.New("division by provable zero")

type evalFunc func(p *Program, left, right Value) (Value, error)

var evalFuncs = map[instr.Opcode]evalFunc{
	instr.OpAdd:   evalAdd,
	instr.OpMul:   evalMul,
	instr.OpDiv:   evalDiv,
	instr.OpMod:   evalMod,
	instr.OpEqual: evalEqual,
}

// Evaluate computes the abstract result of a binary instruction. When the
// result is one of the operands unchanged, that operand is returned as is,
// identity included.
func Evaluate(p *Program, op instr.Opcode, left, right Value) (Value, error) {
	f, ok := evalFuncs[op]
	if !ok {
		panic(fmt.Sprintf("cannot evaluate opcode '%s'", op))
	}
	return f(p, left, right)
}

func bothExact(left, right Value) (int64, int64, bool) {
	l, lok := left.Exact()
	r, rok := right.Exact()
	return l, r, lok && rok
}

func evalAdd(p *Program, left, right Value) (Value, error) {
	if l, r, ok := bothExact(left, right); ok {
		return p.NewExactValue(l + r)
	}

	switch {
	case right.IsExact(0):
		return left, nil
	case left.IsExact(0):
		return right, nil
	}

	return p.NewUnknownValue()
}

func evalMul(p *Program, left, right Value) (Value, error) {
	if l, r, ok := bothExact(left, right); ok {
		return p.NewExactValue(l * r)
	}

	switch {
	case left.IsExact(0), right.IsExact(0):
		return p.NewExactValue(0)
	case right.IsExact(1):
		return left, nil
	case left.IsExact(1):
		return right, nil
	}

	return p.NewUnknownValue()
}

func evalDiv(p *Program, left, right Value) (Value, error) {
	if right.IsExact(0) {
		return Value{}, ErrDivisionByZero
	}

	if l, r, ok := bothExact(left, right); ok {
		return p.NewExactValue(l / r)
	}

	if left.IsExact(0) || right.IsExact(1) {
		return left, nil
	}

	return p.NewUnknownValue()
}

func evalMod(p *Program, left, right Value) (Value, error) {
	if right.IsExact(0) {
		return Value{}, ErrDivisionByZero
	}

	if l, r, ok := bothExact(left, right); ok {
		return p.NewExactValue(l % r)
	}

	if left.IsExact(0) || right.IsExact(1) {
		return p.NewExactValue(0)
	}

	return p.NewUnknownValue()
}

func evalEqual(p *Program, left, right Value) (Value, error) {
	if left.Equal(right) {
		return p.NewExactValue(1)
	}

	if _, _, ok := bothExact(left, right); ok {
		return p.NewExactValue(0)
	}

	return p.NewUnknownValue()
}
