package program

import (
	"errors"

	"github.com/donovandicks/monadc/instr"
)

// ErrDivideByZero is returned by div and mod with a zero right operand.
var ErrDivideByZero = errors.New("integer divide by zero")

func newDefaultISA() *ISA {
	isa := NewISA("MONAD")
	isa.RegisterInst(InstSpec{Opcode: instr.OpInput})
	isa.RegisterInst(InstSpec{Opcode: instr.OpAdd, Binary: true, Behavior: instAdd})
	isa.RegisterInst(InstSpec{Opcode: instr.OpMul, Binary: true, Behavior: instMul})
	isa.RegisterInst(InstSpec{Opcode: instr.OpDiv, Binary: true, Behavior: instDiv})
	isa.RegisterInst(InstSpec{Opcode: instr.OpMod, Binary: true, Behavior: instMod})
	isa.RegisterInst(InstSpec{Opcode: instr.OpEqual, Binary: true, Behavior: instEql})
	return isa
}

func instAdd(src1, src2 int64) (int64, error) {
	return src1 + src2, nil
}

func instMul(src1, src2 int64) (int64, error) {
	return src1 * src2, nil
}

func instDiv(src1, src2 int64) (int64, error) {
	if src2 == 0 {
		return 0, ErrDivideByZero
	}
	return src1 / src2, nil
}

func instMod(src1, src2 int64) (int64, error) {
	if src2 == 0 {
		return 0, ErrDivideByZero
	}
	return src1 % src2, nil
}

func instEql(src1, src2 int64) (int64, error) {
	if src1 == src2 {
		return 1, nil
	}
	return 0, nil
}
