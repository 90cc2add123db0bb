// Package instr defines the instructions of the four-register integer
// machine: registers, operands, and the six instruction forms.
package instr

import (
	"fmt"
	"log/slog"
)

// Opcode is the mnemonic of an instruction.
type Opcode string

// The opcodes of the machine.
const (
	OpInput Opcode = "inp"
	OpAdd   Opcode = "add"
	OpMul   Opcode = "mul"
	OpDiv   Opcode = "div"
	OpMod   Opcode = "mod"
	OpEqual Opcode = "eql"
)

// Binary reports whether the opcode takes a second operand.
func (op Opcode) Binary() bool {
	switch op {
	case OpAdd, OpMul, OpDiv, OpMod, OpEqual:
		return true
	default:
		return false
	}
}

// Inst is a single instruction. The destination register is also the
// implicit left operand of binary instructions.
type Inst struct {
	Op  Opcode
	Dst Register
	Src Operand
}

// Input reads the next program input into r.
func Input(r Register) Inst { return Inst{Op: OpInput, Dst: r} }

// Add computes r = r + src.
func Add(r Register, src Operand) Inst { return Inst{Op: OpAdd, Dst: r, Src: src} }

// Mul computes r = r * src.
func Mul(r Register, src Operand) Inst { return Inst{Op: OpMul, Dst: r, Src: src} }

// Div computes r = r / src, truncating toward zero.
func Div(r Register, src Operand) Inst { return Inst{Op: OpDiv, Dst: r, Src: src} }

// Mod computes r = r % src; the sign follows the dividend.
func Mod(r Register, src Operand) Inst { return Inst{Op: OpMod, Dst: r, Src: src} }

// Equal computes r = 1 if r == src, else 0.
func Equal(r Register, src Operand) Inst { return Inst{Op: OpEqual, Dst: r, Src: src} }

// Destination returns the register the instruction writes.
func (i Inst) Destination() Register {
	return i.Dst
}

// Operand returns the second operand. The boolean is false for input
// instructions, which have none.
func (i Inst) Operand() (Operand, bool) {
	if i.Op == OpInput {
		return Operand{}, false
	}
	return i.Src, true
}

func (i Inst) String() string {
	if src, ok := i.Operand(); ok {
		return fmt.Sprintf("%s %s %s", i.Op, i.Dst, src)
	}
	return fmt.Sprintf("%s %s", i.Op, i.Dst)
}

// LogValue renders the instruction only when a record is emitted.
func (i Inst) LogValue() slog.Value {
	return slog.StringValue(i.String())
}
