package instr

import "strconv"

// Operand is the second argument of a binary instruction: either a literal
// integer or a reference to a register.
type Operand struct {
	isReg bool
	reg   Register
	lit   int64
}

// Lit makes a literal operand.
func Lit(n int64) Operand {
	return Operand{lit: n}
}

// Reg makes a register operand.
func Reg(r Register) Operand {
	return Operand{isReg: true, reg: r}
}

// IsRegister reports whether the operand refers to a register.
func (o Operand) IsRegister() bool {
	return o.isReg
}

// Register returns the referenced register. Only meaningful when
// IsRegister is true.
func (o Operand) Register() Register {
	return o.reg
}

// Literal returns the literal value. Only meaningful when IsRegister is
// false.
func (o Operand) Literal() int64 {
	return o.lit
}

func (o Operand) String() string {
	if o.isReg {
		return o.reg.String()
	}
	return strconv.FormatInt(o.lit, 10)
}
