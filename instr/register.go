package instr

import "fmt"

// Register is one of the four storage slots of the machine.
type Register uint8

// The four registers, in bank order.
const (
	W Register = iota
	X
	Y
	Z
)

// NumRegisters is the size of the register bank.
const NumRegisters = 4

var registerNames = [NumRegisters]string{"w", "x", "y", "z"}

// Index returns the bank slot of the register. It panics if the register is
// outside the bank, which can only happen when a caller builds a Register
// from a raw integer.
func (r Register) Index() int {
	if r >= NumRegisters {
		panic(fmt.Sprintf("register index %d out of range", uint8(r)))
	}
	return int(r)
}

func (r Register) String() string {
	if r >= NumRegisters {
		return fmt.Sprintf("r%d", uint8(r))
	}
	return registerNames[r]
}

// ParseRegister maps a register letter to its Register.
func ParseRegister(name string) (Register, bool) {
	for i, n := range registerNames {
		if n == name {
			return Register(i), true
		}
	}
	return 0, false
}
