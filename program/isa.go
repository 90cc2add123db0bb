// Package program reads and writes programs for the four-register machine.
package program

import (
	"fmt"

	"github.com/donovandicks/monadc/instr"
)

// Behavior is the concrete semantics of a binary instruction.
type Behavior func(left, right int64) (int64, error)

// InstSpec describes one mnemonic of an ISA.
type InstSpec struct {
	Opcode   instr.Opcode
	Binary   bool
	Behavior Behavior // nil for inp
}

// ISA maps mnemonics to instruction specs.
type ISA struct {
	name       string
	nameToSpec map[string]InstSpec
}

// NewISA creates an empty ISA.
func NewISA(name string) *ISA {
	return &ISA{
		name:       name,
		nameToSpec: make(map[string]InstSpec),
	}
}

// Name returns the name the ISA was created with.
func (isa *ISA) Name() string {
	return isa.name
}

// RegisterInst adds a mnemonic. Registering a mnemonic twice panics.
func (isa *ISA) RegisterInst(spec InstSpec) {
	name := string(spec.Opcode)
	if _, ok := isa.nameToSpec[name]; ok {
		panic(fmt.Sprintf("instruction '%s' registered twice in %s", name, isa.name))
	}
	isa.nameToSpec[name] = spec
}

// Lookup finds the InstSpec of a mnemonic.
func (isa *ISA) Lookup(mnemonic string) (InstSpec, bool) {
	spec, ok := isa.nameToSpec[mnemonic]
	return spec, ok
}

// Execute applies the concrete behavior of a binary opcode.
func (isa *ISA) Execute(op instr.Opcode, left, right int64) (int64, error) {
	spec, ok := isa.nameToSpec[string(op)]
	if !ok || spec.Behavior == nil {
		panic(fmt.Sprintf("opcode '%s' has no behavior in %s", op, isa.name))
	}
	return spec.Behavior(left, right)
}

var defaultISA = newDefaultISA()

// DefaultISA returns the instruction set of the machine.
func DefaultISA() *ISA {
	return defaultISA
}
