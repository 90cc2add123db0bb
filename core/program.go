package core

import (
	"fmt"

	"github.com/donovandicks/monadc/instr"
	"github.com/donovandicks/monadc/util"
)

// Bank is the abstract register file, indexed by instr.Register.
type Bank [instr.NumRegisters]Value

// Get returns the value held by r.
func (b *Bank) Get(r instr.Register) Value {
	return b[r.Index()]
}

// Set replaces the value held by r.
func (b *Bank) Set(r instr.Register, v Value) {
	b[r.Index()] = v
}

// Program is the state of one optimizer invocation. It owns the identity
// source, the initial register bank, and the count of inputs read so far.
// A Program must not be shared between invocations.
type Program struct {
	ids              *util.IDGen
	initialRegisters Bank
	nextInput        int
}

// NewProgram creates the context for one invocation, issuing identities
// from base. The four initial registers are Exact(0), each with its own
// identity.
func NewProgram(base util.ID) (*Program, error) {
	p := &Program{ids: util.MakeIDGen(base)}

	for i := range p.initialRegisters {
		v, err := p.NewExactValue(0)
		if err != nil {
			return nil, fmt.Errorf("initial register %s: %w", instr.Register(i), err)
		}
		p.initialRegisters[i] = v
	}

	return p, nil
}

// InitialRegisters returns a copy of the bank fixed at construction.
func (p *Program) InitialRegisters() Bank {
	return p.initialRegisters
}

// InputsConsumed returns how many input values have been minted.
func (p *Program) InputsConsumed() int {
	return p.nextInput
}

// NewExactValue mints an Exact value.
func (p *Program) NewExactValue(n int64) (Value, error) {
	id, err := p.ids.Make()
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindExact, id: id, n: n}, nil
}

// NewUnknownValue mints an Unknown value.
func (p *Program) NewUnknownValue() (Value, error) {
	id, err := p.ids.Make()
	if err != nil {
		return Value{}, err
	}
	return Value{kind: KindUnknown, id: id}, nil
}

// NewInputValue mints the Input value for the next program input.
func (p *Program) NewInputValue() (Value, error) {
	id, err := p.ids.Make()
	if err != nil {
		return Value{}, err
	}
	v := Value{kind: KindInput, id: id, n: int64(p.nextInput)}
	p.nextInput++
	return v, nil
}
