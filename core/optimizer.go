// Package core is the optimizer: an abstract interpreter that folds a program
// over the register bank and drops instructions that change nothing.
package core

import (
	"fmt"
	"log/slog"

	"github.com/donovandicks/monadc/instr"
	"github.com/donovandicks/monadc/util"
)

// Decision records what the optimizer did with one instruction.
type Decision struct {
	Index    int
	Inst     instr.Inst
	Before   Value
	After    Value
	Retained bool
}

// Observer is told about every decision the optimizer makes.
type Observer interface {
	Observe(d Decision)
}

// Optimizer removes instructions that leave their destination register
// unchanged. It makes a single forward pass, tracking every register as an
// abstract Value.
type Optimizer struct {
	idBase   util.ID
	observer Observer
}

// Optimize returns the instructions of prog that are not no-ops, in their
// original order. prog is not modified.
func (o *Optimizer) Optimize(prog []instr.Inst) ([]instr.Inst, error) {
	out, _, err := o.OptimizeWithState(prog)
	return out, err
}

// OptimizeWithState is Optimize that also returns the abstract register
// bank after the last instruction.
func (o *Optimizer) OptimizeWithState(prog []instr.Inst) ([]instr.Inst, Bank, error) {
	p, err := NewProgram(o.idBase)
	if err != nil {
		return nil, Bank{}, err
	}

	bank := p.InitialRegisters()
	out := make([]instr.Inst, 0, len(prog))

	for idx, in := range prog {
		before := bank.Get(in.Destination())

		after, err := o.step(p, &bank, in)
		if err != nil {
			return nil, bank, fmt.Errorf("instruction %d '%s': %w", idx, in, err)
		}
		bank.Set(in.Destination(), after)

		// Inputs consume external data, so they always stay.
		retained := in.Op == instr.OpInput || !after.Equal(before)
		if retained {
			out = append(out, in)
		}

		Trace("Decision",
			"index", idx,
			"inst", in,
			"before", before,
			"after", after,
			"retained", retained,
		)
		if o.observer != nil {
			o.observer.Observe(Decision{
				Index:    idx,
				Inst:     in,
				Before:   before,
				After:    after,
				Retained: retained,
			})
		}
	}

	slog.Debug("Optimized",
		"original", len(prog),
		"optimized", len(out),
		"inputs", p.InputsConsumed(),
	)
	LogBank(bank)

	return out, bank, nil
}

func (o *Optimizer) step(p *Program, bank *Bank, in instr.Inst) (Value, error) {
	if in.Op == instr.OpInput {
		return p.NewInputValue()
	}

	left := bank.Get(in.Destination())
	right, err := resolve(p, bank, in)
	if err != nil {
		return Value{}, err
	}

	return Evaluate(p, in.Op, left, right)
}

func resolve(p *Program, bank *Bank, in instr.Inst) (Value, error) {
	src, ok := in.Operand()
	if !ok {
		panic(fmt.Sprintf("instruction '%s' has no operand", in))
	}

	if src.IsRegister() {
		return bank.Get(src.Register()), nil
	}

	return p.NewExactValue(src.Literal())
}
