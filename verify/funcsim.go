package verify

import (
	"errors"
	"fmt"

	"github.com/donovandicks/monadc/instr"
	"github.com/donovandicks/monadc/program"
)

// ErrInputUnderrun is returned when a program reads more inputs than were
// supplied.
var ErrInputUnderrun = errors.New("program read past the end of its inputs")

// State is the concrete register file of the machine.
type State [instr.NumRegisters]int64

// FunctionalSimulator executes programs on concrete values.
type FunctionalSimulator struct {
	isa *program.ISA

	TraceOpPre  func(pc int, inst instr.Inst, state State)
	TraceOpPost func(pc int, inst instr.Inst, state State)
}

// NewFunctionalSimulator creates a simulator for the default ISA.
func NewFunctionalSimulator() *FunctionalSimulator {
	return &FunctionalSimulator{isa: program.DefaultISA()}
}

// Run executes prog from an all-zero state, reading inputs in order, and
// returns the final registers.
func (fs *FunctionalSimulator) Run(prog []instr.Inst, inputs []int64) (State, error) {
	var state State
	next := 0

	for pc, inst := range prog {
		if fs.TraceOpPre != nil {
			fs.TraceOpPre(pc, inst, state)
		}

		dst := inst.Destination().Index()
		if inst.Op == instr.OpInput {
			if next >= len(inputs) {
				return state, fmt.Errorf("pc %d '%s': %w", pc, inst, ErrInputUnderrun)
			}
			state[dst] = inputs[next]
			next++
		} else {
			src, _ := inst.Operand()
			right := src.Literal()
			if src.IsRegister() {
				right = state[src.Register().Index()]
			}

			res, err := fs.isa.Execute(inst.Op, state[dst], right)
			if err != nil {
				return state, fmt.Errorf("pc %d '%s': %w", pc, inst, err)
			}
			state[dst] = res
		}

		if fs.TraceOpPost != nil {
			fs.TraceOpPost(pc, inst, state)
		}
	}

	return state, nil
}

// CountInputs returns how many inputs prog reads.
func CountInputs(prog []instr.Inst) int {
	n := 0
	for _, inst := range prog {
		if inst.Op == instr.OpInput {
			n++
		}
	}
	return n
}
