package verify

import (
	"fmt"

	"github.com/donovandicks/monadc/instr"
)

// IssueType categorizes lint issues.
type IssueType string

const (
	IssueDivZero     IssueType = "DIVZERO"     // div or mod by a literal zero
	IssueNegativeMod IssueType = "NEGATIVEMOD" // mod by a negative literal
)

// Issue is a single lint finding.
type Issue struct {
	Type    IssueType
	PC      int
	Inst    instr.Inst
	Message string
}

// Lint performs static checks on a program. Division by a literal zero
// makes the optimizer fail, so it is reported before optimizing.
func Lint(prog []instr.Inst) []Issue {
	var issues []Issue

	for pc, inst := range prog {
		src, ok := inst.Operand()
		if !ok || src.IsRegister() {
			continue
		}

		switch {
		case (inst.Op == instr.OpDiv || inst.Op == instr.OpMod) && src.Literal() == 0:
			issues = append(issues, Issue{
				Type:    IssueDivZero,
				PC:      pc,
				Inst:    inst,
				Message: fmt.Sprintf("%s by literal zero", inst.Op),
			})
		case inst.Op == instr.OpMod && src.Literal() < 0:
			issues = append(issues, Issue{
				Type:    IssueNegativeMod,
				PC:      pc,
				Inst:    inst,
				Message: fmt.Sprintf("mod by negative literal %d", src.Literal()),
			})
		}
	}

	return issues
}

// HasErrors reports whether any issue will stop optimization.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Type == IssueDivZero {
			return true
		}
	}
	return false
}
