package program

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/donovandicks/monadc/instr"
)

// ParseError reports a line that is not a valid instruction.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Parse reads a program, one instruction per line. Blank lines and lines
// starting with '#' or ';' are skipped.
func Parse(src string) ([]instr.Inst, error) {
	var prog []instr.Inst

	scanner := bufio.NewScanner(strings.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		inst, err := ParseInst(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Msg: err.Error()}
		}
		prog = append(prog, inst)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read program: %w", err)
	}

	return prog, nil
}

// ParseInst parses a single instruction such as "inp w" or "add x -1".
func ParseInst(line string) (instr.Inst, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return instr.Inst{}, fmt.Errorf("empty instruction")
	}

	spec, ok := DefaultISA().Lookup(tokens[0])
	if !ok {
		return instr.Inst{}, fmt.Errorf("unknown instruction '%s'", tokens[0])
	}

	want := 2
	if spec.Binary {
		want = 3
	}
	if len(tokens) != want {
		return instr.Inst{}, fmt.Errorf("'%s' expects %d operands, got %d",
			tokens[0], want-1, len(tokens)-1)
	}

	dst, ok := instr.ParseRegister(tokens[1])
	if !ok {
		return instr.Inst{}, fmt.Errorf("invalid register '%s'", tokens[1])
	}

	inst := instr.Inst{Op: spec.Opcode, Dst: dst}
	if !spec.Binary {
		return inst, nil
	}

	src, err := parseOperand(tokens[2])
	if err != nil {
		return instr.Inst{}, err
	}
	inst.Src = src

	return inst, nil
}

func parseOperand(tok string) (instr.Operand, error) {
	if r, ok := instr.ParseRegister(tok); ok {
		return instr.Reg(r), nil
	}

	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return instr.Operand{}, fmt.Errorf("invalid operand '%s'", tok)
	}

	return instr.Lit(n), nil
}
