package program

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/donovandicks/monadc/instr"
)

// yamlProgram is the YAML form of a program.
type yamlProgram struct {
	Name         string   `yaml:"name"`
	Instructions []string `yaml:"instructions"`
}

// LoadProgramFile loads a program, choosing the format by extension:
// .yaml and .yml are YAML, anything else is text.
func LoadProgramFile(path string) ([]instr.Inst, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadProgramFileFromYAML(path)
	default:
		return LoadProgramFileFromText(path)
	}
}

// LoadProgramFileFromText loads a text program.
func LoadProgramFileFromText(path string) ([]instr.Inst, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	prog, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return prog, nil
}

// LoadProgramFileFromYAML loads a YAML program.
func LoadProgramFileFromYAML(path string) ([]instr.Inst, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	prog, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return prog, nil
}

// ParseYAML decodes a program of the form
//
//	name: example
//	instructions:
//	  - inp w
//	  - add x 1
func ParseYAML(data []byte) ([]instr.Inst, error) {
	var yp yamlProgram
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	prog := make([]instr.Inst, 0, len(yp.Instructions))
	for i, line := range yp.Instructions {
		inst, err := ParseInst(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: line, Msg: err.Error()}
		}
		prog = append(prog, inst)
	}

	return prog, nil
}

// MarshalYAML encodes a program in the form read by ParseYAML.
func MarshalYAML(name string, prog []instr.Inst) ([]byte, error) {
	yp := yamlProgram{Name: name, Instructions: make([]string, len(prog))}
	for i, inst := range prog {
		yp.Instructions[i] = inst.String()
	}
	return yaml.Marshal(&yp)
}
