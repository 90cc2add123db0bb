package program

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/donovandicks/monadc/instr"
)

// Write renders prog in the text form read by Parse.
func Write(w io.Writer, prog []instr.Inst) error {
	bw := bufio.NewWriter(w)
	for _, inst := range prog {
		if _, err := fmt.Fprintln(bw, inst.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Format renders prog as a string.
func Format(prog []instr.Inst) string {
	var sb strings.Builder
	_ = Write(&sb, prog)
	return sb.String()
}

// WriteFile writes prog to path in text form.
func WriteFile(path string, prog []instr.Inst) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Write(f, prog); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
