package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/donovandicks/monadc/instr"
)

// LevelTrace sits below debug and carries one record per instruction.
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs at LevelTrace on the default logger.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// PrintBank renders the register bank as a table.
func PrintBank(w io.Writer, bank Bank) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Registers")
	t.AppendHeader(table.Row{"Reg", "Kind", "ID", "Value"})

	for i, v := range bank {
		payload := "-"
		if n, ok := v.Exact(); ok {
			payload = fmt.Sprintf("%d", n)
		} else if idx, ok := v.InputIndex(); ok {
			payload = fmt.Sprintf("input[%d]", idx)
		}
		t.AppendRow(table.Row{instr.Register(i), v.Kind(), v.ID(), payload})
	}

	t.Render()
}

// LogBank writes the bank to the default logger at debug level.
func LogBank(bank Bank) {
	slog.Debug("Bank",
		"w", bank[instr.W],
		"x", bank[instr.X],
		"y", bank[instr.Y],
		"z", bank[instr.Z],
	)
}
