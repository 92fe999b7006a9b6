package controller

import (
	"io"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// isTerminal is swapped in tests.
var isTerminal = Terminal

// NewUI picks the UI for cmd. The live TUI is only used when live is set
// (watch) and the command output is a terminal; every other case, including
// one-shot runs on a terminal, prints plain text.
func NewUI(cmd *cobra.Command, live bool) UI {
	out := cmd.OutOrStdout()
	if live && isTerminal(out) {
		return NewTUI(out)
	}

	return NewSimpleUI(cmd)
}

// OwnsTerminal reports whether ui draws over the terminal, in which case
// nothing else may write to it while the UI runs.
func OwnsTerminal(ui UI) bool {
	_, ok := ui.(*TUI)
	return ok
}

// Terminal reports whether w is an interactive terminal.
func Terminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
