package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/shunnNet/co/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. One-shot runs
// print styled output; watch mode runs a live program until Close or quit.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start initializes the UI. In watch mode it launches the live program; the
// WithOnQuit callback runs when the program exits.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)
	if cfg.mode != ModeWatch {
		return nil
	}

	return t.startWithModel(newWatchModel(), cfg.onQuit)
}

func (t *TUI) startWithModel(model tea.Model, onQuit func()) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("tui already started")
	}

	opts := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}, t.options...)
	program := tea.NewProgram(model, opts...)
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = program.Run()

		if onQuit != nil {
			onQuit()
		}
	}()

	t.program = program
	t.done = done

	return nil
}

// Close stops the live program, if any, and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// DisplaySources prints the source graph.
func (t *TUI) DisplaySources(sources []m.Source) error {
	_, err := fmt.Fprint(t.output, renderSources(sources))
	return err
}

// DisplayReports shows generation results.
func (t *TUI) DisplayReports(reports []m.GenerationReport) {
	if t.send(reportsMsg{reports: reports}) {
		return
	}

	_, _ = fmt.Fprint(t.output, renderReports(reports))
}

// DisplayWatching marks the watch loop as running.
func (t *TUI) DisplayWatching(base m.Path) {
	t.send(watchingMsg{base: string(base)})
}

// DisplayPassStarted shows the pass in progress.
func (t *TUI) DisplayPassStarted(pass m.PassReport) {
	t.send(passStartedMsg{id: pass.ID, events: len(pass.Events)})
}

// DisplayPass records a finished pass.
func (t *TUI) DisplayPass(pass m.PassReport) {
	t.send(passDoneMsg{
		id:      pass.ID,
		removed: len(pass.Removed),
		reports: pass.Reports,
		took:    pass.Duration,
	})
}

// send forwards msg to the live program and reports whether one is running.
func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}
