// Package controller provides output adapters for displaying generation results.
package controller

import (
	m "github.com/shunnNet/co/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeWatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	onQuit func()
}

// WithRunMode sets the UI to one-shot mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithWatchMode sets the UI to long-running watch mode.
func WithWatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeWatch
	}
}

// WithOnQuit registers fn to be called when the user closes the UI.
func WithOnQuit(fn func()) StartOption {
	return func(c *StartConfig) {
		c.onQuit = fn
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying generation progress.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplaySources(sources []m.Source) error
	DisplayReports(reports []m.GenerationReport)
	DisplayWatching(base m.Path)
	DisplayPassStarted(pass m.PassReport)
	DisplayPass(pass m.PassReport)
}

func reportStatus(r m.GenerationReport) string {
	switch {
	case r.Failed():
		return "failed"
	case r.Kind == m.GenerationRewrite && r.Regions == 0:
		return "unchanged"
	default:
		return "written"
	}
}
