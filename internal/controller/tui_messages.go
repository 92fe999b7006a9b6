package controller

import (
	"time"

	m "github.com/shunnNet/co/internal/model"
)

// Message types.
type tickMsg time.Time

type watchingMsg struct {
	base string
}

type passStartedMsg struct {
	id     string
	events int
}

type passDoneMsg struct {
	id      string
	removed int
	reports []m.GenerationReport
	took    time.Duration
}

type reportsMsg struct {
	reports []m.GenerationReport
}
