package model

import "time"

// GenerationReport holds the outcome of generating a single target.
type GenerationReport struct {
	Target   Path
	Kind     GenerationKind
	Sources  []Path
	Regions  int           // regions sent to the generator (rewrite only)
	Carried  int           // regions skipped because nothing changed
	Err      error         // nil when the target was written successfully
	Duration time.Duration // wall time spent generating the target
}

// Failed reports whether the target could not be fully generated.
func (r GenerationReport) Failed() bool {
	return r.Err != nil
}

// PassReport summarises one reconciliation pass of the watch loop.
type PassReport struct {
	ID       string
	Events   []FileEvent
	Removed  []Path
	Staged   []Path
	Reports  []GenerationReport
	Started  time.Time
	Duration time.Duration
}
