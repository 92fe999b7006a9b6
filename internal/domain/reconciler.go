package domain

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	m "github.com/shunnNet/co/internal/model"
)

// DefaultDebounce is the quiet period used when none is configured.
const DefaultDebounce = 300 * time.Millisecond

// ReconcileState is the phase of the watch loop.
type ReconcileState int

// Reconciler states.
const (
	StateIdle ReconcileState = iota
	StateCollecting
	StateReconciling
)

func (s ReconcileState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateReconciling:
		return "reconciling"
	default:
		return "unknown"
	}
}

// ReconcilerOptions configures a Reconciler.
type ReconcilerOptions struct {
	// Debounce is the quiet period after the last event before a pass starts.
	Debounce time.Duration
	// OnPassStart is called with the pass ID and its events before the pass runs.
	OnPassStart func(m.PassReport)
	// OnPass is called with the finished report of every pass.
	OnPass func(m.PassReport)
}

// Reconciler batches file events and applies them to a Graph in debounced
// passes. Passes never overlap: events pushed while a pass runs are queued
// and drained by exactly one follow-up pass.
type Reconciler struct {
	graph  Graph
	logger *log.Logger
	opts   ReconcilerOptions

	mu       sync.Mutex
	state    ReconcileState
	armed    bool
	timer    *time.Timer
	timerGen uint64
	queue    []m.FileEvent
	trigger  chan struct{}
}

// NewReconciler constructs an idle Reconciler over graph.
func NewReconciler(graph Graph, logger *log.Logger, opts ReconcilerOptions) *Reconciler {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	return &Reconciler{
		graph:   graph,
		logger:  logger,
		opts:    opts,
		trigger: make(chan struct{}, 1),
	}
}

// State returns the current phase.
func (r *Reconciler) State() ReconcileState {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Push queues an event. Outside a pass it (re)arms the debounce timer.
func (r *Reconciler) Push(event m.FileEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queue = append(r.queue, event)
	r.logger.Debug("queued event", "kind", event.Kind, "path", event.Path, "state", r.state)

	if r.state == StateReconciling {
		return
	}

	r.state = StateCollecting
	r.armLocked()
}

// Run executes passes until ctx is cancelled. A pass in flight when ctx is
// cancelled runs to completion before Run returns.
func (r *Reconciler) Run(ctx context.Context) error {
	defer r.disarm()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.trigger:
		}

		events, ok := r.begin()
		if !ok {
			continue
		}

		report := r.reconcile(context.WithoutCancel(ctx), events)

		r.finish()

		if r.opts.OnPass != nil {
			r.opts.OnPass(report)
		}
	}
}

// armLocked restarts the debounce timer. r.mu must be held.
func (r *Reconciler) armLocked() {
	if r.timer != nil {
		r.timer.Stop()
	}

	r.timerGen++
	gen := r.timerGen
	r.armed = true
	r.timer = time.AfterFunc(r.opts.Debounce, func() { r.fire(gen) })
}

func (r *Reconciler) disarm() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
	}

	r.armed = false
}

// fire signals Run unless the timer was re-armed since it was scheduled.
func (r *Reconciler) fire(gen uint64) {
	r.mu.Lock()
	stale := gen != r.timerGen || !r.armed
	r.armed = false
	r.mu.Unlock()

	if stale {
		return
	}

	select {
	case r.trigger <- struct{}{}:
	default:
	}
}

func (r *Reconciler) begin() ([]m.FileEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateCollecting || len(r.queue) == 0 {
		return nil, false
	}

	events := r.queue
	r.queue = nil
	r.state = StateReconciling

	return events, true
}

func (r *Reconciler) finish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		r.state = StateIdle
		return
	}

	r.state = StateCollecting
	r.armLocked()
}

// reconcile applies one batch: removals first, then staged adds and changes
// regenerated as a single flush.
func (r *Reconciler) reconcile(ctx context.Context, events []m.FileEvent) m.PassReport {
	report := m.PassReport{
		ID:      uuid.NewString(),
		Events:  events,
		Started: time.Now(),
	}

	if r.opts.OnPassStart != nil {
		r.opts.OnPassStart(report)
	}

	r.logger.Info("reconciling", "pass", report.ID, "events", len(events))

	for _, event := range events {
		if event.Kind != m.EventUnlink {
			continue
		}

		r.graph.RemoveSourceIfExist(event.Path)
		r.graph.RemoveGenerationIfExist(event.Path)
		report.Removed = append(report.Removed, event.Path)
	}

	seen := make(map[m.Path]struct{}, len(events))

	for _, event := range events {
		if event.Kind == m.EventUnlink {
			continue
		}

		if _, ok := seen[event.Path]; ok {
			continue
		}

		seen[event.Path] = struct{}{}

		r.graph.AddQueue(ctx, event.Path)
		report.Staged = append(report.Staged, event.Path)
	}

	report.Reports = r.graph.FlushGenerate(ctx)
	report.Duration = time.Since(report.Started)

	r.logger.Info("reconciled", "pass", report.ID, "targets", len(report.Reports), "took", report.Duration)

	return report
}
