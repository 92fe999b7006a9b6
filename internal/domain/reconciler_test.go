package domain

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/shunnNet/co/internal/model"
)

// recordingGraph records the calls a reconciliation pass makes.
type recordingGraph struct {
	mu      sync.Mutex
	calls   []string
	flushes int
	onFlush func(n int)
}

func (g *recordingGraph) record(call string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls = append(g.calls, call)
}

func (g *recordingGraph) recorded() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]string(nil), g.calls...)
}

func (g *recordingGraph) Scan(context.Context, []string, []string) error { return nil }

func (g *recordingGraph) Generate(context.Context) []m.GenerationReport { return nil }

func (g *recordingGraph) GenerateToTargets(context.Context, []m.Path) []m.GenerationReport {
	return nil
}

func (g *recordingGraph) AddQueue(_ context.Context, path m.Path) { g.record("add " + string(path)) }

func (g *recordingGraph) FlushGenerate(context.Context) []m.GenerationReport {
	g.mu.Lock()
	g.flushes++
	n := g.flushes
	g.calls = append(g.calls, "flush")
	hook := g.onFlush
	g.mu.Unlock()

	if hook != nil {
		hook(n)
	}

	return []m.GenerationReport{{Target: "/proj/out.js", Kind: m.GenerationWrite}}
}

func (g *recordingGraph) RemoveSourceIfExist(path m.Path) { g.record("remove source " + string(path)) }

func (g *recordingGraph) RemoveGenerationIfExist(path m.Path) {
	g.record("remove generation " + string(path))
}

func (g *recordingGraph) Sources() []m.Source { return nil }

func (g *recordingGraph) Contributors(m.Path) []m.Path { return nil }

func startReconciler(t *testing.T, g Graph, opts ReconcilerOptions) (*Reconciler, <-chan m.PassReport) {
	t.Helper()

	passes := make(chan m.PassReport, 8)
	opts.OnPass = func(p m.PassReport) { passes <- p }

	r := NewReconciler(g, log.New(io.Discard), opts)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- r.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
	})

	return r, passes
}

func waitPass(t *testing.T, passes <-chan m.PassReport) m.PassReport {
	t.Helper()

	select {
	case p := <-passes:
		return p
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a pass")
		return m.PassReport{}
	}
}

func assertNoPass(t *testing.T, passes <-chan m.PassReport, wait time.Duration) {
	t.Helper()

	select {
	case p := <-passes:
		t.Fatalf("unexpected pass with %d events", len(p.Events))
	case <-time.After(wait):
	}
}

func TestReconciler_DebounceCoalescesEvents(t *testing.T) {
	g := &recordingGraph{}
	r, passes := startReconciler(t, g, ReconcilerOptions{Debounce: 30 * time.Millisecond})

	assert.Equal(t, StateIdle, r.State())

	r.Push(m.FileEvent{Kind: m.EventChange, Path: "/proj/a.js"})
	assert.Equal(t, StateCollecting, r.State())
	r.Push(m.FileEvent{Kind: m.EventChange, Path: "/proj/a.js"})
	r.Push(m.FileEvent{Kind: m.EventAdd, Path: "/proj/b.js"})

	pass := waitPass(t, passes)

	assert.NotEmpty(t, pass.ID)
	assert.Len(t, pass.Events, 3)
	assert.Equal(t, []m.Path{"/proj/a.js", "/proj/b.js"}, pass.Staged)
	assert.Len(t, pass.Reports, 1)
	assert.Equal(t, []string{"add /proj/a.js", "add /proj/b.js", "flush"}, g.recorded())

	assertNoPass(t, passes, 100*time.Millisecond)
	assert.Equal(t, StateIdle, r.State())
}

func TestReconciler_RemovalsBeforeAdds(t *testing.T) {
	g := &recordingGraph{}
	r, passes := startReconciler(t, g, ReconcilerOptions{Debounce: 10 * time.Millisecond})

	r.Push(m.FileEvent{Kind: m.EventChange, Path: "/proj/a.js"})
	r.Push(m.FileEvent{Kind: m.EventUnlink, Path: "/proj/b.js"})

	pass := waitPass(t, passes)

	assert.Equal(t, []m.Path{"/proj/b.js"}, pass.Removed)
	assert.Equal(t, []m.Path{"/proj/a.js"}, pass.Staged)
	assert.Equal(t, []string{
		"remove source /proj/b.js",
		"remove generation /proj/b.js",
		"add /proj/a.js",
		"flush",
	}, g.recorded())
}

func TestReconciler_EventsDuringPassRunOneFollowUp(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	g := &recordingGraph{onFlush: func(n int) {
		if n == 1 {
			close(entered)
			<-release
		}
	}}

	var started []m.PassReport

	var mu sync.Mutex

	r, passes := startReconciler(t, g, ReconcilerOptions{
		Debounce: 10 * time.Millisecond,
		OnPassStart: func(p m.PassReport) {
			mu.Lock()
			started = append(started, p)
			mu.Unlock()
		},
	})

	r.Push(m.FileEvent{Kind: m.EventChange, Path: "/proj/a.js"})

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first pass never started")
	}

	require.Equal(t, StateReconciling, r.State())

	r.Push(m.FileEvent{Kind: m.EventChange, Path: "/proj/b.js"})
	r.Push(m.FileEvent{Kind: m.EventChange, Path: "/proj/c.js"})
	assert.Equal(t, StateReconciling, r.State())

	close(release)

	first := waitPass(t, passes)
	second := waitPass(t, passes)

	assert.Len(t, first.Events, 1)
	assert.Equal(t, []m.Path{"/proj/b.js", "/proj/c.js"}, second.Staged)
	assert.NotEqual(t, first.ID, second.ID)

	assertNoPass(t, passes, 100*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, started, 2)
	assert.Equal(t, first.ID, started[0].ID)
}

func TestReconciler_RunStopsOnCancel(t *testing.T) {
	r := NewReconciler(&recordingGraph{}, log.New(io.Discard), ReconcilerOptions{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, r.Run(ctx))
	assert.Equal(t, StateIdle, r.State())
}

func TestReconcileState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "collecting", StateCollecting.String())
	assert.Equal(t, "reconciling", StateReconciling.String())
	assert.Equal(t, "unknown", ReconcileState(42).String())
}
