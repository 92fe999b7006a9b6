package domain_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shunnNet/co/internal/adapter"
	adaptermocks "github.com/shunnNet/co/internal/adapter/mocks"
	controllermocks "github.com/shunnNet/co/internal/controller/mocks"
	"github.com/shunnNet/co/internal/domain"
	"github.com/shunnNet/co/internal/domain/directives"
	domainmocks "github.com/shunnNet/co/internal/domain/mocks"
	m "github.com/shunnNet/co/internal/model"
)

var (
	testIncludes = []string{"**/*.js"}
	testExcludes = []string{"node_modules/**"}
)

type workflowMocks struct {
	graph   *domainmocks.MockGraph
	watcher *adaptermocks.MockWatcher
	store   *adaptermocks.MockResultStore
	ui      *controllermocks.MockUI
}

func newTestWorkflow(t *testing.T) (domain.Workflow, workflowMocks) {
	t.Helper()

	mocks := workflowMocks{
		graph:   domainmocks.NewMockGraph(t),
		watcher: adaptermocks.NewMockWatcher(t),
		store:   adaptermocks.NewMockResultStore(t),
		ui:      controllermocks.NewMockUI(t),
	}

	paths := directives.NewPathResolver(adapter.NewLocalSourceFSAdapter(), map[string]string{"@/": "src/"})

	wf := domain.NewWorkflow(mocks.graph, mocks.watcher, paths, mocks.store, mocks.ui, log.New(io.Discard), domain.WorkflowOptions{
		BaseDir:  "/proj",
		Includes: testIncludes,
		Excludes: testExcludes,
		Debounce: 10 * time.Millisecond,
	})

	return wf, mocks
}

func TestWorkflow_Run_AllTargets(t *testing.T) {
	// Arrange
	wf, mocks := newTestWorkflow(t)
	reports := []m.GenerationReport{{Target: "/proj/src/a.js", Kind: m.GenerationWrite}}

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.graph.EXPECT().Scan(mock.Anything, testIncludes, testExcludes).Return(nil)
	mocks.graph.EXPECT().Generate(mock.Anything).Return(reports)
	mocks.ui.EXPECT().DisplayReports(reports).Return()
	mocks.ui.EXPECT().Close().Return()

	// Act
	err := wf.Run(context.Background(), domain.RunArgs{})

	// Assert
	require.NoError(t, err)
}

func TestWorkflow_Run_ResolvesTargets(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	failed := []m.GenerationReport{{Target: "/proj/src/a.js", Err: errors.New("rate limited")}}

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.graph.EXPECT().Scan(mock.Anything, testIncludes, testExcludes).Return(nil)
	mocks.graph.EXPECT().GenerateToTargets(mock.Anything, []m.Path{"/proj/src/a.js", "/proj/lib/b.js"}).Return(failed)
	mocks.ui.EXPECT().DisplayReports(failed).Return()
	mocks.ui.EXPECT().Close().Return()

	err := wf.Run(context.Background(), domain.RunArgs{Targets: []string{"@/a.js", "lib/b.js"}})

	assert.NoError(t, err)
}

func TestWorkflow_Run_ScanError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	boom := errors.New("bad pattern")

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.graph.EXPECT().Scan(mock.Anything, testIncludes, testExcludes).Return(boom)
	mocks.ui.EXPECT().Close().Return()

	err := wf.Run(context.Background(), domain.RunArgs{})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "scan /proj")
}

func TestWorkflow_Run_UIStartError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	mocks.ui.EXPECT().Start(mock.Anything).Return(errors.New("no tty"))

	err := wf.Run(context.Background(), domain.RunArgs{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "start ui")
}

func TestWorkflow_List_FiltersByTarget(t *testing.T) {
	wf, mocks := newTestWorkflow(t)

	index := m.Source{Path: "/proj/src/index.js", Directives: []m.SourceDirective{{TargetPath: "/proj/src/a.js"}}}
	other := m.Source{Path: "/proj/src/other.js", Directives: []m.SourceDirective{{TargetPath: "/proj/src/b.js"}}}

	mocks.ui.EXPECT().Start(mock.Anything).Return(nil)
	mocks.graph.EXPECT().Scan(mock.Anything, testIncludes, testExcludes).Return(nil)
	mocks.graph.EXPECT().Sources().Return([]m.Source{index, other})
	mocks.ui.EXPECT().DisplaySources([]m.Source{index}).Return(nil)
	mocks.ui.EXPECT().Close().Return()

	err := wf.List(context.Background(), domain.ListArgs{Target: "@/a.js"})

	require.NoError(t, err)
}

func TestWorkflow_Clear(t *testing.T) {
	t.Run("removes stored results", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		mocks.store.EXPECT().Clear().Return(nil)

		assert.NoError(t, wf.Clear())
	})

	t.Run("returns store errors", func(t *testing.T) {
		wf, mocks := newTestWorkflow(t)
		boom := errors.New("read-only")
		mocks.store.EXPECT().Clear().Return(boom)

		assert.ErrorIs(t, wf.Clear(), boom)
	})
}

func TestWorkflow_Watch_ReconcilesEvents(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := []m.GenerationReport{{Target: "/proj/src/a.js", Kind: m.GenerationWrite}}

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.graph.EXPECT().Scan(mock.Anything, testIncludes, testExcludes).Return(nil)
	mocks.ui.EXPECT().DisplayWatching(m.Path("/proj")).Return()
	mocks.watcher.EXPECT().Watch(mock.Anything, m.Path("/proj"), testIncludes, testExcludes, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ m.Path, _, _ []string, onEvent func(m.FileEvent)) error {
			onEvent(m.FileEvent{Kind: m.EventChange, Path: "/proj/src/index.js"})
			<-ctx.Done()

			return nil
		})
	mocks.graph.EXPECT().AddQueue(mock.Anything, m.Path("/proj/src/index.js")).Return()
	mocks.graph.EXPECT().FlushGenerate(mock.Anything).Return(reports)
	mocks.ui.EXPECT().DisplayPassStarted(mock.Anything).Return()
	mocks.ui.EXPECT().DisplayPass(mock.Anything).Run(func(pass m.PassReport) {
		assert.Equal(t, reports, pass.Reports)
		cancel()
	}).Return()
	mocks.ui.EXPECT().Close().Return()

	err := wf.Watch(ctx, domain.WatchArgs{})

	require.NoError(t, err)
}

func TestWorkflow_Watch_Initial(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reports := []m.GenerationReport{{Target: "/proj/src/a.js", Kind: m.GenerationWrite}}

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.graph.EXPECT().Scan(mock.Anything, testIncludes, testExcludes).Return(nil)
	mocks.graph.EXPECT().Generate(mock.Anything).Return(reports)
	mocks.ui.EXPECT().DisplayReports(reports).Return()
	mocks.ui.EXPECT().DisplayWatching(m.Path("/proj")).Return()
	mocks.watcher.EXPECT().Watch(mock.Anything, m.Path("/proj"), testIncludes, testExcludes, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ m.Path, _, _ []string, _ func(m.FileEvent)) error {
			cancel()
			<-ctx.Done()

			return nil
		})
	mocks.ui.EXPECT().Close().Return()

	require.NoError(t, wf.Watch(ctx, domain.WatchArgs{Initial: true}))
}

func TestWorkflow_Watch_WatcherError(t *testing.T) {
	wf, mocks := newTestWorkflow(t)
	boom := errors.New("too many open files")

	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	mocks.graph.EXPECT().Scan(mock.Anything, testIncludes, testExcludes).Return(nil)
	mocks.ui.EXPECT().DisplayWatching(m.Path("/proj")).Return()
	mocks.watcher.EXPECT().Watch(mock.Anything, m.Path("/proj"), testIncludes, testExcludes, mock.Anything).Return(boom)
	mocks.ui.EXPECT().Close().Return()

	err := wf.Watch(context.Background(), domain.WatchArgs{})

	require.ErrorIs(t, err, boom)
}
