package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/shunnNet/co/internal/adapter"
	"github.com/shunnNet/co/internal/controller"
	"github.com/shunnNet/co/internal/domain/directives"
	m "github.com/shunnNet/co/internal/model"
)

// RunArgs holds the arguments for a one-shot generation.
type RunArgs struct {
	// Targets restricts generation to these references, resolved through
	// the alias map against the base directory. Empty means every target.
	Targets []string
}

// WatchArgs holds the arguments for watch mode.
type WatchArgs struct {
	// Initial generates every target once before watching.
	Initial bool
}

// ListArgs holds the arguments for listing the source graph.
type ListArgs struct {
	// Target, when set, lists only the sources contributing to it.
	Target string
}

// WorkflowOptions carries the project-level settings shared by all commands.
type WorkflowOptions struct {
	BaseDir  m.Path
	Includes []string
	Excludes []string
	Debounce time.Duration
}

// Workflow defines the use cases exposed by the CLI.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Watch(ctx context.Context, args WatchArgs) error
	List(ctx context.Context, args ListArgs) error
	Clear() error
}

type workflow struct {
	graph   Graph
	watcher adapter.Watcher
	paths   *directives.PathResolver
	store   adapter.ResultStore
	ui      controller.UI
	logger  *log.Logger
	opts    WorkflowOptions
}

// NewWorkflow creates a new Workflow over an already constructed graph.
func NewWorkflow(
	graph Graph,
	watcher adapter.Watcher,
	paths *directives.PathResolver,
	store adapter.ResultStore,
	ui controller.UI,
	logger *log.Logger,
	opts WorkflowOptions,
) Workflow {
	return &workflow{
		graph:   graph,
		watcher: watcher,
		paths:   paths,
		store:   store,
		ui:      ui,
		logger:  logger,
		opts:    opts,
	}
}

// Run scans the project and generates either every target or the requested ones.
// Per-target failures are reported, not returned.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.graph.Scan(ctx, w.opts.Includes, w.opts.Excludes); err != nil {
		return fmt.Errorf("scan %s: %w", w.opts.BaseDir, err)
	}

	var reports []m.GenerationReport

	if len(args.Targets) == 0 {
		reports = w.graph.Generate(ctx)
	} else {
		targets := make([]m.Path, 0, len(args.Targets))
		for _, t := range args.Targets {
			targets = append(targets, w.paths.ResolveAlias(w.opts.BaseDir, t))
		}

		reports = w.graph.GenerateToTargets(ctx, targets)
	}

	w.ui.DisplayReports(reports)

	return nil
}

// Watch scans the project and then reconciles file changes until ctx is
// cancelled or the user quits the UI.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.ui.Start(controller.WithWatchMode(), controller.WithOnQuit(cancel)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.graph.Scan(ctx, w.opts.Includes, w.opts.Excludes); err != nil {
		return fmt.Errorf("scan %s: %w", w.opts.BaseDir, err)
	}

	if args.Initial {
		w.ui.DisplayReports(w.graph.Generate(ctx))
	}

	reconciler := NewReconciler(w.graph, w.logger, ReconcilerOptions{
		Debounce:    w.opts.Debounce,
		OnPassStart: w.ui.DisplayPassStarted,
		OnPass:      w.ui.DisplayPass,
	})

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return reconciler.Run(ctx)
	})

	eg.Go(func() error {
		return w.watcher.Watch(ctx, w.opts.BaseDir, w.opts.Includes, w.opts.Excludes, reconciler.Push)
	})

	w.ui.DisplayWatching(w.opts.BaseDir)

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("watch %s: %w", w.opts.BaseDir, err)
	}

	return nil
}

// List scans the project and displays every source with its targets.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.ui.Start(controller.WithRunMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.ui.Close()

	if err := w.graph.Scan(ctx, w.opts.Includes, w.opts.Excludes); err != nil {
		return fmt.Errorf("scan %s: %w", w.opts.BaseDir, err)
	}

	sources := w.graph.Sources()

	if args.Target != "" {
		target := w.paths.ResolveAlias(w.opts.BaseDir, args.Target)
		filtered := sources[:0]

		for _, s := range sources {
			if s.Names(target) {
				filtered = append(filtered, s)
			}
		}

		sources = filtered
	}

	return w.ui.DisplaySources(sources)
}

// Clear forgets every persisted rewrite result.
func (w *workflow) Clear() error {
	if err := w.store.Clear(); err != nil {
		return err
	}

	w.logger.Info("cleared stored results")

	return nil
}
