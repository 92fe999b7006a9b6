package domain

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/shunnNet/co/internal/adapter"
	"github.com/shunnNet/co/internal/domain/directives"
	m "github.com/shunnNet/co/internal/model"
)

// Graph owns the sources and generations of a project and keeps them
// consistent as files change. It is not safe for concurrent use: callers
// serialise scans and reconciliation passes.
//
//nolint:interfacebloat // Mirrors the operations the watch loop needs.
type Graph interface {
	// Scan replaces every source with the ones found under includes/excludes.
	Scan(ctx context.Context, includes, excludes []string) error
	// Generate regenerates every target named by the current sources.
	Generate(ctx context.Context) []m.GenerationReport
	// GenerateToTargets regenerates the given targets only.
	GenerateToTargets(ctx context.Context, targets []m.Path) []m.GenerationReport
	// AddQueue stages the current state of path for the next flush.
	AddQueue(ctx context.Context, path m.Path)
	// FlushGenerate merges staged sources and regenerates their targets.
	FlushGenerate(ctx context.Context) []m.GenerationReport
	// RemoveSourceIfExist forgets the source at path.
	RemoveSourceIfExist(path m.Path)
	// RemoveGenerationIfExist forgets the generation at path.
	RemoveGenerationIfExist(path m.Path)
	// Sources returns the current sources ordered by path.
	Sources() []m.Source
	// Contributors returns the sources naming target, ordered by path.
	Contributors(target m.Path) []m.Path
}

// GraphOptions configures a Graph.
type GraphOptions struct {
	BaseDir     m.Path
	Concurrency int
}

type stagedSource struct {
	path   m.Path
	source *m.Source
}

type graph struct {
	fs          adapter.SourceFSAdapter
	dispatcher  *directives.Dispatcher
	resolver    *GenerationResolver
	store       adapter.ResultStore
	logger      *log.Logger
	opts        GraphOptions
	sources     map[m.Path]m.Source
	generations map[m.Path]Generation
	settled     map[m.Path][]m.RewriteDirective
	queue       []stagedSource
}

// NewGraph constructs a Graph. Settled rewrite results are loaded from store
// so unchanged regions are not regenerated after a restart.
func NewGraph(
	fs adapter.SourceFSAdapter,
	dispatcher *directives.Dispatcher,
	resolver *GenerationResolver,
	store adapter.ResultStore,
	logger *log.Logger,
	opts GraphOptions,
) Graph {
	g := &graph{
		fs:          fs,
		dispatcher:  dispatcher,
		resolver:    resolver,
		store:       store,
		logger:      logger,
		opts:        opts,
		sources:     make(map[m.Path]m.Source),
		generations: make(map[m.Path]Generation),
		settled:     make(map[m.Path][]m.RewriteDirective),
	}

	if store != nil {
		settled, err := store.LoadResults()
		if err != nil {
			logger.Warn("ignoring stored results", "err", err)
		} else {
			g.settled = settled
		}
	}

	return g
}

func (g *graph) Scan(ctx context.Context, includes, excludes []string) error {
	files, err := g.fs.Glob(g.opts.BaseDir, includes, excludes)
	if err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		sources = make(map[m.Path]m.Source)
		eg      errgroup.Group
	)

	eg.SetLimit(scanLimit)

	for _, file := range files {
		eg.Go(func() error {
			source, err := g.resolveSourceByPath(file)
			if err != nil {
				g.logger.Warn("skipping file", "path", file, "err", err)
				return nil
			}

			if source == nil {
				return nil
			}

			mu.Lock()
			sources[file] = *source
			mu.Unlock()

			return nil
		})
	}

	_ = eg.Wait()

	g.sources = sources
	g.logger.Debug("scan complete", "files", len(files), "sources", len(sources))

	return ctx.Err()
}

const scanLimit = 16

func (g *graph) Generate(ctx context.Context) []m.GenerationReport {
	var targets []m.Path

	for _, source := range g.Sources() {
		targets = append(targets, source.Targets()...)
	}

	return g.GenerateToTargets(ctx, targets)
}

func (g *graph) GenerateToTargets(ctx context.Context, targets []m.Path) []m.GenerationReport {
	targets = uniquePaths(targets)
	if len(targets) == 0 {
		return nil
	}

	reports := make([]m.GenerationReport, len(targets))
	generations := make([]Generation, len(targets))

	for i, target := range targets {
		reports[i] = m.GenerationReport{Target: target}

		gen, err := g.resolver.Resolve(target)
		if err != nil {
			reports[i].Err = err
			g.logger.Error("cannot resolve generation", "path", target, "err", err)

			continue
		}

		reports[i].Kind = gen.Kind()

		if rw, ok := gen.(*RewriteGeneration); ok {
			reports[i].Carried = rw.CarryForward(g.settled[target])
			reports[i].Regions = len(rw.Pending())
		}

		generations[i] = gen
	}

	index := make(map[m.Path]int, len(targets))
	for i, target := range targets {
		index[target] = i
	}

	for _, source := range g.Sources() {
		for _, target := range source.Targets() {
			i, ok := index[target]
			if !ok || generations[i] == nil {
				continue
			}

			generations[i].AddSources(source)
			reports[i].Sources = append(reports[i].Sources, source.Path)
		}
	}

	var eg errgroup.Group
	if g.opts.Concurrency > 0 {
		eg.SetLimit(g.opts.Concurrency)
	}

	for i, gen := range generations {
		if gen == nil {
			continue
		}

		eg.Go(func() error {
			started := time.Now()

			g.logger.Info("generating", "path", gen.Path(), "kind", gen.Kind())

			err := gen.Generate(ctx)
			reports[i].Duration = time.Since(started)
			reports[i].Err = err

			if err != nil {
				g.logger.Error("generation failed", "path", gen.Path(), "err", err)
			} else {
				g.logger.Info("generated", "path", gen.Path(), "sources", len(gen.Sources()))
			}

			return nil
		})
	}

	_ = eg.Wait()

	for _, gen := range generations {
		if gen == nil {
			continue
		}

		g.generations[gen.Path()] = gen

		if rw, ok := gen.(*RewriteGeneration); ok {
			g.settled[gen.Path()] = rw.Settled()
		} else {
			delete(g.settled, gen.Path())
		}
	}

	g.persist()

	return reports
}

func (g *graph) AddQueue(_ context.Context, path m.Path) {
	source, err := g.resolveSourceByPath(path)
	if err != nil {
		if adapter.IsNotExist(err) {
			g.logger.Debug("staged missing file", "path", path)
		} else {
			g.logger.Warn("cannot resolve source", "path", path, "err", err)
		}

		source = nil
	}

	g.queue = append(g.queue, stagedSource{path: path, source: source})
}

func (g *graph) FlushGenerate(ctx context.Context) []m.GenerationReport {
	var targets []m.Path

	for _, staged := range g.queue {
		if staged.source == nil {
			g.RemoveSourceIfExist(staged.path)
			continue
		}

		g.setSource(*staged.source)
		targets = append(targets, staged.source.Targets()...)
	}

	g.queue = nil

	return g.GenerateToTargets(ctx, targets)
}

func (g *graph) RemoveSourceIfExist(path m.Path) {
	source, ok := g.sources[path]
	if !ok {
		return
	}

	delete(g.sources, path)

	for _, target := range source.Targets() {
		g.pruneContributor(target, path)
	}
}

func (g *graph) RemoveGenerationIfExist(path m.Path) {
	delete(g.generations, path)

	if _, ok := g.settled[path]; ok {
		delete(g.settled, path)
		g.persist()
	}
}

func (g *graph) Sources() []m.Source {
	sources := make([]m.Source, 0, len(g.sources))
	for _, s := range g.sources {
		sources = append(sources, s)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Path < sources[j].Path })

	return sources
}

func (g *graph) Contributors(target m.Path) []m.Path {
	var paths []m.Path

	for _, s := range g.Sources() {
		if s.Names(target) {
			paths = append(paths, s.Path)
		}
	}

	return paths
}

// setSource replaces the source at its path, pruning it from generations it
// no longer names.
func (g *graph) setSource(source m.Source) {
	if previous, ok := g.sources[source.Path]; ok {
		for _, target := range previous.Targets() {
			if !source.Names(target) {
				g.pruneContributor(target, source.Path)
			}
		}
	}

	g.sources[source.Path] = source
}

func (g *graph) pruneContributor(target, source m.Path) {
	gen, ok := g.generations[target]
	if !ok {
		return
	}

	var remaining bool

	switch t := gen.(type) {
	case *WriteGeneration:
		remaining = t.removeSource(source)
	case *RewriteGeneration:
		remaining = t.removeSource(source)
	default:
		return
	}

	if !remaining {
		delete(g.generations, target)
	}
}

// resolveSourceByPath returns nil when path is not a source.
func (g *graph) resolveSourceByPath(path m.Path) (*m.Source, error) {
	resolver, ok := g.dispatcher.For(path)
	if !ok {
		return nil, nil
	}

	content, err := g.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	source := resolver.Resolve(content, path)
	if len(source.Directives) == 0 {
		return nil, nil
	}

	return &source, nil
}

func (g *graph) persist() {
	if g.store == nil {
		return
	}

	if err := g.store.SaveResults(g.settled); err != nil {
		g.logger.Warn("cannot save results", "err", err)
	}
}

func uniquePaths(paths []m.Path) []m.Path {
	seen := make(map[m.Path]struct{}, len(paths))
	out := make([]m.Path, 0, len(paths))

	for _, p := range paths {
		if _, ok := seen[p]; ok {
			continue
		}

		seen[p] = struct{}{}
		out = append(out, p)
	}

	return out
}
