package domain

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/shunnNet/co/internal/adapter"
	m "github.com/shunnNet/co/internal/model"
)

// Generation produces or patches one target file from its contributing sources.
type Generation interface {
	Path() m.Path
	Kind() m.GenerationKind
	Sources() []m.Source
	AddSources(sources ...m.Source)
	Generate(ctx context.Context) error
}

type textGeneration struct {
	path      m.Path
	sources   []m.Source
	fs        adapter.SourceFSAdapter
	generator adapter.TextGenerator
}

func (g *textGeneration) Path() m.Path { return g.path }

func (g *textGeneration) Sources() []m.Source { return g.sources }

func (g *textGeneration) AddSources(sources ...m.Source) {
	g.sources = append(g.sources, sources...)
}

// removeSource drops the contributor at path and reports whether any remain.
func (g *textGeneration) removeSource(path m.Path) bool {
	kept := g.sources[:0]

	for _, s := range g.sources {
		if s.Path != path {
			kept = append(kept, s)
		}
	}

	g.sources = kept

	return len(kept) > 0
}

// WriteGeneration synthesises a whole target file in one generator call.
type WriteGeneration struct {
	textGeneration
}

// NewWriteGeneration constructs a WriteGeneration for path.
func NewWriteGeneration(path m.Path, fs adapter.SourceFSAdapter, generator adapter.TextGenerator) *WriteGeneration {
	return &WriteGeneration{textGeneration{path: path, fs: fs, generator: generator}}
}

// Kind returns GenerationWrite.
func (g *WriteGeneration) Kind() m.GenerationKind { return m.GenerationWrite }

// Prompt returns the prompt sent to the generator.
func (g *WriteGeneration) Prompt() string {
	return WritePrompt(g.sources, g.path)
}

// Generate overwrites the target with the generator's answer.
func (g *WriteGeneration) Generate(ctx context.Context) error {
	content, err := g.generator.Build(ctx, g.Prompt())
	if err != nil {
		return fmt.Errorf("generate %s: %w", g.path, err)
	}

	if err := g.fs.Mkdir(g.fs.Dirname(g.path)); err != nil {
		return fmt.Errorf("create dir for %s: %w", g.path, err)
	}

	if err := g.fs.WriteFile(g.path, content); err != nil {
		return fmt.Errorf("write %s: %w", g.path, err)
	}

	return nil
}

// RewriteGeneration regenerates the bounded regions of an existing target.
type RewriteGeneration struct {
	textGeneration
	directives []m.RewriteDirective
	carried    []bool
	limit      int
}

// NewRewriteGeneration constructs a RewriteGeneration for the given regions.
// limit caps concurrent generator calls; values <= 0 mean no limit.
func NewRewriteGeneration(path m.Path, directives []m.RewriteDirective, fs adapter.SourceFSAdapter, generator adapter.TextGenerator, limit int) *RewriteGeneration {
	return &RewriteGeneration{
		textGeneration: textGeneration{path: path, fs: fs, generator: generator},
		directives:     directives,
		carried:        make([]bool, len(directives)),
		limit:          limit,
	}
}

// Kind returns GenerationRewrite.
func (g *RewriteGeneration) Kind() m.GenerationKind { return m.GenerationRewrite }

// Directives returns the regions of the target, including carried results.
func (g *RewriteGeneration) Directives() []m.RewriteDirective {
	return g.directives
}

// Settled returns the regions that hold a generated result.
func (g *RewriteGeneration) Settled() []m.RewriteDirective {
	out := make([]m.RewriteDirective, 0, len(g.directives))

	for _, d := range g.directives {
		if d.Result != "" {
			out = append(out, d)
		}
	}

	return out
}

// CarryForward copies the result of every prior region whose content and
// hint are unchanged and excludes that region from generation. It returns
// the number of carried regions.
func (g *RewriteGeneration) CarryForward(prior []m.RewriteDirective) int {
	count := 0

	for i, d := range g.directives {
		for _, p := range prior {
			if p.Result == "" || !p.Settled(d) {
				continue
			}

			g.directives[i].Result = p.Result
			g.carried[i] = true
			count++

			break
		}
	}

	return count
}

// Pending returns the indexes of regions that will be sent to the generator.
func (g *RewriteGeneration) Pending() []int {
	var out []int

	for i := range g.directives {
		if !g.carried[i] {
			out = append(out, i)
		}
	}

	return out
}

// Prompt returns the prompt for the region at position i.
func (g *RewriteGeneration) Prompt(i int) string {
	return RewritePrompt(g.sources, g.path, g.directives[i])
}

// Generate regenerates every pending region concurrently and splices the
// successful results into the file in descending index order. Failed regions
// keep their text; their errors are joined into the returned error.
func (g *RewriteGeneration) Generate(ctx context.Context) error {
	pending := g.Pending()
	if len(pending) == 0 {
		return nil
	}

	content, err := g.fs.ReadFile(g.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", g.path, err)
	}

	results := make([]*string, len(g.directives))
	errs := make([]error, len(g.directives))

	var eg errgroup.Group
	if g.limit > 0 {
		eg.SetLimit(g.limit)
	}

	for _, i := range pending {
		prompt := g.Prompt(i)

		eg.Go(func() error {
			out, err := g.generator.Build(ctx, prompt)
			if err != nil {
				errs[i] = fmt.Errorf("region %d of %s: %w", g.directives[i].Index, g.path, err)
				return nil
			}

			results[i] = &out

			return nil
		})
	}

	_ = eg.Wait()

	applied := 0

	for i := len(g.directives) - 1; i >= 0; i-- {
		if results[i] == nil {
			continue
		}

		g.directives[i].Result = *results[i]
		content = ApplyRegionEdit(content, g.directives[i].Index, *results[i])
		applied++
	}

	if applied > 0 {
		if err := g.fs.WriteFile(g.path, content); err != nil {
			return errors.Join(append(errs, fmt.Errorf("write %s: %w", g.path, err))...)
		}
	}

	return errors.Join(errs...)
}
