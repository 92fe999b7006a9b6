package domain

import (
	"fmt"

	"github.com/shunnNet/co/internal/adapter"
	m "github.com/shunnNet/co/internal/model"
)

// GenerationResolver decides how a target is generated: a Write when the
// file is missing or has no regions, a Rewrite of its regions otherwise.
//
// A Write over an existing file without region markers replaces the whole
// file.
type GenerationResolver struct {
	fs        adapter.SourceFSAdapter
	generator adapter.TextGenerator
	limit     int
}

// NewGenerationResolver constructs a GenerationResolver. limit caps the
// concurrent region calls of a single rewrite.
func NewGenerationResolver(fs adapter.SourceFSAdapter, generator adapter.TextGenerator, limit int) *GenerationResolver {
	return &GenerationResolver{fs: fs, generator: generator, limit: limit}
}

// Resolve builds the Generation for target.
func (r *GenerationResolver) Resolve(target m.Path) (Generation, error) {
	if !r.fs.Exists(target) {
		return NewWriteGeneration(target, r.fs, r.generator), nil
	}

	content, err := r.fs.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read target %s: %w", target, err)
	}

	directives := RewriteDirectives(content)
	if len(directives) == 0 {
		return NewWriteGeneration(target, r.fs, r.generator), nil
	}

	return NewRewriteGeneration(target, directives, r.fs, r.generator, r.limit), nil
}

// RewriteDirectives returns one directive per region of content, in order.
func RewriteDirectives(content string) []m.RewriteDirective {
	regions := findRegions(content)
	directives := make([]m.RewriteDirective, 0, len(regions))

	for i, reg := range regions {
		directives = append(directives, m.RewriteDirective{
			Index:   i,
			Content: reg.content(content),
			Prompt:  reg.prompt,
		})
	}

	return directives
}
