package directives

import (
	"regexp"
	"strings"

	m "github.com/shunnNet/co/internal/model"
)

var (
	markdownBlockPattern    = regexp.MustCompile(`<!--\sco\s-->(?P<content>[\s\S]+)<!--\sco-end\s-->`)
	markdownFragmentPattern = regexp.MustCompile(`<!--\sco-source\s(?P<meta>.+?)-->(?P<fragment>[\s\S]*?)<!--\sco-end\s-->`)
	markdownLinkPattern     = regexp.MustCompile(`\[[^\]]+\]\((?P<path>[^)]+)\)`)
)

// MarkdownExtensions lists the file extensions handled by MarkdownResolver.
var MarkdownExtensions = []string{"md"}

// MarkdownResolver parses `<!-- co -->` ... `<!-- co-end -->` blocks whose
// links name targets, and `<!-- co-source path:<target> -->` fragments.
// Links must carry an extension or a co-ext query.
type MarkdownResolver struct {
	base
}

// NewMarkdownResolver constructs a MarkdownResolver.
func NewMarkdownResolver(opts Options) *MarkdownResolver {
	return &MarkdownResolver{base: newBase(opts, true, MarkdownExtensions...)}
}

// Resolve extracts directives from a markdown file.
func (r *MarkdownResolver) Resolve(content string, filename m.Path) m.Source {
	blocks := strings.Join(submatches(content, markdownBlockPattern, 1), "\n")

	all := r.canonicalize(filename, submatches(content, markdownLinkPattern, 1))
	explicit := r.canonicalize(filename, submatches(blocks, markdownLinkPattern, 1))

	targets := append(r.implicit(all), explicit...)

	var fragments []m.SourceDirective

	for _, match := range markdownFragmentPattern.FindAllStringSubmatch(content, -1) {
		if d, ok := r.fragment(filename, match[1], match[2]); ok {
			fragments = append(fragments, d)
		}
	}

	return build(filename, content, targets, fragments)
}
