package directives

import (
	"regexp"
	"strings"

	m "github.com/shunnNet/co/internal/model"
)

var (
	scriptBlockPattern    = regexp.MustCompile(`// co(?P<content>[\s\S]*?)// co-end`)
	scriptFragmentPattern = regexp.MustCompile(`// co-source (?P<meta>.+)(?P<fragment>[\s\S]*?)// co-end`)
	fragmentPathPattern   = regexp.MustCompile(`path:(?P<path>[^\s]+)`)

	sideEffectImportPattern = regexp.MustCompile(`import\s+['"](?P<path>[^\s]*?)['"]`)
	fromImportPattern       = regexp.MustCompile(`import[\s\S]*?from ['"](?P<path>[^\s]*?)['"]`)
	requirePattern          = regexp.MustCompile(`require\(['"](?P<path>[^\s]*?)['"]\)`)
)

// ScriptExtensions lists the file extensions handled by ScriptResolver.
var ScriptExtensions = []string{"ts", "tsx", "js", "jsx", "cjs", "mjs", "vue"}

// ScriptResolver parses `// co` ... `// co-end` blocks in script files.
//
// Inside a block, import, require and side-effect imports are directives.
// Anywhere in the file, imports of declared targets are implicit directives.
// `// co-source path:<target>` ... `// co-end` wraps a fragment directive.
type ScriptResolver struct {
	base
}

// NewScriptResolver constructs a ScriptResolver.
func NewScriptResolver(opts Options) *ScriptResolver {
	return &ScriptResolver{base: newBase(opts, false, ScriptExtensions...)}
}

// Resolve extracts directives from a script file.
func (r *ScriptResolver) Resolve(content string, filename m.Path) m.Source {
	// Fragment markers share the block prefix; their excerpts are not blocks.
	outsideFragments := scriptFragmentPattern.ReplaceAllString(content, "")
	blocks := strings.Join(submatches(outsideFragments, scriptBlockPattern, 1), "\n")

	all := r.canonicalize(filename, extractImports(content))
	explicit := r.canonicalize(filename, extractImports(blocks))

	targets := append(r.implicit(all), explicit...)

	var fragments []m.SourceDirective

	for _, match := range scriptFragmentPattern.FindAllStringSubmatch(content, -1) {
		if d, ok := r.fragment(filename, match[1], match[2]); ok {
			fragments = append(fragments, d)
		}
	}

	return build(filename, content, targets, fragments)
}

// extractImports lists the module references of import/require statements,
// side-effect imports last.
func extractImports(content string) []string {
	sideEffects := submatches(content, sideEffectImportPattern, 1)
	rest := sideEffectImportPattern.ReplaceAllString(content, "")

	refs := submatches(rest, fromImportPattern, 1)
	refs = append(refs, submatches(rest, requirePattern, 1)...)

	return append(refs, sideEffects...)
}
