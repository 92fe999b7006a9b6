package directives

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/shunnNet/co/internal/adapter"
	m "github.com/shunnNet/co/internal/model"
)

var (
	// ErrNoExtension is returned when the referencing file has no extension.
	ErrNoExtension = errors.New("base file must have an extension")
	// ErrUnsupportedReference is returned when a reference has neither an
	// extension nor a co-ext query and the dialect has no fallback.
	ErrUnsupportedReference = errors.New("reference without extension")
)

const (
	extQueryKey   = "co-ext"
	indexQueryKey = "co-index"
	fallbackExt   = "txt"
)

type alias struct {
	prefix      string
	replacement string
}

// PathResolver turns relative or aliased references into canonical paths.
type PathResolver struct {
	fs      adapter.SourceFSAdapter
	aliases []alias
}

// NewPathResolver builds a resolver for the alias map. Longer prefixes are
// tried first so overlapping aliases resolve deterministically.
func NewPathResolver(fs adapter.SourceFSAdapter, aliases map[string]string) *PathResolver {
	list := make([]alias, 0, len(aliases))
	for prefix, replacement := range aliases {
		list = append(list, alias{prefix: prefix, replacement: replacement})
	}

	sort.Slice(list, func(i, j int) bool {
		if len(list[i].prefix) != len(list[j].prefix) {
			return len(list[i].prefix) > len(list[j].prefix)
		}

		return list[i].prefix < list[j].prefix
	})

	return &PathResolver{fs: fs, aliases: list}
}

// ResolveAlias expands the first matching alias prefix of ref and resolves
// the result against baseDir.
func (r *PathResolver) ResolveAlias(baseDir m.Path, ref string) m.Path {
	for _, a := range r.aliases {
		if strings.HasPrefix(ref, a.prefix) {
			return r.fs.Resolve(baseDir, a.replacement+strings.TrimPrefix(ref, a.prefix))
		}
	}

	return r.fs.Resolve(baseDir, ref)
}

// Canonicalize resolves ref as written in baseFile. References without an
// extension may carry `?co-ext=<ext>` (and `&co-index` for an index file);
// without it they fall back to `.txt` unless strict is set.
func (r *PathResolver) Canonicalize(baseFile m.Path, ref string, strict bool) (m.Path, error) {
	if strings.TrimPrefix(r.fs.Extname(baseFile), ".") == "" {
		return "", fmt.Errorf("%s: %w", baseFile, ErrNoExtension)
	}

	baseDir := r.fs.Dirname(baseFile)

	if r.fs.Extname(m.Path(ref)) != "" {
		return r.ResolveAlias(baseDir, ref), nil
	}

	pathPart, rawQuery, _ := strings.Cut(ref, "?")
	query, _ := url.ParseQuery(rawQuery)

	if ext := query.Get(extQueryKey); ext != "" {
		if query.Has(indexQueryKey) {
			return r.ResolveAlias(baseDir, pathPart+"/index."+ext), nil
		}

		return r.ResolveAlias(baseDir, pathPart+"."+ext), nil
	}

	if strict {
		return "", fmt.Errorf("%q: %w", ref, ErrUnsupportedReference)
	}

	return r.ResolveAlias(baseDir, pathPart+"."+fallbackExt), nil
}
