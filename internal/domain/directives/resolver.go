// Package directives extracts generation directives from source files.
//
// Two dialects are supported: a code-comment dialect for script files and a
// markup-comment dialect for markdown. Both produce a model.Source whose
// directives point at canonical target paths; references that cannot be
// canonicalized are dropped.
package directives

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/shunnNet/co/internal/model"
)

// Resolver parses one source dialect.
type Resolver interface {
	// Supports reports whether the file extension belongs to the dialect.
	Supports(filename m.Path) bool
	// Resolve extracts the directives declared in content.
	Resolve(content string, filename m.Path) m.Source
}

// TargetMatcher reports whether a canonical path is a declared generation
// target. Plain references matching it count as implicit directives.
type TargetMatcher func(path m.Path) bool

// MatchNothing is a TargetMatcher with no targets.
func MatchNothing(m.Path) bool { return false }

// NewGlobMatcher builds a TargetMatcher from target globs. Each pattern is
// alias-expanded and made absolute against baseDir.
func NewGlobMatcher(paths *PathResolver, baseDir m.Path, patterns []string) TargetMatcher {
	if len(patterns) == 0 {
		return MatchNothing
	}

	resolved := make([]string, 0, len(patterns))
	for _, p := range patterns {
		resolved = append(resolved, filepath.ToSlash(string(paths.ResolveAlias(baseDir, p))))
	}

	return func(path m.Path) bool {
		name := filepath.ToSlash(string(path))
		for _, pattern := range resolved {
			if ok, err := doublestar.Match(pattern, name); err == nil && ok {
				return true
			}
		}

		return false
	}
}

// Options configures a dialect resolver.
type Options struct {
	Paths   *PathResolver
	Matcher TargetMatcher
}

type base struct {
	paths      *PathResolver
	matcher    TargetMatcher
	extensions map[string]struct{}
	strict     bool
}

func newBase(opts Options, strict bool, extensions ...string) base {
	exts := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		exts[ext] = struct{}{}
	}

	matcher := opts.Matcher
	if matcher == nil {
		matcher = MatchNothing
	}

	return base{paths: opts.Paths, matcher: matcher, extensions: exts, strict: strict}
}

func (b base) Supports(filename m.Path) bool {
	ext := strings.TrimPrefix(filepath.Ext(string(filename)), ".")
	_, ok := b.extensions[ext]

	return ok
}

// canonicalize resolves refs and silently drops the ones that fail.
func (b base) canonicalize(filename m.Path, refs []string) []m.Path {
	out := make([]m.Path, 0, len(refs))

	for _, ref := range refs {
		p, err := b.paths.Canonicalize(filename, ref, b.strict)
		if err != nil {
			continue
		}

		out = append(out, p)
	}

	return out
}

func (b base) implicit(paths []m.Path) []m.Path {
	out := make([]m.Path, 0, len(paths))

	for _, p := range paths {
		if b.matcher(p) {
			out = append(out, p)
		}
	}

	return out
}

// fragment builds a fragment directive from the metadata of a co-source
// marker, or returns false when no usable path is present.
func (b base) fragment(filename m.Path, meta, excerpt string) (m.SourceDirective, bool) {
	if meta == "" || excerpt == "" {
		return m.SourceDirective{}, false
	}

	match := fragmentPathPattern.FindStringSubmatch(meta)
	if match == nil {
		return m.SourceDirective{}, false
	}

	target, err := b.paths.Canonicalize(filename, match[1], b.strict)
	if err != nil {
		return m.SourceDirective{}, false
	}

	return m.SourceDirective{TargetPath: target, Fragment: excerpt}, true
}

func build(filename m.Path, content string, targets []m.Path, fragments []m.SourceDirective) m.Source {
	directives := make([]m.SourceDirective, 0, len(targets)+len(fragments))
	seen := make(map[m.Path]struct{}, len(targets))

	for _, t := range targets {
		if _, ok := seen[t]; ok {
			continue
		}

		seen[t] = struct{}{}
		directives = append(directives, m.SourceDirective{TargetPath: t})
	}

	directives = append(directives, fragments...)

	return m.Source{Path: filename, Content: content, Directives: directives}
}

func submatches(content string, pattern *regexp.Regexp, group int) []string {
	var out []string

	for _, match := range pattern.FindAllStringSubmatch(content, -1) {
		out = append(out, match[group])
	}

	return out
}

// Dispatcher selects the resolver whose extension set matches a file.
type Dispatcher struct {
	resolvers []Resolver
}

// NewDispatcher returns a Dispatcher trying resolvers in order.
func NewDispatcher(resolvers ...Resolver) *Dispatcher {
	return &Dispatcher{resolvers: resolvers}
}

// For returns the resolver for filename.
func (d *Dispatcher) For(filename m.Path) (Resolver, bool) {
	for _, r := range d.resolvers {
		if r.Supports(filename) {
			return r, true
		}
	}

	return nil, false
}
