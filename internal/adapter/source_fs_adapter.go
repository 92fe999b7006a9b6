// Package adapter contains infrastructure adapters for the co pipeline.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/shunnNet/co/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and writing project files. It intentionally hides
// direct `os` access so the graph logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps graph logic decoupled from os/fs.
type SourceFSAdapter interface {
	// ReadFile loads a text file.
	ReadFile(path m.Path) (string, error)

	// WriteFile replaces the content of a text file.
	WriteFile(path m.Path, content string) error

	// Mkdir creates a directory and any missing parents.
	Mkdir(path m.Path) error

	// Exists reports whether a file or directory exists at path.
	Exists(path m.Path) bool

	// Glob enumerates regular files under base matching any include pattern
	// and none of the exclude patterns. Results are absolute and sorted.
	Glob(base m.Path, includes, excludes []string) ([]m.Path, error)

	// Resolve joins rel onto base unless rel is already absolute.
	Resolve(base m.Path, rel string) m.Path

	// Dirname returns the directory portion of path.
	Dirname(path m.Path) m.Path

	// Extname returns the extension of path, including the leading dot.
	Extname(path m.Path) string
}

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the graph.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) (string, error) {
	// #nosec G304 - paths come from the scanned project tree
	data, err := os.ReadFile(string(path))
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// WriteFile writes content to path, keeping the mode of an existing file.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(string(path), []byte(content), perm)
}

// Mkdir creates path and its parents.
func (a *LocalSourceFSAdapter) Mkdir(path m.Path) error {
	return os.MkdirAll(string(path), 0o755)
}

// Exists reports whether path is present on disk.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))
	return err == nil
}

// Glob collects the files under base selected by includes and excludes.
func (a *LocalSourceFSAdapter) Glob(base m.Path, includes, excludes []string) ([]m.Path, error) {
	root, err := filepath.Abs(string(base))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	fsys := os.DirFS(root)

	for _, include := range includes {
		pattern := filepath.ToSlash(include)

		var matches []string

		if filepath.IsAbs(include) {
			matches, err = doublestar.FilepathGlob(include, doublestar.WithFilesOnly())
		} else {
			pattern = strings.TrimPrefix(pattern, "./")
			matches, err = doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		}

		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", include, err)
		}

		for _, match := range matches {
			abs := match
			if !filepath.IsAbs(abs) {
				abs = filepath.Join(root, filepath.FromSlash(match))
			}

			if Excluded(root, abs, excludes) {
				continue
			}

			seen[abs] = struct{}{}
		}
	}

	paths := make([]m.Path, 0, len(seen))
	for p := range seen {
		paths = append(paths, m.Path(p))
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}

// Resolve joins rel onto base unless rel is absolute; the result is cleaned.
func (a *LocalSourceFSAdapter) Resolve(base m.Path, rel string) m.Path {
	if filepath.IsAbs(rel) {
		return m.Path(filepath.Clean(rel))
	}

	return m.Path(filepath.Join(string(base), rel))
}

// Dirname returns the parent directory of path.
func (a *LocalSourceFSAdapter) Dirname(path m.Path) m.Path {
	return m.Path(filepath.Dir(string(path)))
}

// Extname returns the extension of path.
func (a *LocalSourceFSAdapter) Extname(path m.Path) string {
	return filepath.Ext(string(path))
}

// Included reports whether path, relative to root, matches one of patterns.
func Included(root, path string, patterns []string) bool {
	return matchAny(root, path, patterns)
}

// Excluded reports whether path, relative to root, matches one of patterns.
// Directories are tested with a probe child so that `**/dir/**` style
// patterns exclude the directory itself.
func Excluded(root, path string, patterns []string) bool {
	if matchAny(root, path, patterns) {
		return true
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return matchAny(root, filepath.Join(path, ".probe"), patterns)
	}

	return false
}

func matchAny(root, path string, patterns []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	rel = filepath.ToSlash(rel)
	abs := filepath.ToSlash(path)

	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(filepath.ToSlash(pattern), "./")

		candidate := rel
		if strings.HasPrefix(pattern, "/") {
			candidate = abs
		}

		ok, err := doublestar.Match(pattern, candidate)
		if err != nil {
			continue
		}

		if ok {
			return true
		}
	}

	return false
}

// IsNotExist reports whether err signals a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
