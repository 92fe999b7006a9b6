package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/shunnNet/co/internal/model"
)

// ResultStore persists and retrieves settled rewrite results per target.
type ResultStore interface {
	SaveResults(results map[m.Path][]m.RewriteDirective) error
	LoadResults() (map[m.Path][]m.RewriteDirective, error)
	// Clear removes every stored result.
	Clear() error
}

type resultStore struct {
	path m.Path
}

// NewResultStore constructs a ResultStore backed by a JSON file at path.
// An empty path yields a store that keeps nothing.
func NewResultStore(path m.Path) ResultStore {
	return &resultStore{path: path}
}

func (rs *resultStore) SaveResults(results map[m.Path][]m.RewriteDirective) error {
	if rs.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(rs.path)), 0o750); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	if err := os.WriteFile(string(rs.path), data, 0o600); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	return nil
}

func (rs *resultStore) LoadResults() (map[m.Path][]m.RewriteDirective, error) {
	results := make(map[m.Path][]m.RewriteDirective)
	if rs.path == "" {
		return results, nil
	}

	data, err := os.ReadFile(string(rs.path))
	if err != nil {
		if os.IsNotExist(err) {
			return results, nil
		}

		return nil, fmt.Errorf("read results: %w", err)
	}

	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}

	return results, nil
}

func (rs *resultStore) Clear() error {
	if rs.path == "" {
		return nil
	}

	if err := os.Remove(string(rs.path)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove results: %w", err)
	}

	return nil
}
