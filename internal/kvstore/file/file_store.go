// Package file provides a flat-file KeyValueStore: one JSON file per key,
// rewritten wholesale on every Put. It mirrors the browser local-storage
// semantics the application state was designed around.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"legajos/internal/domain"
)

// Store writes each key to <dir>/<key>.json.
type Store struct {
	dir string
}

// New creates the directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the stored value, or domain.ErrNotFound when the key was
// never written.
func (s *Store) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", key, err)
	}
	return data, nil
}

// Put rewrites the value wholesale.
func (s *Store) Put(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}
