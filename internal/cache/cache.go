// Package cache implements the local byte cache for downloaded dataset files.
//
// The cache is presence-only: a file on disk under the cache directory is
// served as-is with no freshness or invalidation check. Keys are
// slash-separated relative paths such as "pbp/play_by_play_2023.parquet".
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store persists downloaded files under a data directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if needed.
// A leading "~/" is expanded to the user's home directory.
func New(dir string) (*Store, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Dir returns the resolved cache directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the on-disk location for a cache key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, filepath.FromSlash(key))
}

// Load returns the cached bytes for key. The second result is false when the
// key is not cached; any other read failure is returned as an error.
func (s *Store) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cache file: %w", err)
	}
	return data, true, nil
}

// Save writes data under key, creating parent directories as needed.
func (s *Store) Save(key string, data []byte) error {
	path := s.Path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating cache subdirectory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing cache file: %w", err)
	}
	return nil
}

// Remove deletes the cached file for key if present.
func (s *Store) Remove(key string) error {
	err := os.Remove(s.Path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing cache file: %w", err)
	}
	return nil
}
