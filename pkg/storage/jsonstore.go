package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/freshly-app/freshly/pkg/logger"
)

// Store persists named collections as JSON array documents on disk. Every
// read loads the full collection and every write replaces it; the last
// successful write wins.
type Store struct {
	dir string
}

// NewStore creates the data directory if needed and returns a store rooted
// at it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Path returns the file backing the named collection.
func (s *Store) Path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// ReadCollection decodes the named collection into out, which must be a
// pointer to a slice. A missing or corrupt file degrades to an empty
// collection rather than failing the request.
func ReadCollection[T any](s *Store, collection string) ([]T, error) {
	data, err := os.ReadFile(s.Path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Logger.Warn().
			Err(err).
			Str("collection", collection).
			Msg("Corrupt collection file, starting empty")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// WriteCollection replaces the named collection on disk. The document is
// written to a temp file first and renamed into place so readers never see
// a partial file.
func WriteCollection[T any](s *Store, collection string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", collection, err)
	}
	tmp, err := os.CreateTemp(s.dir, collection+"-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}
	return nil
}
