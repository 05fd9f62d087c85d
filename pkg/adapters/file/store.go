// Package file provides a filesystem-backed ports.PatternStore that keeps
// each pattern as a JSON document. It needs no external services, which
// makes it the middle ground between the memory and redis stores.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kolamkit/kolam/pkg/domain"
)

// Store implements ports.PatternStore on the local filesystem.
// Each pattern lives in <dir>/<storage-id>.json.
type Store struct {
	dir string
}

// NewStore creates a file store rooted at dir. An empty dir defaults to
// ".kolam/patterns". The directory is created lazily on first Save.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = filepath.Join(".kolam", "patterns")
	}
	return &Store{dir: dir}
}

// Save writes the pattern under a fresh storage ID. The write is atomic:
// data goes to a temp file first, is fsynced, then renamed into place, so
// readers never observe a partially written pattern.
func (s *Store) Save(ctx context.Context, p *domain.Pattern) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create pattern directory: %w", err)
	}

	id := uuid.NewString()

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal pattern: %w", err)
	}

	// The temp file must live in the target directory: rename is only
	// atomic within a single filesystem.
	tmp, err := os.CreateTemp(s.dir, "tmp-*.json")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return "", fmt.Errorf("failed to write pattern: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return "", fmt.Errorf("failed to sync pattern: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path(id)); err != nil {
		return "", fmt.Errorf("failed to store pattern: %w", err)
	}
	return id, nil
}

// Load reads a pattern back by its storage ID.
func (s *Store) Load(ctx context.Context, id string) (*domain.Pattern, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to read pattern file: %w", err)
	}

	var p domain.Pattern
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal pattern: %w", err)
	}
	return &p, nil
}

// Delete removes a stored pattern.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return domain.ErrPatternNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete pattern file: %w", err)
	}
	return nil
}

// List returns the storage IDs of all patterns under the store directory.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" || strings.HasPrefix(name, "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}
