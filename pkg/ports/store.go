package ports

import (
	"context"

	"github.com/kolamkit/kolam/pkg/domain"
)

// PatternStore defines the interface for persisting generated patterns.
// Implementations assign each saved pattern a unique storage ID, distinct
// from the pattern's own descriptive ID (several 7x7 patterns may coexist).
type PatternStore interface {
	// Save persists the pattern and returns the storage ID assigned to it.
	// The store keeps its own copy; callers may mutate p afterwards.
	Save(ctx context.Context, p *domain.Pattern) (string, error)

	// Load retrieves a previously saved pattern by its storage ID.
	// Returns domain.ErrPatternNotFound if the ID is unknown.
	Load(ctx context.Context, id string) (*domain.Pattern, error)

	// List returns the storage IDs of all saved patterns.
	List(ctx context.Context) ([]string, error)

	// Delete removes a saved pattern.
	// Returns domain.ErrPatternNotFound if the ID is unknown.
	Delete(ctx context.Context, id string) error
}
