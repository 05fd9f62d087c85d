package ports

import (
	"context"

	"github.com/kolamkit/kolam/pkg/domain"
)

// Generator defines the interface for the pattern-producing core.
// This is the primary interface used by driving adapters (e.g., HTTP, MCP)
// so they can be tested against a stub instead of the real engine.
type Generator interface {
	// Generate produces a complete pattern with a size x size dot grid.
	Generate(ctx context.Context, size int) (*domain.Pattern, error)

	// GenerateMutated produces a pattern and degrades it with the given
	// mutation mode.
	GenerateMutated(ctx context.Context, size int, mode domain.Mutation) (*domain.Pattern, error)

	// GenerateSeeded is Generate with an explicit seed, so equal seeds
	// give equal patterns. An empty mode leaves the pattern clean.
	GenerateSeeded(ctx context.Context, size int, seed int64, mode domain.Mutation) (*domain.Pattern, error)
}
