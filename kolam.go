package kolam

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kolamkit/kolam/internal/engine"
	"github.com/kolamkit/kolam/internal/logging"
	"github.com/kolamkit/kolam/internal/metrics"
	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/tiles"
)

// Version is the library version, read from the VERSION file at build time.
//
//go:embed VERSION
var Version string

// OpenAPISpec is the HTTP API contract, served at /openapi.yaml.
//
//go:embed api/openapi.yaml
var OpenAPISpec []byte

// Supported kolam sizes. The solver handles larger grids, but the tile
// library and renderer are calibrated for this range, matching the
// original generator's contract.
const (
	MinSize = 3
	MaxSize = 15
)

// Generator is the high-level entry point for the kolam library. It wraps
// the internal pipeline (solver, composer, assembler, mutator) and owns the
// random source, so one Generator produces a reproducible stream of
// patterns when seeded.
type Generator struct {
	lib    *tiles.Library
	rng    *rand.Rand
	logger *slog.Logger
	rec    *metrics.Recorder

	// rng is stateful and not safe for concurrent use.
	mu sync.Mutex
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithSeed seeds the random source, making every generated pattern
// reproducible. Without it the source is time-seeded.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source directly. Options apply in order, so
// the last of WithSeed and WithRand wins.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = rng
	}
}

// WithTiles swaps the embedded tile library for a custom one.
func WithTiles(lib *tiles.Library) Option {
	return func(g *Generator) {
		g.lib = lib
	}
}

// WithLogger sets a custom structured logger for the generator.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithMetrics registers generation metrics on the given registry.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(g *Generator) {
		g.rec = metrics.New(reg)
	}
}

// New initializes a Generator. With no options it uses the embedded tile
// library and a time-seeded random source.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}

	if g.lib == nil {
		g.lib = tiles.Default()
	}
	if g.lib.Count() == 0 {
		return nil, fmt.Errorf("%w: empty library", domain.ErrTileData)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	return g, nil
}

func checkSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: %d (size must be between %d and %d)", domain.ErrInvalidSize, size, MinSize, MaxSize)
	}
	return nil
}

// Generate produces a complete kolam pattern of the given size. Size n
// yields an n x n tile matrix for even n and the same for odd n, with the
// odd path adding a one-cell cross through the middle.
func (g *Generator) Generate(ctx context.Context, size int) (*domain.Pattern, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}

	start := time.Now()
	g.mu.Lock()
	matrix, fallbacks := engine.Generate(size, g.rng)
	g.mu.Unlock()
	p := engine.Assemble(matrix, g.lib)

	g.logger.Debug("generated kolam",
		"size", size,
		"dots", len(p.Dots),
		"curves", len(p.Curves),
		"fallbacks", fallbacks,
		"took", time.Since(start))
	g.rec.ObserveGeneration(time.Since(start), fallbacks)

	return p, nil
}

// Mutate derives a controlled-defect variant of a pattern. The input is
// never modified.
func (g *Generator) Mutate(p *domain.Pattern, mode domain.Mutation) *domain.Pattern {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := engine.Mutate(p, mode, g.rng)
	g.rec.ObserveMutation(string(mode))
	return out
}

// GenerateMutated generates a pattern and applies a mutation in one step.
// The mode is validated before any work is done.
func (g *Generator) GenerateMutated(ctx context.Context, size int, mode domain.Mutation) (*domain.Pattern, error) {
	if _, err := domain.ParseMutation(string(mode)); err != nil {
		return nil, err
	}
	p, err := g.Generate(ctx, size)
	if err != nil {
		return nil, err
	}
	return g.Mutate(p, mode), nil
}

// GenerateSeeded is Generate with an explicit seed, independent of the
// generator's own random stream, so equal seeds give equal patterns. A
// non-empty mode degrades the result like GenerateMutated does.
func (g *Generator) GenerateSeeded(ctx context.Context, size int, seed int64, mode domain.Mutation) (*domain.Pattern, error) {
	if mode != "" {
		if _, err := domain.ParseMutation(string(mode)); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkSize(size); err != nil {
		return nil, err
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	matrix, fallbacks := engine.Generate(size, rng)
	p := engine.Assemble(matrix, g.lib)
	if mode != "" {
		p = engine.Mutate(p, mode, rng)
		g.rec.ObserveMutation(string(mode))
	}

	g.logger.Debug("generated kolam",
		"size", size,
		"seed", seed,
		"dots", len(p.Dots),
		"curves", len(p.Curves),
		"fallbacks", fallbacks,
		"took", time.Since(start))
	g.rec.ObserveGeneration(time.Since(start), fallbacks)

	return p, nil
}

// Tiles returns the library the generator draws curves from.
func (g *Generator) Tiles() *tiles.Library {
	return g.lib
}
