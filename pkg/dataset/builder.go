// Package dataset builds labelled kolam image sets for training
// classifiers: valid patterns straight from the generator, invalid ones
// degraded by a controlled defect, every file recorded in a sqlite
// manifest.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/kolamkit/kolam/internal/logging"
	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/palette"
	"github.com/kolamkit/kolam/pkg/ports"
	"github.com/kolamkit/kolam/pkg/render"
)

// sides holds the square image resolutions sampled when Spec.Side is
// left at zero.
var sides = []int{512, 768, 1024}

// Spec configures one dataset build.
type Spec struct {
	// OutputDir receives the rendered PNG files. Empty means "dataset".
	OutputDir string

	// Sizes lists the grid sizes to draw. Empty means every odd size
	// from 3 to 15.
	Sizes []int

	// Count is the number of patterns rendered per size and palette.
	// Zero means 5.
	Count int

	// Palettes restricts the color schemes used. Empty means all of
	// them.
	Palettes []string

	// Mutation fixes the defect mode for invalid images. Empty picks a
	// random mode per image.
	Mutation domain.Mutation

	// Side fixes the square image resolution. Zero samples from 512,
	// 768 and 1024 per image.
	Side int

	// Labels is the path of the CSV label file written by
	// BuildComplete. Empty skips the export.
	Labels string
}

func (s Spec) withDefaults() Spec {
	if s.OutputDir == "" {
		s.OutputDir = "dataset"
	}
	if len(s.Sizes) == 0 {
		s.Sizes = []int{3, 5, 7, 9, 11, 13, 15}
	}
	if s.Count <= 0 {
		s.Count = 5
	}
	if len(s.Palettes) == 0 {
		s.Palettes = palette.Names()
	}
	return s
}

// Summary reports the files one complete build produced.
type Summary struct {
	Valid   []string
	Invalid []string
}

// Config wires a Builder.
type Config struct {
	// Generator produces the patterns. Required.
	Generator ports.Generator

	// Manifest records every file. Nil skips the bookkeeping.
	Manifest *Manifest

	// Logger defaults to a no-op logger.
	Logger *slog.Logger

	// Seed drives the builder's randomness (pattern seeds, image sides,
	// random mutation modes). Zero seeds from the clock.
	Seed int64
}

// Builder renders labelled kolam datasets.
type Builder struct {
	gen      ports.Generator
	manifest *Manifest
	logger   *slog.Logger
	rng      *rand.Rand
}

// New creates a Builder from cfg.
func New(cfg Config) *Builder {
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNop()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return &Builder{
		gen:      cfg.Generator,
		manifest: cfg.Manifest,
		logger:   cfg.Logger,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}
}

// BuildValid renders spec.Count clean patterns per size and palette
// into spec.OutputDir and returns the written paths.
func (b *Builder) BuildValid(ctx context.Context, spec Spec) ([]string, error) {
	spec = spec.withDefaults()
	if err := os.MkdirAll(spec.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create dataset dir: %w", err)
	}

	var files []string
	for _, size := range spec.Sizes {
		for i := 0; i < spec.Count; i++ {
			for _, scheme := range spec.Palettes {
				seed := b.rng.Int63()
				p, err := b.gen.GenerateSeeded(ctx, size, seed, "")
				if err != nil {
					return files, err
				}

				filename := fmt.Sprintf("valid_kolam_s%02d_i%03d_%s.png", size, i, scheme)
				path, err := b.emit(p, spec, filename, scheme, size, seed, LabelValid, "")
				if err != nil {
					return files, err
				}
				files = append(files, path)
			}
		}
	}

	b.logger.Info("valid dataset built", "files", len(files), "dir", spec.OutputDir)
	return files, nil
}

// BuildInvalid renders spec.Count defective patterns per size and
// palette into spec.OutputDir and returns the written paths. Each
// pattern passes through spec.Mutation, or a random mode when unset.
func (b *Builder) BuildInvalid(ctx context.Context, spec Spec) ([]string, error) {
	spec = spec.withDefaults()
	if err := os.MkdirAll(spec.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create dataset dir: %w", err)
	}

	modes := domain.Mutations()

	var files []string
	for _, size := range spec.Sizes {
		for i := 0; i < spec.Count; i++ {
			for _, scheme := range spec.Palettes {
				mode := spec.Mutation
				if mode == "" {
					mode = modes[b.rng.Intn(len(modes))]
				}

				seed := b.rng.Int63()
				p, err := b.gen.GenerateSeeded(ctx, size, seed, mode)
				if err != nil {
					return files, err
				}

				filename := fmt.Sprintf("invalid_%s_s%02d_i%03d_%s.png", mode, size, i, scheme)
				path, err := b.emit(p, spec, filename, scheme, size, seed, LabelInvalid, string(mode))
				if err != nil {
					return files, err
				}
				files = append(files, path)
			}
		}
	}

	b.logger.Info("invalid dataset built", "files", len(files), "dir", spec.OutputDir)
	return files, nil
}

// BuildComplete builds the valid and invalid halves of a dataset and,
// when spec.Labels is set, exports the manifest as a CSV label file.
func (b *Builder) BuildComplete(ctx context.Context, spec Spec) (*Summary, error) {
	valid, err := b.BuildValid(ctx, spec)
	if err != nil {
		return nil, err
	}
	invalid, err := b.BuildInvalid(ctx, spec)
	if err != nil {
		return nil, err
	}

	if spec.Labels != "" {
		if err := b.exportLabels(spec.Labels); err != nil {
			return nil, err
		}
	}
	return &Summary{Valid: valid, Invalid: invalid}, nil
}

func (b *Builder) exportLabels(path string) error {
	if b.manifest == nil {
		return errors.New("label export needs a manifest")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create label file: %w", err)
	}
	if err := b.manifest.ExportCSV(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close label file: %w", err)
	}

	b.logger.Info("labels exported", "path", path)
	return nil
}

// emit renders one pattern to disk and records it in the manifest.
func (b *Builder) emit(p *domain.Pattern, spec Spec, filename, scheme string, size int, seed int64, label, mutation string) (string, error) {
	sch, err := palette.Get(scheme)
	if err != nil {
		return "", err
	}

	side := spec.Side
	if side == 0 {
		side = sides[b.rng.Intn(len(sides))]
	}

	path := filepath.Join(spec.OutputDir, filename)
	if err := render.SavePNG(path, p, sch, render.Options{Width: side, Height: side}); err != nil {
		return "", fmt.Errorf("render %s: %w", filename, err)
	}

	if b.manifest != nil {
		img := Image{
			Filename: filename,
			Label:    label,
			Mutation: mutation,
			Size:     size,
			Palette:  scheme,
			Side:     side,
			Dots:     len(p.Dots),
			Curves:   len(p.Curves),
			Seed:     seed,
		}
		if err := b.manifest.Record(img); err != nil {
			return "", fmt.Errorf("record %s: %w", filename, err)
		}
	}

	b.logger.Debug("dataset image written", "file", filename, "label", label, "side", side)
	return path, nil
}
