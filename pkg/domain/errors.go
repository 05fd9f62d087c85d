package domain

import "errors"

// ErrTileData is returned when the tile library cannot be decoded or fails
// structural validation. Tile data problems are fatal at load time.
var ErrTileData = errors.New("invalid tile data")

// ErrTileNotFound is returned when a tile id has no entry in the library.
var ErrTileNotFound = errors.New("tile not found")

// ErrPatternNotFound is returned when a pattern id cannot be found in a store.
var ErrPatternNotFound = errors.New("pattern not found")

// ErrUnknownMutation is returned when a mutation name does not match any mode.
var ErrUnknownMutation = errors.New("unknown mutation")

// ErrInvalidSize is returned when a requested grid size is outside the
// supported range.
var ErrInvalidSize = errors.New("invalid size")

// ErrUnknownPalette is returned when a color scheme name is not registered.
var ErrUnknownPalette = errors.New("unknown palette")
