// Package tiles holds the 16-tile curve library kolam patterns are drawn
// from. Each tile is a small stroke fragment in unit-cell space plus two
// advisory connector flags; the embedded default set is the one the whole
// engine is calibrated against.
package tiles

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/kolamkit/kolam/pkg/domain"
)

// LibrarySize is the number of tiles in a complete library.
const LibrarySize = 16

//go:embed data/kolamPatternsData.json
var embeddedData []byte

// Tile is one entry of the curve library.
type Tile struct {
	ID       int
	Points   []domain.Point
	HasDown  bool
	HasRight bool
}

// Library is an id-indexed set of tiles.
type Library struct {
	byID map[int]Tile
}

type tileFile struct {
	Patterns []tileEntry `json:"patterns"`
}

type tileEntry struct {
	ID                 int            `json:"id"`
	Points             []domain.Point `json:"points"`
	HasDownConnection  bool           `json:"hasDownConnection"`
	HasRightConnection bool           `json:"hasRightConnection"`
}

// Load reads a tile library from r. Any decode or validation failure wraps
// domain.ErrTileData.
func Load(r io.Reader) (*Library, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTileData, err)
	}
	return Parse(raw)
}

// Parse decodes a tile library from JSON. The file must contain a non-empty
// pattern list with unique ids in [1, LibrarySize] and at least one point
// per tile.
func Parse(raw []byte) (*Library, error) {
	var f tileFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTileData, err)
	}
	if len(f.Patterns) == 0 {
		return nil, fmt.Errorf("%w: no patterns", domain.ErrTileData)
	}
	lib := &Library{byID: make(map[int]Tile, len(f.Patterns))}
	for _, e := range f.Patterns {
		if e.ID < 1 || e.ID > LibrarySize {
			return nil, fmt.Errorf("%w: tile id %d out of range", domain.ErrTileData, e.ID)
		}
		if _, dup := lib.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate tile id %d", domain.ErrTileData, e.ID)
		}
		if len(e.Points) == 0 {
			return nil, fmt.Errorf("%w: tile %d has no points", domain.ErrTileData, e.ID)
		}
		lib.byID[e.ID] = Tile{
			ID:       e.ID,
			Points:   e.Points,
			HasDown:  e.HasDownConnection,
			HasRight: e.HasRightConnection,
		}
	}
	return lib, nil
}

// Default returns the embedded 16-tile library. It panics only if the
// embedded data is corrupt, which means a broken build.
func Default() *Library {
	lib, err := Parse(embeddedData)
	if err != nil {
		panic(fmt.Sprintf("tiles: embedded library: %v", err))
	}
	return lib
}

// Get returns the tile with the given id.
func (l *Library) Get(id int) (Tile, error) {
	t, ok := l.byID[id]
	if !ok {
		return Tile{}, fmt.Errorf("%w: id %d", domain.ErrTileNotFound, id)
	}
	return t, nil
}

// Has reports whether the library contains the id.
func (l *Library) Has(id int) bool {
	_, ok := l.byID[id]
	return ok
}

// Count returns the number of tiles.
func (l *Library) Count() int { return len(l.byID) }

// IDs returns all tile ids in ascending order.
func (l *Library) IDs() []int {
	ids := make([]int, 0, len(l.byID))
	for id := range l.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// RawDefault returns the embedded library JSON as shipped. Useful for
// serving the tile set over an API without re-encoding.
func RawDefault() []byte {
	out := make([]byte, len(embeddedData))
	copy(out, embeddedData)
	return out
}
