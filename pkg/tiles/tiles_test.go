package tiles

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamkit/kolam/pkg/domain"
)

func TestDefaultLibrary(t *testing.T) {
	lib := Default()

	require.Equal(t, LibrarySize, lib.Count())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, lib.IDs())

	// Every tile carries curve geometry.
	for _, id := range lib.IDs() {
		tile, err := lib.Get(id)
		require.NoError(t, err)
		assert.NotEmpty(t, tile.Points, "tile %d", id)
	}

	// Spot-check connector flags against the shipped data.
	t1, _ := lib.Get(1)
	assert.False(t, t1.HasDown)
	assert.True(t, t1.HasRight)
	t4, _ := lib.Get(4)
	assert.True(t, t4.HasDown)
	assert.False(t, t4.HasRight)
	t16, _ := lib.Get(16)
	assert.False(t, t16.HasDown)
	assert.False(t, t16.HasRight)
}

func TestGet_NotFound(t *testing.T) {
	lib := Default()
	_, err := lib.Get(17)
	assert.ErrorIs(t, err, domain.ErrTileNotFound)
	_, err = lib.Get(0)
	assert.ErrorIs(t, err, domain.ErrTileNotFound)
	assert.False(t, lib.Has(0))
	assert.True(t, lib.Has(16))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"malformed json", `{"patterns": [`},
		{"empty list", `{"patterns": []}`},
		{"no patterns key", `{}`},
		{"id zero", `{"patterns": [{"id": 0, "points": [{"x": 0, "y": 0}]}]}`},
		{"id too large", `{"patterns": [{"id": 17, "points": [{"x": 0, "y": 0}]}]}`},
		{"duplicate id", `{"patterns": [
			{"id": 3, "points": [{"x": 0, "y": 0}]},
			{"id": 3, "points": [{"x": 1, "y": 1}]}]}`},
		{"no points", `{"patterns": [{"id": 1, "points": []}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			if !errors.Is(err, domain.ErrTileData) {
				t.Fatalf("expected ErrTileData, got %v", err)
			}
		})
	}
}

func TestLoad_Reader(t *testing.T) {
	lib, err := Load(strings.NewReader(`{"patterns": [
		{"id": 2, "points": [{"x": 0.5, "y": 0.5}], "hasDownConnection": true}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Count())
	tile, err := lib.Get(2)
	require.NoError(t, err)
	assert.True(t, tile.HasDown)
	assert.False(t, tile.HasRight)
}

func TestRawDefault_Copies(t *testing.T) {
	a := RawDefault()
	a[0] = 'x'
	b := RawDefault()
	if b[0] == 'x' {
		t.Fatal("RawDefault must return a copy")
	}
	_, err := Parse(b)
	require.NoError(t, err)
}
