package dataset

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManifest(t *testing.T) *Manifest {
	t.Helper()
	m, err := OpenManifest(filepath.Join(t.TempDir(), "manifest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestManifest_RecordAndList(t *testing.T) {
	m := newTestManifest(t)

	rows := []Image{
		{Filename: "valid_kolam_s07_i000_ocean.png", Label: LabelValid, Size: 7, Palette: "ocean", Side: 768, Dots: 49, Curves: 12, Seed: 42},
		{Filename: "valid_kolam_s05_i000_classic.png", Label: LabelValid, Size: 5, Palette: "classic", Side: 512, Dots: 25, Curves: 8, Seed: 7},
		{Filename: "invalid_asymmetry_s07_i000_fire.png", Label: LabelInvalid, Mutation: "asymmetry", Size: 7, Palette: "fire", Side: 1024, Dots: 40, Curves: 9, Seed: 13},
	}
	for _, img := range rows {
		require.NoError(t, m.Record(img))
	}

	total, err := m.Count("")
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	valid, err := m.Count(LabelValid)
	require.NoError(t, err)
	assert.Equal(t, 2, valid)

	invalid, err := m.Count(LabelInvalid)
	require.NoError(t, err)
	assert.Equal(t, 1, invalid)

	listed, err := m.List(LabelValid)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	// Filename order.
	assert.Equal(t, "valid_kolam_s05_i000_classic.png", listed[0].Filename)
	assert.Equal(t, "valid_kolam_s07_i000_ocean.png", listed[1].Filename)

	got := listed[1]
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, LabelValid, got.Label)
	assert.Empty(t, got.Mutation)
	assert.Equal(t, 7, got.Size)
	assert.Equal(t, "ocean", got.Palette)
	assert.Equal(t, 768, got.Side)
	assert.Equal(t, 49, got.Dots)
	assert.Equal(t, 12, got.Curves)
	assert.Equal(t, int64(42), got.Seed)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestManifest_RecordReplacesByFilename(t *testing.T) {
	m := newTestManifest(t)

	require.NoError(t, m.Record(Image{
		ID: "row-1", Filename: "valid_kolam_s03_i000_classic.png",
		Label: LabelValid, Size: 3, Palette: "classic", Side: 512,
	}))
	require.NoError(t, m.Record(Image{
		Filename: "valid_kolam_s03_i000_classic.png",
		Label:    LabelInvalid, Mutation: "broken_loops", Size: 3, Palette: "classic", Side: 768,
	}))

	total, err := m.Count("")
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	listed, err := m.List("")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	// The row keeps its original ID but carries the new values.
	assert.Equal(t, "row-1", listed[0].ID)
	assert.Equal(t, LabelInvalid, listed[0].Label)
	assert.Equal(t, "broken_loops", listed[0].Mutation)
	assert.Equal(t, 768, listed[0].Side)
}

func TestManifest_Empty(t *testing.T) {
	m := newTestManifest(t)

	total, err := m.Count("")
	require.NoError(t, err)
	assert.Zero(t, total)

	listed, err := m.List("")
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestManifest_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "manifest.db")

	m, err := OpenManifest(path)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Record(Image{
		Filename: "valid_kolam_s03_i000_classic.png", Label: LabelValid,
		Size: 3, Palette: "classic", Side: 512,
	}))
}

func TestManifest_ExportCSV(t *testing.T) {
	m := newTestManifest(t)

	require.NoError(t, m.Record(Image{
		Filename: "valid_kolam_s05_i000_ocean.png", Label: LabelValid,
		Size: 5, Palette: "ocean", Side: 512,
	}))
	require.NoError(t, m.Record(Image{
		Filename: "invalid_displaced_dots_s05_i000_ocean.png", Label: LabelInvalid,
		Mutation: "displaced_dots", Size: 5, Palette: "ocean", Side: 512,
	}))

	var buf bytes.Buffer
	require.NoError(t, m.ExportCSV(&buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"filename", "label"}, records[0])
	assert.Equal(t, []string{"invalid_displaced_dots_s05_i000_ocean.png", LabelInvalid}, records[1])
	assert.Equal(t, []string{"valid_kolam_s05_i000_ocean.png", LabelValid}, records[2])
}
