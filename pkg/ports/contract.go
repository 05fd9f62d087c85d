package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamkit/kolam/pkg/domain"
)

// RunPatternStoreContract runs a suite of tests to verify that a PatternStore
// implementation adheres to the defined interface contract.
func RunPatternStoreContract(t *testing.T, store PatternStore) {
	ctx := context.Background()

	t.Run("Save and Load", func(t *testing.T) {
		p := contractPattern()

		id, err := store.Save(ctx, p)
		require.NoError(t, err, "Save should not return error")
		require.NotEmpty(t, id, "Save should assign a storage ID")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, p, loaded)
	})

	t.Run("Save Takes a Copy", func(t *testing.T) {
		p := contractPattern()
		id, err := store.Save(ctx, p)
		require.NoError(t, err)

		p.Name = "scribbled over"
		p.Dots[0].Center.X = -1
		p.Matrix[0][0] = 99

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, contractPattern(), loaded, "mutating the saved pattern must not affect the store")
	})

	t.Run("Load Returns a Copy", func(t *testing.T) {
		id, err := store.Save(ctx, contractPattern())
		require.NoError(t, err)

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err)
		loaded.Name = "scribbled over"
		loaded.Curves[0].Points[0].Y = -1

		again, err := store.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, contractPattern(), again, "mutating a loaded pattern must not affect the store")
	})

	t.Run("Distinct IDs", func(t *testing.T) {
		id1, err := store.Save(ctx, contractPattern())
		require.NoError(t, err)
		id2, err := store.Save(ctx, contractPattern())
		require.NoError(t, err)
		assert.NotEqual(t, id1, id2, "each Save should assign a fresh storage ID")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "no-such-pattern")
		assert.ErrorIs(t, err, domain.ErrPatternNotFound)
	})

	t.Run("List", func(t *testing.T) {
		id1, err := store.Save(ctx, contractPattern())
		require.NoError(t, err)
		id2, err := store.Save(ctx, contractPattern())
		require.NoError(t, err)

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})

	t.Run("Delete", func(t *testing.T) {
		id, err := store.Save(ctx, contractPattern())
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err = store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrPatternNotFound, "Load after Delete should return ErrPatternNotFound")

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.NotContains(t, ids, id)
	})

	t.Run("Delete Non-Existent", func(t *testing.T) {
		err := store.Delete(ctx, "no-such-pattern")
		assert.ErrorIs(t, err, domain.ErrPatternNotFound)
	})
}

// contractPattern builds a small fixed pattern. Every slice is non-empty so
// the comparison survives a JSON round trip in serializing stores.
func contractPattern() *domain.Pattern {
	return &domain.Pattern{
		ID:   "kolam-2x2",
		Name: "Kolam 2×2",
		Dots: []domain.Dot{
			{ID: "dot-0-0", Center: domain.Point{X: 60, Y: 60}, Radius: 3},
			{ID: "dot-0-1", Center: domain.Point{X: 120, Y: 60}, Radius: 3},
		},
		Curves: []domain.Curve{
			{ID: "curve-0-0", Points: []domain.Point{
				{X: 45, Y: 60}, {X: 60, Y: 75}, {X: 75, Y: 60},
			}},
		},
		Dimensions: domain.Dimensions{Width: 180, Height: 180},
		Matrix:     domain.Matrix{{1, 2}, {3, 4}},
	}
}
