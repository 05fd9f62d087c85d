package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/tiles"
)

func TestAssemble_SmallMatrix(t *testing.T) {
	lib := tiles.Default()
	m := domain.Matrix{
		{2, 3},
		{4, 16},
	}
	p := Assemble(m, lib)

	// Input matrix is flipped vertically before placement.
	assert.Equal(t, domain.Matrix{{4, 16}, {2, 3}}, p.Matrix)
	assert.Equal(t, "kolam-2x2", p.ID)
	assert.Equal(t, "Kolam 2×2", p.Name)
	assert.Equal(t, domain.Dimensions{Width: 180, Height: 180}, p.Dimensions)

	require.Len(t, p.Dots, 4)
	require.Len(t, p.Curves, 4)

	// Row 0 of the flipped matrix is the old bottom row.
	assert.Equal(t, "dot-0-0", p.Dots[0].ID)
	assert.Equal(t, domain.Point{X: 60, Y: 60}, p.Dots[0].Center)
	assert.Equal(t, 3.0, p.Dots[0].Radius)
	assert.Equal(t, "dot-1-1", p.Dots[3].ID)
	assert.Equal(t, domain.Point{X: 120, Y: 120}, p.Dots[3].Center)

	// Curve points are the tile's unit-cell points offset to the cell.
	tile4, err := lib.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "curve-0-0", p.Curves[0].ID)
	require.Len(t, p.Curves[0].Points, len(tile4.Points))
	assert.InDelta(t, (1+tile4.Points[0].X)*60, p.Curves[0].Points[0].X, 1e-9)
	assert.InDelta(t, (1+tile4.Points[0].Y)*60, p.Curves[0].Points[0].Y, 1e-9)
}

func TestAssemble_SkipsEmptyAndUnknownCells(t *testing.T) {
	lib := tiles.Default()
	m := domain.Matrix{
		{0, 5},
		{99, 1},
	}
	p := Assemble(m, lib)

	// Cell value 0 contributes nothing; 99 keeps its grid dot but has no
	// curve in the library.
	require.Len(t, p.Dots, 3)
	require.Len(t, p.Curves, 2)
	var ids []string
	for _, d := range p.Dots {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"dot-0-0", "dot-0-1", "dot-1-1"}, ids)
	assert.Equal(t, "curve-0-1", p.Curves[0].ID)
	assert.Equal(t, "curve-1-1", p.Curves[1].ID)
}

func TestAssemble_Pure(t *testing.T) {
	lib := tiles.Default()
	rng := rand.New(rand.NewSource(29))
	m, _ := Generate(7, rng)

	a := Assemble(m, lib)
	b := Assemble(m, lib)
	require.Equal(t, a, b)

	// Assembling must not touch the input matrix.
	c := m.Clone()
	_ = Assemble(m, lib)
	require.Equal(t, c, m)
}

func TestAssemble_CountsMatchMatrix(t *testing.T) {
	lib := tiles.Default()
	rng := rand.New(rand.NewSource(31))
	for _, size := range []int{3, 4, 7, 10, 15} {
		m, _ := Generate(size, rng)
		p := Assemble(m, lib)

		nonzero := 0
		for _, row := range m {
			for _, v := range row {
				if v > 0 {
					nonzero++
				}
			}
		}
		assert.Len(t, p.Dots, nonzero, "size %d", size)
		assert.Len(t, p.Curves, nonzero, "size %d", size)

		n := m.Rows()
		want := domain.Dimensions{
			Width:  float64(n+1) * domain.CellSpacing,
			Height: float64(n+1) * domain.CellSpacing,
		}
		assert.Equal(t, want, p.Dimensions, "size %d", size)
		assert.Equal(t, fmt.Sprintf("kolam-%dx%d", n, n), p.ID)
	}
}
