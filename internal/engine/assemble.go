package engine

import (
	"fmt"

	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/tiles"
)

// Assemble turns a tile matrix into drawable geometry. The matrix is
// flipped vertically first so row 0 ends up at the top of the canvas. Every
// positive cell gets a grid dot; cells whose id resolves in the library
// also get that tile's curve, offset to the cell and scaled to the grid.
// Ids with no library entry keep their dot and are otherwise skipped.
//
// Assemble is pure: the same matrix and library always produce the same
// pattern, and neither input is modified.
func Assemble(m domain.Matrix, lib *tiles.Library) *domain.Pattern {
	flipped := m.FlipVertical()
	rows := flipped.Rows()
	cols := flipped.Cols()

	var dots []domain.Dot
	var curves []domain.Curve

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			id := flipped[i][j]
			if id <= 0 {
				continue
			}
			dots = append(dots, domain.Dot{
				ID: fmt.Sprintf("dot-%d-%d", i, j),
				Center: domain.Point{
					X: float64(j+1) * domain.CellSpacing,
					Y: float64(i+1) * domain.CellSpacing,
				},
				Radius: domain.DotRadius,
			})

			tile, err := lib.Get(id)
			if err != nil || len(tile.Points) == 0 {
				continue
			}
			pts := make([]domain.Point, len(tile.Points))
			for k, p := range tile.Points {
				pts[k] = domain.Point{
					X: (float64(j+1) + p.X) * domain.CellSpacing,
					Y: (float64(i+1) + p.Y) * domain.CellSpacing,
				}
			}
			curves = append(curves, domain.Curve{
				ID:     fmt.Sprintf("curve-%d-%d", i, j),
				Points: pts,
			})
		}
	}

	return &domain.Pattern{
		ID:     fmt.Sprintf("kolam-%dx%d", rows, cols),
		Name:   fmt.Sprintf("Kolam %d×%d", rows, cols),
		Dots:   dots,
		Curves: curves,
		Dimensions: domain.Dimensions{
			Width:  float64(cols+1) * domain.CellSpacing,
			Height: float64(rows+1) * domain.CellSpacing,
		},
		Matrix: flipped,
	}
}
