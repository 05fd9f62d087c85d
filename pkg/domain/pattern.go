package domain

// CellSpacing is the distance between adjacent grid dots in canvas units.
// All pattern geometry is laid out on this grid.
const CellSpacing = 60.0

// DotRadius is the default radius of a grid dot in canvas units.
const DotRadius = 3.0

// Dot is a single pulli (grid dot) of a kolam.
type Dot struct {
	ID     string  `json:"id"`
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Curve is one continuous stroke of a kolam, a polyline in canvas units.
type Curve struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
}

// Dimensions is the canvas extent of a pattern.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Pattern is a fully assembled kolam: the dot grid, the strokes drawn
// around it, the canvas extent and the tile matrix it was built from.
// The matrix is stored in drawing orientation (row 0 at the top).
type Pattern struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Dots       []Dot      `json:"dots"`
	Curves     []Curve    `json:"curves"`
	Dimensions Dimensions `json:"dimensions"`
	Matrix     Matrix     `json:"matrix"`
}

// Clone returns a deep copy of the pattern. Mutations of the copy never
// reach the original.
func (p *Pattern) Clone() *Pattern {
	if p == nil {
		return nil
	}
	out := &Pattern{
		ID:         p.ID,
		Name:       p.Name,
		Dimensions: p.Dimensions,
		Matrix:     p.Matrix.Clone(),
	}
	if p.Dots != nil {
		out.Dots = make([]Dot, len(p.Dots))
		copy(out.Dots, p.Dots)
	}
	if p.Curves != nil {
		out.Curves = make([]Curve, len(p.Curves))
		for i, c := range p.Curves {
			pts := make([]Point, len(c.Points))
			copy(pts, c.Points)
			out.Curves[i] = Curve{ID: c.ID, Points: pts}
		}
	}
	return out
}
