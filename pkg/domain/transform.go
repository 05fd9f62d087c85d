package domain

import "math"

// Bounds is the axis-aligned bounding box of a pattern's geometry.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// GeometryBounds computes the bounding box over all dot centers and curve
// points. The zero box is returned for a pattern with no geometry.
func (p *Pattern) GeometryBounds() Bounds {
	b := Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	seen := false
	grow := func(pt Point) {
		b.MinX = math.Min(b.MinX, pt.X)
		b.MinY = math.Min(b.MinY, pt.Y)
		b.MaxX = math.Max(b.MaxX, pt.X)
		b.MaxY = math.Max(b.MaxY, pt.Y)
		seen = true
	}
	for _, d := range p.Dots {
		grow(d.Center)
	}
	for _, c := range p.Curves {
		for _, pt := range c.Points {
			grow(pt)
		}
	}
	if !seen {
		return Bounds{}
	}
	return b
}

// Translate returns a copy of the pattern moved by (dx, dy). Dimensions are
// unchanged.
func (p *Pattern) Translate(dx, dy float64) *Pattern {
	out := p.Clone()
	for i := range out.Dots {
		out.Dots[i].Center = out.Dots[i].Center.Add(dx, dy)
	}
	for i := range out.Curves {
		for j := range out.Curves[i].Points {
			out.Curves[i].Points[j] = out.Curves[i].Points[j].Add(dx, dy)
		}
	}
	return out
}

// ScaleBy returns a copy of the pattern scaled uniformly about the origin.
// Dot radii and dimensions scale with it.
func (p *Pattern) ScaleBy(f float64) *Pattern {
	out := p.Clone()
	for i := range out.Dots {
		out.Dots[i].Center = out.Dots[i].Center.Scale(f)
		out.Dots[i].Radius *= f
	}
	for i := range out.Curves {
		for j := range out.Curves[i].Points {
			out.Curves[i].Points[j] = out.Curves[i].Points[j].Scale(f)
		}
	}
	out.Dimensions.Width *= f
	out.Dimensions.Height *= f
	return out
}

// CenterIn returns a copy of the pattern translated so its geometry is
// centered in a width x height canvas, with dimensions set to that canvas.
func (p *Pattern) CenterIn(width, height float64) *Pattern {
	b := p.GeometryBounds()
	dx := (width-b.Width())/2 - b.MinX
	dy := (height-b.Height())/2 - b.MinY
	out := p.Translate(dx, dy)
	out.Dimensions = Dimensions{Width: width, Height: height}
	return out
}
