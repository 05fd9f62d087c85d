// Package render rasterizes kolam patterns to images using a 2D canvas.
// Curves are stroked first, then the dot grid is filled on top, on a
// uniformly scaled and centered canvas. The y axis is flipped so patterns
// keep the orientation of the original plotting pipeline.
package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kolamkit/kolam/pkg/domain"
	"github.com/kolamkit/kolam/pkg/palette"
)

// smoothSamples is the number of points a curve is resampled to when
// smoothing is on.
const smoothSamples = 100

// lineAlpha is the stroke opacity; dots are drawn fully opaque.
const lineAlpha = 0.9

// Options control rasterization. The zero value gets sensible defaults: an
// 800x800 canvas, 4px strokes, 20 units of padding and smoothing on.
type Options struct {
	Width     int
	Height    int
	LineWidth float64
	// DotRadius overrides every dot's own radius when > 0, in pattern
	// units.
	DotRadius float64
	// NoSmooth strokes the raw polylines instead of resampled curves.
	NoSmooth bool
	// Padding is the margin around the pattern, in pattern units.
	Padding float64
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 800
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 4
	}
	if o.Padding <= 0 {
		o.Padding = 20
	}
	return o
}

// Render draws the pattern with the given scheme and returns the image.
// The pattern is never modified.
func Render(p *domain.Pattern, scheme palette.Scheme, opts Options) image.Image {
	return draw(p, scheme, opts).Image()
}

// RenderPNG renders the pattern and writes PNG bytes to w.
func RenderPNG(w io.Writer, p *domain.Pattern, scheme palette.Scheme, opts Options) error {
	return draw(p, scheme, opts).EncodePNG(w)
}

// SavePNG renders the pattern to a PNG file.
func SavePNG(path string, p *domain.Pattern, scheme palette.Scheme, opts Options) error {
	return draw(p, scheme, opts).SavePNG(path)
}

func draw(p *domain.Pattern, scheme palette.Scheme, opts Options) *gg.Context {
	o := opts.withDefaults()
	dc := gg.NewContext(o.Width, o.Height)

	bg := hexColor(scheme.Background)
	dc.SetRGB(bg.R, bg.G, bg.B)
	dc.Clear()

	// Uniform scale, centered. The padded pattern box is mapped into the
	// canvas with the y axis flipped.
	pw := p.Dimensions.Width + 2*o.Padding
	ph := p.Dimensions.Height + 2*o.Padding
	if pw <= 0 || ph <= 0 {
		return dc
	}
	s := float64(o.Width) / pw
	if sy := float64(o.Height) / ph; sy < s {
		s = sy
	}
	ox := (float64(o.Width) - pw*s) / 2
	oy := (float64(o.Height) - ph*s) / 2
	tx := func(pt domain.Point) (float64, float64) {
		x := ox + (pt.X+o.Padding)*s
		y := oy + (p.Dimensions.Height+o.Padding-pt.Y)*s
		return x, y
	}

	lc := hexColor(scheme.Lines)
	dc.SetRGBA(lc.R, lc.G, lc.B, lineAlpha)
	dc.SetLineWidth(o.LineWidth)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, curve := range p.Curves {
		pts := curve.Points
		if len(pts) < 2 {
			continue
		}
		if !o.NoSmooth && len(pts) > 2 {
			pts = resample(pts, smoothSamples)
		}
		x0, y0 := tx(pts[0])
		dc.MoveTo(x0, y0)
		for _, pt := range pts[1:] {
			x, y := tx(pt)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	dot := hexColor(scheme.Dots)
	dc.SetRGB(dot.R, dot.G, dot.B)
	for _, d := range p.Dots {
		r := d.Radius
		if opts.DotRadius > 0 {
			r = opts.DotRadius
		}
		x, y := tx(d.Center)
		dc.DrawCircle(x, y, r*s)
		dc.Fill()
	}

	return dc
}

// Frames renders n+1 progressive stages of the pattern, revealing curves
// and dots in order. The last frame is the complete render.
func Frames(p *domain.Pattern, scheme palette.Scheme, n int, opts Options) []image.Image {
	if n < 1 {
		n = 1
	}
	out := make([]image.Image, 0, n+1)
	for frame := 0; frame <= n; frame++ {
		progress := float64(frame) / float64(n)
		stage := &domain.Pattern{
			ID:         p.ID,
			Name:       p.Name,
			Dots:       p.Dots[:int(float64(len(p.Dots))*progress)],
			Curves:     p.Curves[:int(float64(len(p.Curves))*progress)],
			Dimensions: p.Dimensions,
			Matrix:     p.Matrix,
		}
		out = append(out, Render(stage, scheme, opts))
	}
	return out
}

// Variants renders the pattern once per builtin palette, keyed by palette
// name.
func Variants(p *domain.Pattern, opts Options) map[string]image.Image {
	out := make(map[string]image.Image, len(palette.Names()))
	for _, name := range palette.Names() {
		scheme, err := palette.Get(name)
		if err != nil {
			continue
		}
		out[name] = Render(p, scheme, opts)
	}
	return out
}

// resample redistributes a polyline onto n evenly spaced parameter values,
// interpolating linearly between the original points.
func resample(pts []domain.Point, n int) []domain.Point {
	if len(pts) < 2 || n < 2 {
		return pts
	}
	out := make([]domain.Point, n)
	last := float64(len(pts) - 1)
	for k := 0; k < n; k++ {
		pos := float64(k) / float64(n-1) * last
		i := int(pos)
		if i >= len(pts)-1 {
			out[k] = pts[len(pts)-1]
			continue
		}
		frac := pos - float64(i)
		a, b := pts[i], pts[i+1]
		out[k] = domain.Point{
			X: a.X + (b.X-a.X)*frac,
			Y: a.Y + (b.Y-a.Y)*frac,
		}
	}
	return out
}

func hexColor(hex string) colorful.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}
