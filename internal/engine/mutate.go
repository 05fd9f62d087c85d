package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/kolamkit/kolam/pkg/domain"
)

// Mutate derives a controlled-defect variant of a pattern. The input is
// deep-cloned first and never modified. A mode that finds nothing to work
// on (no curves to break, fewer than three dots to displace) returns the
// clone untouched, id and all. Unknown modes are rejected upstream by
// domain.ParseMutation, so here they degrade to a plain clone.
func Mutate(p *domain.Pattern, mode domain.Mutation, rng *rand.Rand) *domain.Pattern {
	out := p.Clone()

	applied := false
	switch mode {
	case domain.MutationBrokenLoops:
		applied = breakLoops(out, rng)
	case domain.MutationAsymmetry:
		applied = skew(out, rng)
	case domain.MutationDisplacedDots:
		applied = displaceDots(out, rng)
	}
	if !applied {
		return out
	}

	out.ID = fmt.Sprintf("%s-%s", out.ID, strings.ReplaceAll(string(mode), "_", "-"))
	out.Name = fmt.Sprintf("%s (%s)", out.Name, strings.ReplaceAll(string(mode), "_", " "))
	return out
}

// breakLoops removes a random quarter of the curves, at least one, leaving
// the dot grid intact.
func breakLoops(p *domain.Pattern, rng *rand.Rand) bool {
	n := len(p.Curves)
	if n == 0 {
		return false
	}
	remove := n / 4
	if remove < 1 {
		remove = 1
	}
	doomed := make(map[int]bool, remove)
	for _, idx := range rng.Perm(n)[:remove] {
		doomed[idx] = true
	}
	kept := make([]domain.Curve, 0, n-remove)
	for i, c := range p.Curves {
		if !doomed[i] {
			kept = append(kept, c)
		}
	}
	p.Curves = kept
	return true
}

// skew breaks the mirror symmetry: elements past the midline of a randomly
// chosen axis are dropped with probability 0.3, and half the time a few
// stray dots are scattered near one edge.
func skew(p *domain.Pattern, rng *rand.Rand) bool {
	if len(p.Dots) == 0 && len(p.Curves) == 0 {
		return false
	}

	vertical := rng.Intn(2) == 0
	mid := p.Dimensions.Height / 2
	if vertical {
		mid = p.Dimensions.Width / 2
	}
	coord := func(pt domain.Point) float64 {
		if vertical {
			return pt.X
		}
		return pt.Y
	}

	dots := make([]domain.Dot, 0, len(p.Dots))
	for _, d := range p.Dots {
		if coord(d.Center) > mid && rng.Float64() < 0.3 {
			continue
		}
		dots = append(dots, d)
	}
	p.Dots = dots

	curves := make([]domain.Curve, 0, len(p.Curves))
	for _, c := range p.Curves {
		if coord(centroid(c)) > mid && rng.Float64() < 0.3 {
			continue
		}
		curves = append(curves, c)
	}
	p.Curves = curves

	if rng.Float64() < 0.5 {
		w, h := p.Dimensions.Width, p.Dimensions.Height
		extra := 1 + rng.Intn(3)
		edge := rng.Intn(4)
		for i := 0; i < extra; i++ {
			// Depth 20-30% of the dimension, measured in from the edge.
			depth := 0.2 + 0.1*rng.Float64()
			var c domain.Point
			switch edge {
			case 0:
				c = domain.Point{X: w * depth, Y: rng.Float64() * h}
			case 1:
				c = domain.Point{X: w * (1 - depth), Y: rng.Float64() * h}
			case 2:
				c = domain.Point{X: rng.Float64() * w, Y: h * depth}
			default:
				c = domain.Point{X: rng.Float64() * w, Y: h * (1 - depth)}
			}
			p.Dots = append(p.Dots, domain.Dot{
				ID:     fmt.Sprintf("dot-stray-%d", i),
				Center: c,
				Radius: domain.DotRadius,
			})
		}
	}
	return true
}

// displaceDots nudges a random third of the dots by up to 20 units on each
// axis. Counts stay the same; patterns with fewer than three dots are left
// alone.
func displaceDots(p *domain.Pattern, rng *rand.Rand) bool {
	n := len(p.Dots) / 3
	if n == 0 {
		return false
	}
	for _, idx := range rng.Perm(len(p.Dots))[:n] {
		p.Dots[idx].Center.X += rng.Float64()*40 - 20
		p.Dots[idx].Center.Y += rng.Float64()*40 - 20
	}
	return true
}

func centroid(c domain.Curve) domain.Point {
	if len(c.Points) == 0 {
		return domain.Point{}
	}
	var sx, sy float64
	for _, pt := range c.Points {
		sx += pt.X
		sy += pt.Y
	}
	n := float64(len(c.Points))
	return domain.Point{X: sx / n, Y: sy / n}
}
