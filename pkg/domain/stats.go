package domain

import "sort"

// PatternStats summarizes a pattern for logging and dataset manifests.
type PatternStats struct {
	Dots        int   `json:"dots"`
	Curves      int   `json:"curves"`
	CurvePoints int   `json:"curve_points"`
	Rows        int   `json:"rows"`
	Cols        int   `json:"cols"`
	UniqueTiles []int `json:"unique_tiles"`
}

// Stats computes summary counts for a pattern. Tile ids <= 0 are not
// counted as used tiles.
func Stats(p *Pattern) PatternStats {
	s := PatternStats{
		Dots:   len(p.Dots),
		Curves: len(p.Curves),
		Rows:   p.Matrix.Rows(),
		Cols:   p.Matrix.Cols(),
	}
	for _, c := range p.Curves {
		s.CurvePoints += len(c.Points)
	}
	seen := map[int]bool{}
	for _, row := range p.Matrix {
		for _, t := range row {
			if t > 0 && !seen[t] {
				seen[t] = true
				s.UniqueTiles = append(s.UniqueTiles, t)
			}
		}
	}
	sort.Ints(s.UniqueTiles)
	return s
}
