package engine

import (
	"math/rand"

	"github.com/kolamkit/kolam/pkg/domain"
)

// compose mirrors the quarter into the full matrix. The top-left quadrant
// is taken verbatim; the other three are its images under the horizontal,
// vertical and combined involutions. Odd sizes get a one-cell cross through
// the middle, filled from the seam cells of the quarter buffer.
func compose(q quarter) domain.Matrix {
	hp := q.hp
	buf := q.buf

	q1 := make([][]int, hp)
	for i := 0; i < hp; i++ {
		q1[i] = make([]int, hp)
		for j := 0; j < hp; j++ {
			q1[i][j] = buf[i+1][j+1]
		}
	}

	q2 := make([][]int, hp) // horizontal mirror
	q3 := make([][]int, hp) // vertical mirror
	q4 := make([][]int, hp) // both
	for i := 0; i < hp; i++ {
		q2[i] = make([]int, hp)
		q3[i] = make([]int, hp)
		for j := 0; j < hp; j++ {
			q2[i][j] = MirrorH(q1[i][hp-1-j])
			q3[i][j] = MirrorV(q1[hp-1-i][j])
		}
	}
	for i := 0; i < hp; i++ {
		q4[i] = make([]int, hp)
		for j := 0; j < hp; j++ {
			q4[i][j] = MirrorV(q2[hp-1-i][j])
		}
	}

	if !q.odd {
		n := 2 * hp
		m := make(domain.Matrix, n)
		for i := range m {
			m[i] = make([]int, n)
		}
		for i := 0; i < hp; i++ {
			for j := 0; j < hp; j++ {
				m[i][j] = q1[i][j]
				m[i][hp+j] = q2[i][j]
				m[hp+i][j] = q3[i][j]
				m[hp+i][hp+j] = q4[i][j]
			}
		}
		return m
	}

	n := 2*hp + 1
	m := make(domain.Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
		for j := range m[i] {
			m[i][j] = 1
		}
	}
	for i := 0; i < hp; i++ {
		for j := 0; j < hp; j++ {
			m[i][j] = q1[i][j]
			m[i][hp+1+j] = q2[i][j]
			m[hp+1+i][j] = q3[i][j]
			m[hp+1+i][hp+1+j] = q4[i][j]
		}
	}

	// Middle column from the right seam, middle row from the bottom seam.
	for i := 0; i < hp; i++ {
		m[i][hp] = buf[i+1][hp+1]
		m[hp+1+i][hp] = MirrorV(buf[hp-i][hp+1])
	}
	for j := 0; j < hp; j++ {
		m[hp][j] = buf[hp+1][j+1]
		m[hp][hp+1+j] = MirrorH(buf[hp+1][hp-j])
	}
	m[hp][hp] = buf[hp+1][hp+1]

	return m
}

// Generate runs the solver and composer for the given size and returns the
// full matrix plus the solver's fallback count.
func Generate(size int, rng *rand.Rand) (domain.Matrix, int) {
	q := solveQuarter(size, rng)
	return compose(q), q.fallbacks
}
