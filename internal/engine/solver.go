package engine

import "math/rand"

// quarter is the output of the constraint fill: a (hp+2) x (hp+2) buffer
// whose interior [1..hp][1..hp] is the top-left quadrant of the kolam,
// whose row hp+1 and column hp+1 are the seam cells, and whose border of
// ones anchors the first constraints.
type quarter struct {
	buf       [][]int
	hp        int
	odd       bool
	fallbacks int
}

// halfSize maps a kolam size to the quadrant size. Sizes 2k and 2k+1 share
// the same quadrant; the odd path differs later, in composition.
func halfSize(size int) (hp int, odd bool) {
	odd = size%2 != 0
	if odd {
		return (size - 1) / 2, true
	}
	return size / 2, false
}

// solveQuarter fills the quarter buffer with a single greedy pass. Each
// cell draws from the intersection of the candidates admitted by its upper
// and left neighbors; seam cells are additionally restricted to self-mirror
// tiles. There is no backtracking: an empty intersection falls back to
// tile 1 (always mirror-safe) and is counted, not raised.
func solveQuarter(size int, rng *rand.Rand) quarter {
	hp, odd := halfSize(size)
	n := hp + 2

	buf := make([][]int, n)
	for i := range buf {
		buf[i] = make([]int, n)
		for j := range buf[i] {
			buf[i][j] = 1
		}
	}
	q := quarter{buf: buf, hp: hp, odd: odd}

	pick := func(cands []int) int {
		if len(cands) == 0 {
			q.fallbacks++
			return 1
		}
		return cands[rng.Intn(len(cands))]
	}

	// Interior fill, row major.
	for i := 1; i <= hp; i++ {
		for j := 1; j <= hp; j++ {
			cands := intersect(downMates(buf[i-1][j]), rightMates(buf[i][j-1]))
			buf[i][j] = pick(cands)
		}
	}

	// Seam anchors.
	buf[hp+1][0] = 1
	buf[0][hp+1] = 1

	// Bottom seam row: must survive the vertical mirror.
	for j := 1; j <= hp; j++ {
		cands := intersect(downMates(buf[hp][j]), rightMates(buf[hp+1][j-1]))
		buf[hp+1][j] = pick(keepSelf(cands, vSelf))
	}

	// Right seam column: must survive the horizontal mirror.
	for i := 1; i <= hp; i++ {
		cands := intersect(downMates(buf[i-1][hp+1]), rightMates(buf[i][hp]))
		buf[i][hp+1] = pick(keepSelf(cands, hSelf))
	}

	// Corner: meets both mirrors. The only cell that can legitimately run
	// out of candidates; tile 1 keeps it symmetric.
	cands := intersect(downMates(buf[hp][hp+1]), rightMates(buf[hp+1][hp]))
	buf[hp+1][hp+1] = pick(keepSelf(keepSelf(cands, hSelf), vSelf))

	return q
}
