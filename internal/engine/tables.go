package engine

// Edge signatures per tile id (index = id - 1). A 1 means the tile's curve
// reaches that edge and the neighbor must accept the connection.
var (
	ptDn = [16]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0, 1, 1}
	ptRt = [16]int{0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0, 1, 1, 1, 0, 1}
)

// Mate tables, indexed by edge signature: the tile ids whose opposite edge
// accepts that signature. Lists are kept in ascending order so seeded runs
// are stable.
var (
	matePtDn = [2][]int{
		{2, 3, 5, 6, 9, 10, 12},
		{4, 7, 8, 11, 13, 14, 15, 16},
	}
	matePtRt = [2][]int{
		{2, 3, 4, 6, 7, 11, 13},
		{5, 8, 9, 10, 12, 14, 15, 16},
	}
)

// Mirror involutions on tile ids (index = id - 1). Applying one twice is
// the identity.
var (
	hInv = [16]int{1, 2, 5, 4, 3, 9, 8, 7, 6, 10, 11, 12, 15, 14, 13, 16}
	vInv = [16]int{1, 4, 3, 2, 5, 7, 6, 9, 8, 10, 11, 14, 13, 12, 15, 16}
)

// Fixed points of the involutions: tiles that are their own mirror image.
// Seam cells must come from these sets so the mirrored halves meet cleanly.
var (
	hSelf = fixedPoints(hInv)
	vSelf = fixedPoints(vInv)
)

func fixedPoints(inv [16]int) map[int]bool {
	out := make(map[int]bool)
	for i, v := range inv {
		if v == i+1 {
			out[i+1] = true
		}
	}
	return out
}

// MirrorH returns the horizontal mirror image of a tile id.
func MirrorH(id int) int { return hInv[id-1] }

// MirrorV returns the vertical mirror image of a tile id.
func MirrorV(id int) int { return vInv[id-1] }

// downMates returns the tile ids whose top edge accepts the bottom edge of
// the tile above.
func downMates(above int) []int { return matePtDn[ptDn[above-1]] }

// rightMates returns the tile ids whose left edge accepts the right edge of
// the tile to the left.
func rightMates(left int) []int { return matePtRt[ptRt[left-1]] }

// DownCompatible reports whether below may sit directly under above.
func DownCompatible(above, below int) bool {
	return contains(downMates(above), below)
}

// RightCompatible reports whether right may sit directly after left.
func RightCompatible(left, right int) bool {
	return contains(rightMates(left), right)
}

func contains(sorted []int, v int) bool {
	for _, x := range sorted {
		if x == v {
			return true
		}
		if x > v {
			return false
		}
	}
	return false
}

// intersect merges two ascending lists into their ascending intersection.
func intersect(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// keepSelf filters a candidate list down to members of a self-mirror set,
// preserving order.
func keepSelf(cands []int, self map[int]bool) []int {
	var out []int
	for _, c := range cands {
		if self[c] {
			out = append(out, c)
		}
	}
	return out
}
