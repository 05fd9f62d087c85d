package domain

// Matrix is a rectangular grid of tile ids. Zero means an empty cell;
// valid tile ids start at 1.
type Matrix [][]int

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m) }

// Cols returns the number of columns, taken from the first row.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]int, len(row))
		copy(out[i], row)
	}
	return out
}

// FlipVertical returns a copy with the row order reversed.
func (m Matrix) FlipVertical() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		r := make([]int, len(row))
		copy(r, row)
		out[len(m)-1-i] = r
	}
	return out
}
