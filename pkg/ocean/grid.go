package ocean

// Grid is a fixed-size 2D array of complex values stored row-major in a
// single contiguous slice.
type Grid struct {
	rows int
	cols int
	data []complex128
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, data: make([]complex128, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.cols + col }

// At returns the value at (row, col).
func (g *Grid) At(row, col int) complex128 { return g.data[row*g.cols+col] }

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v complex128) { g.data[row*g.cols+col] = v }

// Row returns row r as a slice aliasing the grid storage.
func (g *Grid) Row(r int) []complex128 {
	start := r * g.cols
	return g.data[start : start+g.cols : start+g.cols]
}

// Cells exposes the backing slice.
func (g *Grid) Cells() []complex128 { return g.data }

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.data, g.data)
	return c
}
