// Package grid holds the occupancy map the raycaster walks: a fixed-size
// rectangle of cells that are either empty or wall.
package grid

import "math"

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Empty Cell = iota
	Wall
)

// String returns a short name for the cell state.
func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}
	return "empty"
}

// Grid is a rows x cols occupancy map stored row-major in one slice.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New allocates an all-empty grid. Non-positive dimensions produce an empty
// grid with no cells.
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if rows == 0 || cols == 0 {
		rows, cols = 0, 0
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Set changes the state of a cell. Out of bounds writes are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = c
}

// Get returns the state of a cell. Callers are expected to bounds-check;
// an out of bounds read reports Empty.
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row*g.cols+col]
}

// IsWall reports whether the cell at (row, col) is in bounds and a wall.
func (g *Grid) IsWall(row, col int) bool {
	return g.InBounds(row, col) && g.cells[row*g.cols+col] == Wall
}

// Clear resets every cell to Empty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// WallCount returns the number of wall cells.
func (g *Grid) WallCount() int {
	n := 0
	for _, c := range g.cells {
		if c == Wall {
			n++
		}
	}
	return n
}

// CellAt maps a world-space point to the cell containing it. ok is false
// when the point lies outside the grid or tileSize is not positive.
func (g *Grid) CellAt(x, y, tileSize float64) (row, col int, ok bool) {
	if tileSize <= 0 {
		return 0, 0, false
	}
	col = int(math.Floor(x / tileSize))
	row = int(math.Floor(y / tileSize))
	return row, col, g.InBounds(row, col)
}
