package sand

import "fmt"

// Grid stores the dense field of cells in a single row-major buffer.
// Swapping two slots never aliases: it is a plain exchange of two indices.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a w by h grid filled with zero-value (Air) cells.
// Non-positive dimensions are a configuration error and panic.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("sand: invalid grid dimensions %dx%d", w, h))
	}
	return &Grid{W: w, H: h, cells: make([]Cell, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the cell at (x, y). Out-of-range coordinates panic.
func (g *Grid) At(x, y int) Cell {
	g.check(x, y)
	return g.cells[y*g.W+x]
}

// Set overwrites the cell at (x, y). Out-of-range coordinates panic.
func (g *Grid) Set(x, y int, c Cell) {
	g.check(x, y)
	g.cells[y*g.W+x] = c
}

// Swap exchanges the cells at the two coordinates and applies the movement
// flag convention: the destination is marked moved for the rest of the tick,
// the source slot (now holding the displaced cell) is not.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	i, j := g.Index(x1, y1), g.Index(x2, y2)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	g.cells[i].Moved = false
	g.cells[j].Moved = true
}

// Cells exposes the backing slice so the world can scan it directly.
func (g *Grid) Cells() []Cell { return g.cells }

func (g *Grid) check(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("sand: coordinate (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}
