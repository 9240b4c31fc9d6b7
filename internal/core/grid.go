package core

import "fmt"

// Grid stores a dense 2D array of values in row-major order. Coordinates are
// never wrapped: callers clamp to [0,W)x[0,H) and an out-of-range access
// panics.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value stored at (x, y).
func (g *Grid[T]) At(x, y int) T {
	return g.data[g.mustIndex(x, y)]
}

// Ref returns a pointer to the cell at (x, y). The pointer is only valid
// until the next structural change of the grid.
func (g *Grid[T]) Ref(x, y int) *T {
	return &g.data[g.mustIndex(x, y)]
}

// Set stores v at (x, y).
func (g *Grid[T]) Set(x, y int, v T) {
	g.data[g.mustIndex(x, y)] = v
}

// Swap exchanges the values stored at two cells.
func (g *Grid[T]) Swap(x0, y0, x1, y1 int) {
	i, j := g.mustIndex(x0, y0), g.mustIndex(x1, y1)
	g.data[i], g.data[j] = g.data[j], g.data[i]
}

// Clear resets every cell to the zero value.
func (g *Grid[T]) Clear() {
	clear(g.data)
}

func (g *Grid[T]) mustIndex(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: grid access (%d,%d) outside %dx%d", x, y, g.W, g.H))
	}
	return y*g.W + x
}
