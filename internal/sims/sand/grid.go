package sand

import (
	"image"

	"sandfall/internal/core"
)

// Grid is the dense particle store. A cell holding a particle whose Material
// is Empty is vacant. Callers pre-validate coordinates; out-of-range access
// panics.
type Grid struct {
	cells *core.Grid[Particle]
}

func newGrid(w, h int) *Grid {
	return &Grid{cells: core.NewGrid[Particle](w, h)}
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (int, int) { return g.cells.W, g.cells.H }

// InBounds reports whether (x, y) is a cell of the grid.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// Get returns the particle at (x, y) and whether the cell is occupied.
func (g *Grid) Get(x, y int) (Particle, bool) {
	p := g.cells.At(x, y)
	return p, p.Material != Empty
}

// Set stores p at (x, y). Storing a particle with Material Empty clears the
// cell.
func (g *Grid) Set(x, y int, p Particle) {
	if p.Material == Empty {
		p = Particle{}
	}
	g.cells.Set(x, y, p)
}

// Take removes and returns the particle at (x, y).
func (g *Grid) Take(x, y int) (Particle, bool) {
	ref := g.cells.Ref(x, y)
	p := *ref
	*ref = Particle{}
	return p, p.Material != Empty
}

// Swap exchanges the contents of two cells.
func (g *Grid) Swap(a, b image.Point) {
	g.cells.Swap(a.X, a.Y, b.X, b.Y)
}

// Material returns the material at (x, y), Empty for vacant cells.
func (g *Grid) Material(x, y int) Material {
	return g.cells.Ref(x, y).Material
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, p := range g.cells.Cells() {
		if p.Material != Empty {
			n++
		}
	}
	return n
}

func (g *Grid) ref(x, y int) *Particle { return g.cells.Ref(x, y) }

func (g *Grid) clear() { g.cells.Clear() }
