package sand

import (
	"image"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestGridOperations(t *testing.T) {
	c := qt.New(t)
	g := newGrid(4, 3)

	_, ok := g.Get(1, 1)
	c.Assert(ok, qt.IsFalse)

	g.Set(1, 1, Particle{Material: Sand, X: 1, Y: 1})
	p, ok := g.Get(1, 1)
	c.Assert(ok, qt.IsTrue)
	c.Assert(p.Material, qt.Equals, Sand)

	g.Swap(image.Pt(1, 1), image.Pt(3, 2))
	c.Assert(g.Material(1, 1), qt.Equals, Empty)
	c.Assert(g.Material(3, 2), qt.Equals, Sand)

	taken, ok := g.Take(3, 2)
	c.Assert(ok, qt.IsTrue)
	c.Assert(taken.Material, qt.Equals, Sand)
	c.Assert(g.Count(), qt.Equals, 0)

	g.Set(0, 0, Particle{Material: Empty, X: 9})
	c.Assert(g.cells.At(0, 0), qt.Equals, Particle{})
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	c := qt.New(t)
	g := newGrid(4, 3)
	c.Assert(g.InBounds(4, 0), qt.IsFalse)
	c.Assert(func() { g.Material(4, 0) }, qt.PanicMatches, `core: grid access \(4,0\) outside 4x3`)
}
