package core

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestGridSetSwapClear(t *testing.T) {
	c := qt.New(t)
	g := NewGrid[int](4, 3)
	c.Assert(len(g.Cells()), qt.Equals, 12)

	g.Set(1, 2, 5)
	g.Set(3, 0, 9)
	c.Assert(g.At(1, 2), qt.Equals, 5)
	c.Assert(g.Cells()[g.Index(1, 2)], qt.Equals, 5)

	g.Swap(1, 2, 3, 0)
	c.Assert(g.At(1, 2), qt.Equals, 9)
	c.Assert(g.At(3, 0), qt.Equals, 5)

	*g.Ref(0, 0) = 4
	c.Assert(g.At(0, 0), qt.Equals, 4)

	g.Clear()
	for _, v := range g.Cells() {
		c.Assert(v, qt.Equals, 0)
	}
}

func TestGridInBounds(t *testing.T) {
	c := qt.New(t)
	g := NewGrid[bool](5, 2)
	c.Assert(g.InBounds(0, 0), qt.IsTrue)
	c.Assert(g.InBounds(4, 1), qt.IsTrue)
	c.Assert(g.InBounds(5, 1), qt.IsFalse)
	c.Assert(g.InBounds(-1, 0), qt.IsFalse)
	c.Assert(g.InBounds(0, 2), qt.IsFalse)
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	c := qt.New(t)
	g := NewGrid[int](2, 2)
	c.Assert(func() { g.At(2, 0) }, qt.PanicMatches, `core: grid access \(2,0\) outside 2x2`)
	c.Assert(func() { g.Set(0, -1, 1) }, qt.PanicMatches, `core: grid access .*`)
}

func TestNewGridClampsDimensions(t *testing.T) {
	c := qt.New(t)
	g := NewGrid[uint8](0, -3)
	c.Assert(g.W, qt.Equals, 1)
	c.Assert(g.H, qt.Equals, 1)
}
