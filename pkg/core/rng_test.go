package core

import (
	"slices"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRNGSeedRepeatable(t *testing.T) {
	c := qt.New(t)
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		c.Assert(a.IntN(1000), qt.Equals, b.IntN(1000))
	}

	a.Seed(7)
	first := a.IntN(1 << 20)
	a.Seed(7)
	c.Assert(a.IntN(1<<20), qt.Equals, first)
}

func TestRNGRangeBounds(t *testing.T) {
	c := qt.New(t)
	r := NewRNG(1)
	for i := 0; i < 500; i++ {
		v := r.Range(-3, 3)
		c.Assert(v >= -3 && v <= 3, qt.IsTrue, qt.Commentf("got %d", v))
		s := r.Sign()
		c.Assert(s == 1 || s == -1, qt.IsTrue)
	}
	c.Assert(r.IntN(0), qt.Equals, 0)
	c.Assert(r.Chance(0), qt.IsFalse)
	c.Assert(r.Chance(1), qt.IsTrue)
}

func TestShuffleIntsKeepsElements(t *testing.T) {
	c := qt.New(t)
	r := NewRNG(3)
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.ShuffleInts(s)
	sorted := slices.Clone(s)
	slices.Sort(sorted)
	c.Assert(sorted, qt.DeepEquals, []int{0, 1, 2, 3, 4, 5, 6, 7})
}
