package sand

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestMaterialDisplacement(t *testing.T) {
	tests := []struct {
		m, other Material
		want     bool
	}{
		{Sand, Water, true},
		{Sand, Sand, false},
		{Water, Sand, false},
		{Water, Water, false},
		{Sand, Stone, false},
		{Stone, Water, false},
		{Sand, Empty, false},
		{Sand, Chromatic, false},
		{Chromatic, Water, false},
	}
	for _, test := range tests {
		qt.Check(t, test.m.Displaces(test.other), qt.Equals, test.want, qt.Commentf("%s displaces %s", test.m, test.other))
	}
}

func TestParseMaterial(t *testing.T) {
	c := qt.New(t)
	for in, want := range map[string]Material{"sand": Sand, " Water ": Water, "3": Stone, "1": Sand, "Chromatic": Chromatic, "4": Chromatic} {
		got, ok := ParseMaterial(in)
		c.Assert(ok, qt.IsTrue, qt.Commentf("%q", in))
		c.Assert(got, qt.Equals, want)
	}
	_, ok := ParseMaterial("lava")
	c.Assert(ok, qt.IsFalse)
	_, ok = ParseMaterial("0")
	c.Assert(ok, qt.IsFalse)
	_, ok = ParseMaterial("5")
	c.Assert(ok, qt.IsFalse)
}

func TestMaterialKinds(t *testing.T) {
	c := qt.New(t)
	c.Assert(Chromatic.Static(), qt.IsTrue)
	c.Assert(Chromatic.Movable(), qt.IsFalse)
	c.Assert(Chromatic.Cycles(), qt.IsTrue)
	c.Assert(Stone.Cycles(), qt.IsFalse)
	c.Assert(Materials(), qt.DeepEquals, []Material{Sand, Water, Stone, Chromatic})
}
