package sand

import (
	"image"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestPaintFillsEmptyCells(t *testing.T) {
	c := qt.New(t)
	world := newTestWorld(16, 16)

	c.Assert(world.Paint(image.Pt(5, 5), 1, Stone), qt.Equals, 9)
	c.Assert(world.Paint(image.Pt(6, 6), 1, Sand), qt.Equals, 5)
	c.Assert(world.Grid().Material(5, 5), qt.Equals, Stone)
	c.Assert(world.Grid().Material(7, 7), qt.Equals, Sand)

	p, _ := world.Grid().Get(7, 7)
	c.Assert(p.VX, qt.Equals, 0.0)
	c.Assert(p.VY, qt.Equals, 0.0)
	c.Assert(world.Validate(), qt.IsNil)
}

func TestPaintClampsToGrid(t *testing.T) {
	c := qt.New(t)
	world := newTestWorld(16, 16)
	c.Assert(world.Paint(image.Pt(0, 0), 2, Sand), qt.Equals, 9)
	c.Assert(world.Paint(image.Pt(-10, -10), 2, Sand), qt.Equals, 0)
	c.Assert(world.Paint(image.Pt(3, 3), 0, Empty), qt.Equals, 0)
}

func TestPaintDensity(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 32, 32
	cfg.Params.PaintDensity = 0
	world := NewWithConfig(cfg)

	c.Assert(world.Paint(image.Pt(8, 8), 3, Sand), qt.Equals, 0)
	c.Assert(world.Paint(image.Pt(8, 8), 3, Stone), qt.Equals, 49)

	world.SetFloatParameter("paint_density", 0.5)
	n := world.Paint(image.Pt(24, 24), 4, Water)
	c.Assert(n > 0 && n < 81, qt.IsTrue, qt.Commentf("painted %d of 81", n))
}

func TestPaintRandomVelocity(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Params.RandomVelocity = true
	cfg.Params.RandomVelocityMax = 3
	world := NewWithConfig(cfg)

	world.Paint(image.Pt(8, 8), 1, Sand)
	first, _ := world.Grid().Get(7, 7)
	for y := 7; y <= 9; y++ {
		for x := 7; x <= 9; x++ {
			p, _ := world.Grid().Get(x, y)
			c.Assert(p.VX, qt.Equals, first.VX)
			c.Assert(p.VY, qt.Equals, first.VY)
			c.Assert(p.VX >= -3 && p.VX <= 3, qt.IsTrue)
		}
	}
}

func TestEraseIdempotent(t *testing.T) {
	c := qt.New(t)
	world := newTestWorld(32, 32)
	world.Paint(image.Pt(8, 8), 2, Sand)

	c.Assert(world.Erase(image.Pt(8, 8), 2), qt.Equals, 25)
	c.Assert(world.Grid().Count(), qt.Equals, 0)

	world.Step()
	world.Step()
	c.Assert(world.Activity().Count(), qt.Equals, 0)

	c.Assert(world.Erase(image.Pt(20, 20), 2), qt.Equals, 0)
	c.Assert(world.Grid().Count(), qt.Equals, 0)
	c.Assert(world.Activity().Active(1, 1), qt.IsTrue)
	c.Assert(world.Activity().Active(0, 0), qt.IsFalse)
	c.Assert(world.Validate(), qt.IsNil)
}

func TestPaintLineLeavesNoGaps(t *testing.T) {
	c := qt.New(t)
	world := newTestWorld(32, 32)
	world.PaintLine(image.Pt(1, 1), image.Pt(30, 12), 0, Stone)
	for _, p := range world.traceEdit(image.Pt(1, 1), image.Pt(30, 12)) {
		c.Assert(world.Grid().Material(p.X, p.Y), qt.Equals, Stone, qt.Commentf("cell %v", p))
	}
	n := world.EraseLine(image.Pt(1, 1), image.Pt(30, 12), 0)
	c.Assert(n, qt.Equals, 30)
	c.Assert(world.Grid().Count(), qt.Equals, 0)
}

func TestQueuedEditsApplyAfterRulePass(t *testing.T) {
	c := qt.New(t)
	world := newTestWorld(16, 16)
	world.Queue(Edit{Kind: EditPaint, From: image.Pt(4, 4), To: image.Pt(4, 4), Material: Sand})
	c.Assert(world.Grid().Count(), qt.Equals, 0)

	world.Step()
	c.Assert(world.Grid().Material(4, 4), qt.Equals, Sand)
	c.Assert(world.Stats().Particles, qt.Equals, 1)
	c.Assert(world.Stats().Moved, qt.Equals, 0)

	world.Queue(Edit{Kind: EditErase, From: image.Pt(0, 0), To: image.Pt(15, 15), Radius: 1})
	world.Step()
	c.Assert(world.Grid().Count(), qt.Equals, 0)
}

func TestSpawnerEmitsOnInterval(t *testing.T) {
	c := qt.New(t)
	world := newTestWorld(16, 32)
	world.AddSpawner(Spawner{At: image.Pt(8, 0), Material: Sand, Interval: 3})

	for i := 0; i < 10; i++ {
		world.Step()
	}
	c.Assert(world.Stats().Particles, qt.Equals, 3)
	c.Assert(world.Validate(), qt.IsNil)

	world.Reset(0)
	c.Assert(world.Spawners(), qt.HasLen, 1)
	world.RemoveSpawners()
	for i := 0; i < 6; i++ {
		world.Step()
	}
	c.Assert(world.Grid().Count(), qt.Equals, 0)
}
