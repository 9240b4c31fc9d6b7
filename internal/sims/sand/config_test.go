package sand

import (
	"image/color"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFromMap(t *testing.T) {
	c := qt.New(t)
	cfg := FromMap(map[string]string{
		"w":               "100",
		"h":               "50",
		"chunk":           "8",
		"seed":            "-4",
		"gravity":         "0.3",
		"friction":        "1.5",
		"max_spread":      "0",
		"random_velocity": "true",
		"paint_density":   "0.75",
		"sleep_threshold": "bogus",
	})
	c.Assert(cfg.Width, qt.Equals, 100)
	c.Assert(cfg.Height, qt.Equals, 50)
	c.Assert(cfg.ChunkSize, qt.Equals, 8)
	c.Assert(cfg.Seed, qt.Equals, int64(-4))
	c.Assert(cfg.Params.Gravity, qt.Equals, 0.3)
	c.Assert(cfg.Params.Friction, qt.Equals, DefaultConfig().Params.Friction)
	c.Assert(cfg.Params.MaxSpread, qt.Equals, DefaultConfig().Params.MaxSpread)
	c.Assert(cfg.Params.RandomVelocity, qt.IsTrue)
	c.Assert(cfg.Params.PaintDensity, qt.Equals, 0.75)
	c.Assert(cfg.Params.SleepThreshold, qt.Equals, DefaultConfig().Params.SleepThreshold)
}

func TestFromMapNil(t *testing.T) {
	qt.Assert(t, FromMap(nil).Params, qt.Equals, DefaultConfig().Params)
}

func TestNormalize(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	cfg.Width = 100
	cfg.Height = 0
	cfg.ChunkSize = 16
	cfg.Palettes = map[Material][]color.RGBA{
		Sand:  {{R: 1, A: 255}},
		Water: nil,
	}
	got := cfg.normalize()
	c.Assert(got.Width, qt.Equals, 112)
	c.Assert(got.Height, qt.Equals, 16)
	c.Assert(got.Palettes[Sand], qt.DeepEquals, []color.RGBA{{R: 1, A: 255}})
	c.Assert(got.Palettes[Water], qt.DeepEquals, DefaultPalettes()[Water])
	c.Assert(got.Palettes[Stone], qt.HasLen, 4)
}

func TestParameterSetters(t *testing.T) {
	c := qt.New(t)
	world := newTestWorld(16, 16)

	c.Assert(world.SetFloatParameter("friction", 3), qt.IsTrue)
	c.Assert(world.Config().Params.Friction, qt.Equals, 1.0)
	c.Assert(world.SetIntParameter("max_spread", -2), qt.IsTrue)
	c.Assert(world.Config().Params.MaxSpread, qt.Equals, 0)
	c.Assert(world.SetBoolParameter("random_velocity", true), qt.IsTrue)
	c.Assert(world.SetFloatParameter("unknown", 1), qt.IsFalse)

	p, ok := world.Parameters().Lookup("random_velocity")
	c.Assert(ok, qt.IsTrue)
	c.Assert(p.Value, qt.Equals, "true")

	for _, ctrl := range world.ParameterControls() {
		_, ok := world.Parameters().Lookup(ctrl.Key)
		c.Assert(ok, qt.IsTrue, qt.Commentf("control %q has no parameter", ctrl.Key))
	}
}
