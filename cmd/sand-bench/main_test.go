package main

import (
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"sandfall/internal/sims/sand"
)

func TestScenariosKeepInvariants(t *testing.T) {
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			c := qt.New(t)
			res, w := runScenario(cfg, sc, 5, 150)
			c.Assert(res.err, qt.IsNil)
			c.Assert(res.particles > 0, qt.IsTrue)
			c.Assert(w.Grid().Count(), qt.Equals, res.particles)
		})
	}
}

func TestSelectScenarios(t *testing.T) {
	c := qt.New(t)
	all, err := selectScenarios("")
	c.Assert(err, qt.IsNil)
	c.Assert(all, qt.HasLen, len(scenarios))

	some, err := selectScenarios("column, sinking")
	c.Assert(err, qt.IsNil)
	c.Assert(some, qt.HasLen, 2)
	c.Assert(some[1].name, qt.Equals, "sinking")

	_, err = selectScenarios("lava")
	c.Assert(err, qt.ErrorMatches, `unknown scenario "lava"`)
}

func TestWritePNG(t *testing.T) {
	c := qt.New(t)
	cfg := sand.DefaultConfig()
	cfg.Width, cfg.Height = 32, 32
	_, w := runScenario(cfg, scenarios[0], 1, 10)
	c.Assert(writePNG(filepath.Join(c.TempDir(), "frame.png"), w), qt.IsNil)
}
