package main

import (
	"image"
	"time"

	"sandfall/internal/sims/sand"
)

// scenario seeds a freshly reset world.
type scenario struct {
	name  string
	setup func(w *sand.World)
}

var scenarios = []scenario{
	{name: "column", setup: func(w *sand.World) {
		s := w.Size()
		w.Paint(image.Pt(s.W/2, s.H/8), s.W/16, sand.Sand)
	}},
	{name: "hourglass", setup: func(w *sand.World) {
		s := w.Size()
		mid := s.H / 2
		w.PaintLine(image.Pt(0, mid-s.H/4), image.Pt(s.W/2-2, mid), 1, sand.Stone)
		w.PaintLine(image.Pt(s.W-1, mid-s.H/4), image.Pt(s.W/2+2, mid), 1, sand.Stone)
		for y := 2; y < mid-s.H/4; y += 3 {
			w.PaintLine(image.Pt(s.W/4, y), image.Pt(3*s.W/4, y), 1, sand.Sand)
		}
	}},
	{name: "dam-break", setup: func(w *sand.World) {
		s := w.Size()
		w.PaintLine(image.Pt(s.W/3, s.H/3), image.Pt(s.W/3, s.H-1), 1, sand.Stone)
		for y := s.H / 3; y < s.H; y += 2 {
			w.PaintLine(image.Pt(0, y), image.Pt(s.W/3-3, y), 1, sand.Water)
		}
		w.Erase(image.Pt(s.W/3, s.H-3), 2)
	}},
	{name: "sinking", setup: func(w *sand.World) {
		s := w.Size()
		for y := s.H / 2; y < s.H; y += 2 {
			w.PaintLine(image.Pt(0, y), image.Pt(s.W-1, y), 1, sand.Water)
		}
		w.Paint(image.Pt(s.W/2, s.H/4), s.W/10, sand.Sand)
	}},
}

func findScenario(name string) (scenario, bool) {
	for _, sc := range scenarios {
		if sc.name == name {
			return sc, true
		}
	}
	return scenario{}, false
}

type result struct {
	scenario  string
	seed      int64
	particles int
	settledAt int // tick the world went idle, -1 when it never did
	perTick   time.Duration
	err       error
}

// runScenario resets a world built from cfg, seeds it and steps it until it
// goes idle or steps ticks have run. Every tick is validated.
func runScenario(cfg sand.Config, sc scenario, seed int64, steps int) (result, *sand.World) {
	cfg.Seed = seed
	w := sand.NewWithConfig(cfg)
	w.Reset(seed)
	sc.setup(w)

	res := result{scenario: sc.name, seed: seed, particles: w.Grid().Count(), settledAt: -1}
	start := time.Now()
	ticks := 0
	for ticks < steps {
		w.Step()
		ticks++
		if err := w.Validate(); err != nil {
			res.err = err
			break
		}
		if w.Activity().Count() == 0 {
			res.settledAt = ticks
			break
		}
	}
	if ticks > 0 {
		res.perTick = time.Since(start) / time.Duration(ticks)
	}
	return res, w
}
