package sand

import (
	"image"

	"sandfall/internal/core"
)

// EditKind selects the operation carried by an Edit.
type EditKind uint8

const (
	// EditPaint fills empty cells with a material.
	EditPaint EditKind = iota
	// EditErase removes every particle in the brush.
	EditErase
)

// Edit is a deferred paint or erase request. When From and To differ the
// brush is applied at every cell of the traced line between them.
type Edit struct {
	Kind     EditKind
	From, To image.Point
	Radius   int
	Material Material
}

// Spawner paints its material around At every Interval ticks.
type Spawner struct {
	At       image.Point
	Radius   int
	Material Material
	Interval int
}

// Queue buffers an edit to be applied after the next rule pass.
func (w *World) Queue(e Edit) {
	w.pending = append(w.pending, e)
}

// Apply performs an edit immediately and returns the number of cells it
// changed.
func (w *World) Apply(e Edit) int {
	switch e.Kind {
	case EditPaint:
		return w.PaintLine(e.From, e.To, e.Radius, e.Material)
	case EditErase:
		return w.EraseLine(e.From, e.To, e.Radius)
	}
	return 0
}

func (w *World) applyPending() {
	for _, e := range w.pending {
		w.Apply(e)
	}
	w.pending = w.pending[:0]
}

// Paint fills the empty cells of the square of side 2*radius+1 centred on
// center with new particles of material m. Occupied cells are left alone.
// It returns the number of particles created.
func (w *World) Paint(center image.Point, radius int, m Material) int {
	if !m.Valid() || m == Empty {
		return 0
	}
	radius = max(radius, 0)
	prm := &w.cfg.Params
	var vx, vy float64
	if prm.RandomVelocity {
		vx = float64(w.rng.Range(-prm.RandomVelocityMax, prm.RandomVelocityMax))
		vy = float64(w.rng.Range(-prm.RandomVelocityMax, prm.RandomVelocityMax))
	}
	density := prm.PaintDensity
	if m.Static() {
		density = 1
	}
	palette := w.cfg.Palettes[m]

	created := 0
	r := w.brush(center, radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if w.grid.Material(x, y) != Empty || !w.rng.Chance(density) {
				continue
			}
			p := Particle{Material: m, VX: vx, VY: vy}
			p.snap(x, y)
			if len(palette) > 0 {
				p.Color = palette[w.rng.IntN(len(palette))]
			}
			w.grid.Set(x, y, p)
			w.activity.MarkCell(x, y)
			created++
		}
	}
	w.count += created
	if created > 0 {
		w.displayDirty = true
	}
	return created
}

// Erase removes every particle in the square of side 2*radius+1 centred on
// center. Every chunk the brush touches is marked active, even when nothing
// was removed. It returns the number of particles removed.
func (w *World) Erase(center image.Point, radius int) int {
	radius = max(radius, 0)
	removed := 0
	r := w.brush(center, radius)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			w.activity.MarkCell(x, y)
			if _, ok := w.grid.Take(x, y); !ok {
				continue
			}
			w.vacated(x, y)
			removed++
		}
	}
	w.count -= removed
	if removed > 0 {
		w.displayDirty = true
	}
	return removed
}

// PaintLine applies Paint at every cell on the line from a to b.
func (w *World) PaintLine(a, b image.Point, radius int, m Material) int {
	n := 0
	for _, c := range w.traceEdit(a, b) {
		n += w.Paint(c, radius, m)
	}
	return n
}

// EraseLine applies Erase at every cell on the line from a to b.
func (w *World) EraseLine(a, b image.Point, radius int) int {
	n := 0
	for _, c := range w.traceEdit(a, b) {
		n += w.Erase(c, radius)
	}
	return n
}

// AddSpawner registers an emitter. An Interval below one fires every tick.
func (w *World) AddSpawner(s Spawner) {
	s.Interval = max(s.Interval, 1)
	w.spawners = append(w.spawners, s)
	core.Logger().Info("sand spawner added", "x", s.At.X, "y", s.At.Y, "material", s.Material.String(), "interval", s.Interval)
}

// RemoveSpawners drops every registered emitter.
func (w *World) RemoveSpawners() {
	w.spawners = w.spawners[:0]
}

// Spawners returns a copy of the registered emitters.
func (w *World) Spawners() []Spawner {
	return append([]Spawner(nil), w.spawners...)
}

func (w *World) runSpawners() {
	for _, s := range w.spawners {
		if w.tick%uint64(s.Interval) == 0 {
			w.Paint(s.At, s.Radius, s.Material)
		}
	}
}

// brush clamps the square neighbourhood of center to the grid.
func (w *World) brush(center image.Point, radius int) image.Rectangle {
	r := image.Rect(center.X-radius, center.Y-radius, center.X+radius+1, center.Y+radius+1)
	return r.Intersect(image.Rect(0, 0, w.w, w.h))
}

// traceEdit returns the cells between a and b. The returned slice aliases an
// internal buffer.
func (w *World) traceEdit(a, b image.Point) []image.Point {
	w.editPath = core.TraceLine(w.editPath[:0], a.X, a.Y, b.X, b.Y)
	return w.editPath
}
