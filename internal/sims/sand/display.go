package sand

import "image/color"

// Frame returns one colour per cell, row-major. Vacant cells use the
// configured empty colour. The slice is reused between calls.
func (w *World) Frame() []color.RGBA {
	w.rebuildDisplay()
	return w.frame
}

// Cells returns the material id of every cell, row-major.
func (w *World) Cells() []uint8 {
	w.rebuildDisplay()
	return w.display
}

// ActiveChunks returns one record per chunk telling whether it is scheduled
// for the next tick.
func (w *World) ActiveChunks() []ChunkState {
	w.chunkStates = w.activity.States(w.chunkStates[:0])
	return w.chunkStates
}

// Palette maps the material ids returned by Cells to a representative colour.
func (w *World) Palette() []color.RGBA {
	palette := make([]color.RGBA, materialCount)
	palette[Empty] = w.cfg.EmptyColor
	for _, m := range Materials() {
		if p := w.cfg.Palettes[m]; len(p) > 0 {
			palette[m] = p[0]
		}
	}
	return palette
}

// gradientSteps is the number of colours blended between two keys of a
// cycling palette.
const gradientSteps = 60

// Cycling colours advance one gradient step per tick and shift by
// cycleSpread steps per cell along both axes.
const cycleSpread = 2

func (w *World) rebuildDisplay() {
	if !w.displayDirty {
		return
	}
	shift := int(w.tick % uint64(max(len(w.cycle), 1)))
	for i, p := range w.grid.cells.Cells() {
		switch {
		case p.Material == Empty:
			w.frame[i] = w.cfg.EmptyColor
		case p.Material.Cycles() && len(w.cycle) > 0:
			x, y := i%w.w, i/w.w
			w.frame[i] = w.cycle[(shift+(x+y)*cycleSpread)%len(w.cycle)]
		default:
			w.frame[i] = p.Color
		}
		w.display[i] = uint8(p.Material)
	}
	w.displayDirty = false
}

// gradient expands key colours into a closed loop that blends each key into
// the next, wrapping back to the first.
func gradient(keys []color.RGBA, steps int) []color.RGBA {
	if len(keys) == 0 || steps <= 0 {
		return nil
	}
	out := make([]color.RGBA, 0, len(keys)*steps)
	for i, a := range keys {
		b := keys[(i+1)%len(keys)]
		for s := 0; s < steps; s++ {
			out = append(out, lerpRGBA(a, b, float64(s)/float64(steps)))
		}
	}
	return out
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
