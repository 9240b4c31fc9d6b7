package sand

import (
	"gopkg.in/errgo.v1"
)

// Validate walks the grid and reports the first particle that is out of
// place, or a mismatch between the occupied cells and the particle count.
func (w *World) Validate() error {
	n := 0
	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			p := w.grid.ref(x, y)
			if p.Material == Empty {
				continue
			}
			if !p.Material.Valid() {
				return errgo.Newf("cell (%d,%d) holds unknown material %d", x, y, p.Material)
			}
			if cx, cy := p.Cell(); cx != x || cy != y {
				return errgo.Newf("particle in cell (%d,%d) is positioned at (%.3f,%.3f) which rounds to (%d,%d)", x, y, p.X, p.Y, cx, cy)
			}
			n++
		}
	}
	if n != w.count {
		return errgo.Newf("grid holds %d particles, world counts %d", n, w.count)
	}
	return nil
}
