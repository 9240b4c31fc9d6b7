package core

import "image"

// TraceLine appends to buf the integer cells on the straight segment from
// (x0, y0) to (x1, y1) and returns the extended slice. The first cell is
// always the start and the last always the end; consecutive cells are
// 8-connected. Pass buf[:0] to reuse a buffer across calls.
func TraceLine(buf []image.Point, x0, y0, x1, y1 int) []image.Point {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		buf = append(buf, image.Pt(x0, y0))
		if x0 == x1 && y0 == y1 {
			return buf
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
