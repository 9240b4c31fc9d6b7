package sand

import (
	"image"

	"sandfall/internal/core"
)

// ActivityMap tracks which chunks need simulating. Marks made during a tick
// (by motion or edits) land in the pending layer; advance promotes them to
// the current layer processed by the next tick.
type ActivityMap struct {
	chunk  int
	cw, ch int
	curr   *core.Grid[bool]
	next   *core.Grid[bool]
}

// ChunkState is one record of the activity readback.
type ChunkState struct {
	X, Y   int
	Active bool
}

func newActivityMap(w, h, chunk int) *ActivityMap {
	cw := (w + chunk - 1) / chunk
	ch := (h + chunk - 1) / chunk
	return &ActivityMap{
		chunk: chunk,
		cw:    cw,
		ch:    ch,
		curr:  core.NewGrid[bool](cw, ch),
		next:  core.NewGrid[bool](cw, ch),
	}
}

// ChunkSize returns the chunk edge length in cells.
func (a *ActivityMap) ChunkSize() int { return a.chunk }

// Size returns the chunk grid dimensions.
func (a *ActivityMap) Size() (int, int) { return a.cw, a.ch }

// ChunkOf converts cell coordinates to chunk coordinates.
func (a *ActivityMap) ChunkOf(x, y int) (int, int) {
	return x / a.chunk, y / a.chunk
}

// ChunkRect returns the cell rectangle covered by chunk (cx, cy).
func (a *ActivityMap) ChunkRect(cx, cy int) image.Rectangle {
	x0, y0 := cx*a.chunk, cy*a.chunk
	return image.Rect(x0, y0, x0+a.chunk, y0+a.chunk)
}

// Active reports whether chunk (cx, cy) is scheduled for the next tick.
func (a *ActivityMap) Active(cx, cy int) bool {
	return a.next.At(cx, cy)
}

// Current reports whether chunk (cx, cy) is processed by the running tick.
func (a *ActivityMap) Current(cx, cy int) bool {
	return a.curr.At(cx, cy)
}

// MarkChunk schedules chunk (cx, cy).
func (a *ActivityMap) MarkChunk(cx, cy int) {
	a.next.Set(cx, cy, true)
}

// MarkCell schedules the chunk containing cell (x, y).
func (a *ActivityMap) MarkCell(x, y int) {
	a.next.Set(x/a.chunk, y/a.chunk, true)
}

// MarkHalo schedules every chunk touched by the 3x3 neighbourhood of (x, y),
// so motion on a chunk border wakes the neighbouring chunk too.
func (a *ActivityMap) MarkHalo(x, y int) {
	cx0, cy0 := a.clampChunk((x-1)/a.chunk, (y-1)/a.chunk)
	cx1, cy1 := a.clampChunk((x+1)/a.chunk, (y+1)/a.chunk)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			a.next.Set(cx, cy, true)
		}
	}
}

// Count returns the number of chunks scheduled for the next tick.
func (a *ActivityMap) Count() int {
	return countTrue(a.next.Cells())
}

// States appends one record per chunk to buf, row-major, reflecting the
// pending layer.
func (a *ActivityMap) States(buf []ChunkState) []ChunkState {
	for cy := 0; cy < a.ch; cy++ {
		for cx := 0; cx < a.cw; cx++ {
			buf = append(buf, ChunkState{X: cx, Y: cy, Active: a.next.At(cx, cy)})
		}
	}
	return buf
}

// advance promotes pending marks to the current layer and returns how many
// chunks the tick will process.
func (a *ActivityMap) advance() int {
	a.curr, a.next = a.next, a.curr
	a.next.Clear()
	return countTrue(a.curr.Cells())
}

func (a *ActivityMap) reset() {
	a.curr.Clear()
	a.next.Clear()
}

func (a *ActivityMap) clampChunk(cx, cy int) (int, int) {
	return min(max(cx, 0), a.cw-1), min(max(cy, 0), a.ch-1)
}

func countTrue(cells []bool) int {
	n := 0
	for _, v := range cells {
		if v {
			n++
		}
	}
	return n
}
