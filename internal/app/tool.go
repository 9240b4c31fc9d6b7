package app

import (
	"fmt"
	"image"

	"sandfall/internal/sims/sand"
)

// MaxBrushRadius bounds the brush size.
const MaxBrushRadius = 32

// Tool turns pointer input into edits. While a button is held, successive
// positions are joined by a traced line so fast drags leave no gaps.
type Tool struct {
	Material sand.Material
	Radius   int

	last     image.Point
	dragging bool
	kind     sand.EditKind
}

// NewTool returns a sand brush of radius 2.
func NewTool() *Tool {
	return &Tool{Material: sand.Sand, Radius: 2}
}

// Select switches the painted material. Empty and unknown materials are
// ignored.
func (t *Tool) Select(m sand.Material) {
	if m != sand.Empty && m.Valid() {
		t.Material = m
	}
}

// Grow changes the brush radius by delta, clamped to [0, MaxBrushRadius].
func (t *Tool) Grow(delta int) {
	t.Radius = min(max(t.Radius+delta, 0), MaxBrushRadius)
}

// Stroke returns the edit for the pointer at cell with the given operation.
// The first call of a drag yields a point edit; later calls extend the line
// from the previous cell. Switching operation mid-drag restarts the line.
func (t *Tool) Stroke(cell image.Point, kind sand.EditKind) sand.Edit {
	from := cell
	if t.dragging && t.kind == kind {
		from = t.last
	}
	t.last, t.dragging, t.kind = cell, true, kind
	return sand.Edit{Kind: kind, From: from, To: cell, Radius: t.Radius, Material: t.Material}
}

// Release ends the current drag.
func (t *Tool) Release() {
	t.dragging = false
}

// Footprint returns the cells a stroke at cell would cover.
func (t *Tool) Footprint(cell image.Point) image.Rectangle {
	return image.Rect(cell.X-t.Radius, cell.Y-t.Radius, cell.X+t.Radius+1, cell.Y+t.Radius+1)
}

// String describes the tool for status lines.
func (t *Tool) String() string {
	return fmt.Sprintf("%s r=%d", t.Material, t.Radius)
}
