//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"

	"sandfall/internal/core"
	"sandfall/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type chunkProvider interface {
	ActiveChunks() []sand.ChunkState
	Activity() *sand.ActivityMap
}

// Overlay draws optional debugging visuals on top of the base simulation:
// the outlines of active chunks and the brush footprint under the cursor.
type Overlay struct {
	sim        core.Sim
	scale      int
	showChunks bool
	showIdle   bool

	brush     image.Rectangle
	showBrush bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showChunks = !o.showChunks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.showIdle = !o.showIdle
	}
}

// SetBrush outlines the cells an edit at the cursor would touch. An empty
// rectangle hides the outline.
func (o *Overlay) SetBrush(r image.Rectangle) {
	o.brush = r
	o.showBrush = !r.Empty()
}

// ShowingChunks reports whether the chunk layer is visible.
func (o *Overlay) ShowingChunks() bool { return o.showChunks }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := float64(max(o.scale, 1))
	if o.showChunks {
		if provider, ok := o.sim.(chunkProvider); ok {
			o.drawChunks(screen, provider, scale)
		}
	}
	if o.showBrush {
		o.drawRect(screen, o.brush, scale, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 160})
	}
}

func (o *Overlay) drawChunks(screen *ebiten.Image, provider chunkProvider, scale float64) {
	activity := provider.Activity()
	thickness := math.Max(1, scale*0.5)
	for _, s := range provider.ActiveChunks() {
		r := activity.ChunkRect(s.X, s.Y)
		switch {
		case s.Active:
			o.fillRect(screen, r, scale, color.NRGBA{R: 255, G: 60, B: 60, A: 28})
			o.drawRect(screen, r, scale, thickness, color.NRGBA{R: 255, G: 80, B: 80, A: 200})
		case o.showIdle:
			o.drawRect(screen, r, scale, 1, color.NRGBA{R: 80, G: 120, B: 160, A: 90})
		}
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, r image.Rectangle, scale, thickness float64, col color.Color) {
	x0, y0 := float64(r.Min.X)*scale, float64(r.Min.Y)*scale
	x1, y1 := float64(r.Max.X)*scale, float64(r.Max.Y)*scale
	half := thickness / 2
	o.drawLine(screen, x0, y0+half, x1, y0+half, thickness, col)
	o.drawLine(screen, x0, y1-half, x1, y1-half, thickness, col)
	o.drawLine(screen, x0+half, y0, x0+half, y1, thickness, col)
	o.drawLine(screen, x1-half, y0, x1-half, y1, thickness, col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, r image.Rectangle, scale float64, col color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())*scale, float64(r.Dy())*scale)
	op.GeoM.Translate(float64(r.Min.X)*scale, float64(r.Min.Y)*scale)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.Color) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
