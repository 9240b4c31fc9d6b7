//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"sandfall/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBg   = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textHi    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textLo    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonBg  = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD is the side panel: material swatches, physics knobs and status text.
type HUD struct {
	sim   core.Sim
	width int
	panel *ebiten.Image
	pixel *ebiten.Image

	swatches []Swatch
	swatchAt []image.Rectangle
	selected int
	knobs    []knob
	statusY  int
	status   []string
	offsetX  int
}

// NewHUD builds a panel of the given width for sim. Knobs are taken from the
// simulation's parameter controls when it exposes any.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.knobs = newKnobs(p.ParameterControls())
	}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.relayout()
	return h
}

// SetSwatches replaces the material buttons.
func (h *HUD) SetSwatches(s []Swatch) {
	h.swatches = append(h.swatches[:0], s...)
	h.relayout()
}

// Select highlights swatch i.
func (h *HUD) Select(i int) { h.selected = i }

// SetStatus replaces the lines drawn under the knobs.
func (h *HUD) SetStatus(lines ...string) {
	h.status = append(h.status[:0], lines...)
}

// Update refreshes the knob values and handles clicks inside the panel. It
// returns the index of a swatch clicked this frame, or -1.
func (h *HUD) Update(offsetX int) int {
	h.offsetX = offsetX
	if p, ok := h.sim.(interface {
		Parameters() core.ParameterSnapshot
	}); ok {
		snap := p.Parameters()
		for i := range h.knobs {
			h.knobs[i].sync(snap)
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return -1
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-offsetX, my)
	if pt.X < 0 {
		return -1
	}
	if i := hitSwatch(pt, h.swatchAt); i >= 0 {
		h.selected = i
		return i
	}
	if i, dir := hitKnob(pt, h.knobs); i >= 0 {
		k := &h.knobs[i]
		if target, ok := k.step(dir); ok {
			k.commit(h.sim, target)
		}
	}
	return -1
}

// Draw paints the panel at offsetX, sized to the scaled simulation height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale int) {
	if h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, "sandfall", face, padding, padding+titleHeight/2, textHi)

	if len(h.swatchAt) > 0 {
		text.Draw(h.panel, "materials", face, padding, h.swatchAt[0].Min.Y-6, textLo)
	}
	for i, r := range h.swatchAt {
		if i == h.selected {
			h.fill(r.Inset(-2), textHi)
		}
		h.fill(r, h.swatches[i].Color)
	}

	for i := range h.knobs {
		k := &h.knobs[i]
		if i == 0 {
			text.Draw(h.panel, "physics", face, padding, k.top-6, textLo)
		}
		base := k.top + rowHeight/2 + 4
		text.Draw(h.panel, k.ctrl.Label, face, padding, base, textHi)
		value := k.text()
		vx := k.minus.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, vx, base, textHi)
		_, canDown := k.step(-1)
		_, canUp := k.step(1)
		h.button(k.minus, "-", canDown)
		h.button(k.plus, "+", canUp)
	}

	for i, line := range h.status {
		text.Draw(h.panel, line, face, padding, h.statusY+i*statusHeight, textLo)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) relayout() {
	h.swatchAt, h.statusY = layout(h.width, len(h.swatches), h.knobs)
}

func (h *HUD) button(r image.Rectangle, label string, enabled bool) {
	fg := textHi
	bg := buttonBg
	if !enabled {
		fg, bg = textLo, buttonOff
	}
	h.fill(r, bg)
	b := text.BoundString(basicfont.Face7x13, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()+b.Dy())/2
	text.Draw(h.panel, label, basicfont.Face7x13, x, y, fg)
}

func (h *HUD) fill(r image.Rectangle, c color.Color) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}
