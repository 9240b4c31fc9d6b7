//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads per-cell colours into a single image and draws it
// scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// BlitFrame uploads one colour per cell and draws the image.
func (gp *GridPainter) BlitFrame(dst *ebiten.Image, frame []color.RGBA, scale int) {
	if len(frame) != gp.w*gp.h {
		return
	}
	fillFrameRGBA(gp.buf, frame)
	gp.draw(dst, scale)
}

// BlitCells maps cell values through palette and draws the image.
func (gp *GridPainter) BlitCells(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
