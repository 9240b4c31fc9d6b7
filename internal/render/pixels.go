package render

import "image/color"

// fillFrameRGBA copies one colour per cell into buf as packed RGBA bytes.
func fillFrameRGBA(buf []byte, frame []color.RGBA) {
	for i, col := range frame {
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FrameBytes converts a colour frame into a freshly allocated RGBA byte
// slice, the layout expected by image.RGBA and ebiten.Image.WritePixels.
func FrameBytes(frame []color.RGBA) []byte {
	buf := make([]byte, 4*len(frame))
	fillFrameRGBA(buf, frame)
	return buf
}
