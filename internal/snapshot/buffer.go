// Package snapshot renders a schematic anterior view of a resolved
// scene: one filled disc per structure at its projected center,
// colored by type, alpha taken from the visibility opacity target.
// A diagnostics surface, not the product renderer.
package snapshot

import "image"

// Canvas is the compositing target as a flat NRGBA slice.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, non-premultiplied, len = W*H*4
}

// NewCanvas allocates a fully transparent canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
	}
}

// Blend composites one non-premultiplied pixel over the canvas
// (source-over).
func (c *Canvas) Blend(x, y int, r, g, b uint8, a float64) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height || a <= 0 {
		return
	}
	if a > 1 {
		a = 1
	}
	i := (y*c.Width + x) * 4
	da := float64(c.Pix[i+3]) / 255.0
	outA := a + da*(1-a)
	if outA <= 0 {
		return
	}
	blend := func(s uint8, d uint8) uint8 {
		v := (float64(s)*a + float64(d)*da*(1-a)) / outA
		if v > 255 {
			v = 255
		}
		return uint8(v + 0.5)
	}
	c.Pix[i] = blend(r, c.Pix[i])
	c.Pix[i+1] = blend(g, c.Pix[i+1])
	c.Pix[i+2] = blend(b, c.Pix[i+2])
	c.Pix[i+3] = uint8(outA*255 + 0.5)
}

// Image wraps the canvas as an *image.NRGBA sharing the pixel slice.
func (c *Canvas) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    c.Pix,
		Stride: c.Width * 4,
		Rect:   image.Rect(0, 0, c.Width, c.Height),
	}
}
