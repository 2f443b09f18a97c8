package render

import (
	"image"
	"image/color"
	"math"
)

// Canvas is a flat RGBA wireframe target.
type Canvas struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA interleaved, len = W*H*4
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{Width: w, Height: h, Pix: make([]uint8, w*h*4)}
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col color.NRGBA) {
	for i := 0; i < len(c.Pix); i += 4 {
		c.Pix[i] = col.R
		c.Pix[i+1] = col.G
		c.Pix[i+2] = col.B
		c.Pix[i+3] = col.A
	}
}

// SetPixel writes one pixel. Out-of-bounds writes are dropped.
func (c *Canvas) SetPixel(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	i := (y*c.Width + x) * 4
	c.Pix[i] = col.R
	c.Pix[i+1] = col.G
	c.Pix[i+2] = col.B
	c.Pix[i+3] = col.A
}

// Line draws a straight line between two canvas positions with a DDA walk.
func (c *Canvas) Line(x0, y0, x1, y1 float64, col color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)
		c.SetPixel(int(math.Round(x0+f*dx)), int(math.Round(y0+f*dy)), col)
	}
}

// Image copies the canvas into an NRGBA image.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	copy(img.Pix, c.Pix)
	return img
}
