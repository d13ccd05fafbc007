package icon

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Gradient returns a size×size image filled with a vertical gradient from
// top (first row) to bottom (last row). Both endpoints are hit exactly for
// size >= 2.
func Gradient(size int, top, bottom color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		t := 0.0
		if size > 1 {
			t = float64(y) / float64(size-1)
		}
		row := image.Rect(0, y, size, y+1)
		draw.Draw(img, row, image.NewUniform(lerpColor(top, bottom, t)), image.Point{}, draw.Src)
	}
	return img
}

// lerpColor interpolates each channel of a towards b by t in [0, 1].
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerp8(a.R, b.R, t),
		G: lerp8(a.G, b.G, t),
		B: lerp8(a.B, b.B, t),
		A: lerp8(a.A, b.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// drawGrid overlays lines every size/10 pixels. Lines at the image edges
// are left out.
func drawGrid(dst *image.NRGBA, size int, c color.NRGBA) {
	spacing := size / 10
	if spacing < 1 {
		return
	}
	src := image.NewUniform(c)
	for i := spacing; i < size; i += spacing {
		draw.Draw(dst, image.Rect(i, 0, i+1, size), src, image.Point{}, draw.Over)
		draw.Draw(dst, image.Rect(0, i, size, i+1), src, image.Point{}, draw.Over)
	}
}
