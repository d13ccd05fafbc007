package icon

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// drawWordmark centres text slightly above the middle, surrounds it with a
// layered glow and underlines it with a gradient accent bar.
func drawWordmark(dst *image.NRGBA, size int, text string, fonts *FontChain, p Palette) {
	if text == "" {
		return
	}
	face := fonts.Face(float64(size) * 0.35)
	defer face.Close()

	mask := textMask(face, text)
	mb := mask.Bounds()
	w, h := mb.Dx(), mb.Dy()
	if w == 0 || h == 0 {
		return
	}

	x := (size - w) / 2
	y := (size-h)/2 - int(float64(size)*0.05)
	at := image.Pt(x, y)

	for i, c := range p.Glow {
		r := glowRadius(len(p.Glow)-i, size)
		glow := dilate(mask, r)
		gb := glow.Bounds()
		draw.DrawMask(dst, gb.Add(at), image.NewUniform(c), image.Point{}, glow, gb.Min, draw.Over)
	}
	draw.DrawMask(dst, mb.Add(at), image.NewUniform(p.Text), image.Point{}, mask, mb.Min, draw.Over)

	drawAccent(dst, size, x, y, w, h, p.AccentStart, p.AccentEnd)
}

// glowRadius is 3px per layer step on a 1024 icon, scaled with size and
// never below one pixel.
func glowRadius(step, size int) int {
	r := math.Round(float64(3*step) * float64(size) / 1024)
	return int(math.Max(1, r))
}

// drawAccent draws a bar at 80% of the text width, centred under it, with
// a horizontal gradient from start to end.
func drawAccent(dst *image.NRGBA, size, x, y, w, h int, start, end color.NRGBA) {
	lineY := y + h + int(float64(size)*0.05)
	lineW := int(float64(w) * 0.8)
	lineX := x + (w-lineW)/2
	if lineW <= 0 {
		return
	}
	thick := int(float64(size) * 0.015)
	if thick < 1 {
		thick = 1
	}
	for i := 0; i < lineW; i++ {
		c := lerpColor(start, end, float64(i)/float64(lineW))
		col := image.Rect(lineX+i, lineY, lineX+i+1, lineY+thick)
		draw.Draw(dst, col, image.NewUniform(c), image.Point{}, draw.Src)
	}
}
