package icon

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter ellipse.
const kappa = 0.5522847498

// layer is a size×size coverage mask built from filled shapes. Shapes are
// unioned; cut removes coverage.
type layer struct {
	mask *image.Alpha
}

func newLayer(size int) *layer {
	return &layer{mask: image.NewAlpha(image.Rect(0, 0, size, size))}
}

func (l *layer) rasterizer() *vector.Rasterizer {
	b := l.mask.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func (l *layer) fill(z *vector.Rasterizer) {
	z.ClosePath()
	z.Draw(l.mask, l.mask.Bounds(), image.Opaque, image.Point{})
}

func (l *layer) rect(x0, y0, x1, y1 float64) {
	l.polygon([2]float64{x0, y0}, [2]float64{x1, y0}, [2]float64{x1, y1}, [2]float64{x0, y1})
}

func (l *layer) polygon(pts ...[2]float64) {
	if len(pts) < 3 {
		return
	}
	z := l.rasterizer()
	z.MoveTo(float32(pts[0][0]), float32(pts[0][1]))
	for _, p := range pts[1:] {
		z.LineTo(float32(p[0]), float32(p[1]))
	}
	l.fill(z)
}

// ellipse fills the ellipse inscribed in the box (x0,y0)-(x1,y1).
func (l *layer) ellipse(x0, y0, x1, y1 float64) {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	if rx <= 0 || ry <= 0 {
		return
	}
	kx, ky := rx*kappa, ry*kappa
	f := func(v float64) float32 { return float32(v) }

	z := l.rasterizer()
	z.MoveTo(f(cx+rx), f(cy))
	z.CubeTo(f(cx+rx), f(cy+ky), f(cx+kx), f(cy+ry), f(cx), f(cy+ry))
	z.CubeTo(f(cx-kx), f(cy+ry), f(cx-rx), f(cy+ky), f(cx-rx), f(cy))
	z.CubeTo(f(cx-rx), f(cy-ky), f(cx-kx), f(cy-ry), f(cx), f(cy-ry))
	z.CubeTo(f(cx+kx), f(cy-ry), f(cx+rx), f(cy-ky), f(cx+rx), f(cy))
	l.fill(z)
}

// cut removes other's coverage from l. Both layers must be the same size.
func (l *layer) cut(other *layer) {
	for i, a := range other.mask.Pix {
		if a == 0 {
			continue
		}
		l.mask.Pix[i] = uint8(uint32(l.mask.Pix[i]) * (255 - uint32(a)) / 255)
	}
}

// paint composites c through l onto dst.
func (l *layer) paint(dst *image.NRGBA, c color.NRGBA) {
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, l.mask, dst.Bounds().Min, draw.Over)
}

// textMask renders s with face into a tightly cropped coverage mask,
// scaled by face.Scale.
func textMask(face Face, s string) *image.Alpha {
	bounds, _ := font.BoundString(face, s)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if w <= 0 || h <= 0 {
		return image.NewAlpha(image.Rect(0, 0, 0, 0))
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
	}
	d.DrawString(s)

	if face.Scale == 1 {
		return mask
	}
	sw := int(math.Max(1, math.Round(float64(w)*face.Scale)))
	sh := int(math.Max(1, math.Round(float64(h)*face.Scale)))
	scaled := image.NewAlpha(image.Rect(0, 0, sw, sh))
	xdraw.BiLinear.Scale(scaled, scaled.Bounds(), mask, mask.Bounds(), xdraw.Src, nil)
	return scaled
}

// dilate grows mask by a disc of radius r. The result's bounds extend r
// pixels past mask's on every side.
func dilate(mask *image.Alpha, r int) *image.Alpha {
	b := mask.Bounds()
	out := image.NewAlpha(b.Inset(-r))
	if r <= 0 {
		draw.Draw(out, b, mask, b.Min, draw.Src)
		return out
	}

	var disc []image.Point
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				disc = append(disc, image.Point{dx, dy})
			}
		}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			for _, d := range disc {
				i := out.PixOffset(x+d.X, y+d.Y)
				if out.Pix[i] < a {
					out.Pix[i] = a
				}
			}
		}
	}
	return out
}
