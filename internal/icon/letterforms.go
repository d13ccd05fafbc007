package icon

import "image"

// designSize is the grid the letterform coordinates are laid out on.
const designSize = 1024

// drawLetterforms spells "TenX" with rectangles, ellipses and polygons
// instead of a font. Counters and the bar through the "e" are cut out of
// the letter masks so the background shows through them.
func drawLetterforms(dst *image.NRGBA, size int, p Palette) {
	s := float64(size) / designSize
	cx, cy := float64(size)/2, float64(size)/2

	// T: top bar and centred stem.
	t := newLayer(size)
	tW, tH, stem := 250*s, 400*s, 80*s
	tx, ty := cx-350*s, cy-tH/2
	t.rect(tx, ty, tx+tW, ty+80*s)
	sx := tx + (tW-stem)/2
	t.rect(sx, ty, sx+stem, ty+tH)
	t.paint(dst, p.T)

	// e: ring with a horizontal slot.
	e := newLayer(size)
	er, eThick := 120*s, 60*s
	ex, ey := cx-100*s, cy+50*s
	e.ellipse(ex-er, ey-er, ex+er, ey+er)
	hole := newLayer(size)
	ir := er - eThick
	hole.ellipse(ex-ir, ey-ir, ex+ir, ey+ir)
	hole.rect(ex-er, ey-30*s, ex+er, ey+10*s)
	e.cut(hole)
	e.paint(dst, p.E)

	// n: two stems joined by an arch.
	n := newLayer(size)
	nH, nW, nThick := 250*s, 200*s, 70*s
	nx, ny := cx+80*s, cy+50*s
	n.rect(nx, ny-nH/2, nx+nThick, ny+nH/2)
	n.rect(nx+nW-nThick, ny-nH/2, nx+nW, ny+nH/2)
	n.ellipse(nx, ny-nH/2-50*s, nx+nW, ny+50*s)
	counter := newLayer(size)
	counter.ellipse(nx+nThick, ny-nH/2, nx+nW-nThick, ny)
	n.cut(counter)
	n.paint(dst, p.N)

	// X: two crossing diagonal strokes.
	x := newLayer(size)
	xs, xThick := 300*s, 80*s
	xx, xy := cx+350*s, cy
	x.polygon(
		[2]float64{xx - xs/2, xy - xs/2},
		[2]float64{xx - xs/2 + xThick, xy - xs/2},
		[2]float64{xx + xs/2, xy + xs/2},
		[2]float64{xx + xs/2 - xThick, xy + xs/2},
	)
	x.polygon(
		[2]float64{xx + xs/2, xy - xs/2},
		[2]float64{xx + xs/2 - xThick, xy - xs/2},
		[2]float64{xx - xs/2, xy + xs/2},
		[2]float64{xx - xs/2 + xThick, xy + xs/2},
	)
	x.paint(dst, p.X)
}
