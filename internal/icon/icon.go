// Package icon draws the app icon procedurally at any pixel size: a
// vertical gradient, an optional grid and either a font-rendered wordmark
// or hand-composed letterforms. Nothing is loaded from disk except the
// optional wordmark fonts.
package icon

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Style selects the glyph layer drawn over the background.
type Style string

const (
	StyleWordmark    Style = "wordmark"
	StyleLetterforms Style = "letterforms"
)

// Palette holds every color used by the composition.
type Palette struct {
	Top, Bottom color.NRGBA // gradient endpoints
	Grid        color.NRGBA
	Text        color.NRGBA
	Glow        []color.NRGBA // outermost layer first
	AccentStart color.NRGBA
	AccentEnd   color.NRGBA
	T, E, N, X  color.NRGBA // letterform fills
}

// DefaultPalette is dark blue to purple with cyan highlights.
func DefaultPalette() Palette {
	return Palette{
		Top:    color.NRGBA{10, 25, 41, 255},
		Bottom: color.NRGBA{26, 10, 41, 255},
		Grid:   color.NRGBA{255, 255, 255, 20},
		Text:   color.NRGBA{255, 255, 255, 255},
		Glow: []color.NRGBA{
			{0, 255, 255, 30},
			{0, 200, 255, 50},
			{0, 150, 255, 70},
		},
		AccentStart: color.NRGBA{0, 255, 255, 255},
		AccentEnd:   color.NRGBA{100, 155, 255, 255},
		T:           color.NRGBA{0, 220, 255, 255},
		E:           color.NRGBA{100, 200, 255, 255},
		N:           color.NRGBA{150, 100, 255, 255},
		X:           color.NRGBA{255, 100, 200, 255},
	}
}

// Options describes one icon composition independent of its size.
type Options struct {
	Style   Style
	Text    string   // wordmark text
	Grid    bool     // overlay a translucent grid
	Fonts   []string // wordmark font files, tried in order
	Palette Palette
}

// DefaultOptions returns the wordmark composition with the default palette
// and no font candidates (the built-in face is used).
func DefaultOptions() Options {
	return Options{
		Style:   StyleWordmark,
		Text:    "10X",
		Grid:    true,
		Palette: DefaultPalette(),
	}
}

// Renderer draws icons for one set of Options. Font files are parsed once
// and reused for every size.
type Renderer struct {
	opts  Options
	fonts *FontChain
}

// NewRenderer returns a Renderer for opts.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts, fonts: NewFontChain(opts.Fonts)}
}

// FontSource reports which font the wordmark was drawn with: a font file
// path, or "builtin" when every candidate failed. Empty until the first
// wordmark render.
func (r *Renderer) FontSource() string {
	return r.fonts.Source()
}

// Render draws a size×size icon.
func (r *Renderer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon: size %d is not positive", size)
	}
	p := r.opts.Palette
	img := Gradient(size, p.Top, p.Bottom)

	// Decorations never touch the outermost rows or columns, so the
	// gradient endpoints stay intact at every size.
	canvas := inset(img)
	if canvas == nil {
		return img, nil
	}

	if r.opts.Grid {
		drawGrid(canvas, size, p.Grid)
	}

	switch r.opts.Style {
	case StyleLetterforms:
		drawLetterforms(canvas, size, p)
	case StyleWordmark, "":
		drawWordmark(canvas, size, r.opts.Text, r.fonts, p)
	default:
		return nil, fmt.Errorf("icon: unknown style %q", r.opts.Style)
	}
	return img, nil
}

// Resample scales a rendered master down to size. Only the interior is
// scaled; the one-pixel frame is the plain gradient, as in Render.
func (r *Renderer) Resample(master *image.NRGBA, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon: size %d is not positive", size)
	}
	p := r.opts.Palette
	img := Gradient(size, p.Top, p.Bottom)
	dst, src := inset(img), inset(master)
	if dst == nil || src == nil {
		return img, nil
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return img, nil
}

// inset returns the sub-image one pixel in from every edge, or nil when
// the image is too small to have an interior.
func inset(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds().Inset(1)
	if b.Empty() {
		return nil
	}
	return img.SubImage(b).(*image.NRGBA)
}
