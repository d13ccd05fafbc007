package icon

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// BuiltinSource names the fallback face in FontSource reports.
const BuiltinSource = "builtin"

// Built-in face text is drawn at 0.2×size where a real font gets 0.35×size.
const builtinShrink = 0.2 / 0.35

// FontChain resolves the wordmark face: the first candidate file that
// parses wins, and the built-in bitmap face is used when none does.
// Resolution never fails.
type FontChain struct {
	candidates []string
	loaded     bool
	font       *opentype.Font
	source     string
}

// NewFontChain returns a chain over the given font files (.ttf, .otf, or
// .ttc/.otc collections, whose first font is used).
func NewFontChain(candidates []string) *FontChain {
	return &FontChain{candidates: candidates}
}

// Face is a font face plus the factor its rendered glyphs must be scaled
// by to reach the requested size. Only the built-in bitmap face has a
// Scale other than 1.
type Face struct {
	font.Face
	Source string
	Scale  float64
}

// Face returns a face for text px pixels high.
func (c *FontChain) Face(px float64) Face {
	c.load()
	if c.font != nil {
		f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
			Size:    px,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err == nil {
			return Face{Face: f, Source: c.source, Scale: 1}
		}
	}
	h := float64(basicfont.Face7x13.Height)
	return Face{Face: basicfont.Face7x13, Source: BuiltinSource, Scale: px * builtinShrink / h}
}

// Source reports the winning candidate, BuiltinSource, or "" before the
// first call to Face.
func (c *FontChain) Source() string {
	return c.source
}

func (c *FontChain) load() {
	if c.loaded {
		return
	}
	c.loaded = true
	for _, p := range c.candidates {
		f, err := parseFont(p)
		if err != nil {
			continue
		}
		c.font = f
		c.source = p
		return
	}
	c.source = BuiltinSource
}

func parseFont(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttc", ".otc":
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		return coll.Font(0)
	default:
		return opentype.Parse(data)
	}
}
