// Package appicon writes the rendered icon set to disk: one PNG per pixel
// size plus the asset catalog manifest that maps them to device slots.
package appicon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"github.com/opsbrain/tenx-tools/internal/icon"
	"github.com/opsbrain/tenx-tools/internal/paths"
)

// MasterSize is the App Store marketing icon size, also used as the source
// when resampling.
const MasterSize = 1024

// MasterFileName is the full-size copy written alongside the size set.
const MasterFileName = "AppIcon-1024x1024.png"

// FileName returns the PNG name for one pixel size.
func FileName(size int) string {
	if size == MasterSize {
		return fmt.Sprintf("AppIcon-%d.png", size)
	}
	return fmt.Sprintf("AppIcon-%dx%d.png", size, size)
}

// Options controls what Generate writes besides the requested sizes.
type Options struct {
	Master       bool // also write MasterFileName
	Resample     bool // scale sizes below MasterSize down from one master render
	ContentsJSON bool // write Contents.json
}

// Artifact is one file written by Generate.
type Artifact struct {
	Size  int // pixel size, 0 for Contents.json
	Path  string
	Bytes int
}

// Generate renders every size with r and writes the files into dir,
// creating it if needed. Progress lines go to out, which may be nil.
// Writing stops at the first error.
func Generate(dir string, sizes []int, r *icon.Renderer, opts Options, out io.Writer) ([]Artifact, error) {
	if out == nil {
		out = io.Discard
	}

	var master *image.NRGBA
	masterImage := func() (*image.NRGBA, error) {
		if master == nil {
			img, err := r.Render(MasterSize)
			if err != nil {
				return nil, err
			}
			master = img
		}
		return master, nil
	}

	var artifacts []Artifact
	for _, size := range sizes {
		fmt.Fprintf(out, "Creating %dx%d icon...\n", size, size)

		var img image.Image
		var err error
		switch {
		case size == MasterSize:
			img, err = masterImage()
		case opts.Resample && size < MasterSize:
			var m *image.NRGBA
			m, err = masterImage()
			if err == nil {
				img, err = r.Resample(m, size)
			}
		default:
			img, err = r.Render(size)
		}
		if err != nil {
			return artifacts, fmt.Errorf("render %d: %w", size, err)
		}

		a, err := writePNG(filepath.Join(dir, FileName(size)), size, img)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, a)
	}

	if opts.Master {
		m, err := masterImage()
		if err != nil {
			return artifacts, fmt.Errorf("render master: %w", err)
		}
		a, err := writePNG(filepath.Join(dir, MasterFileName), MasterSize, m)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, a)
	}

	if opts.ContentsJSON {
		a, err := writeContents(dir, sizes, opts.Master)
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

func writePNG(path string, size int, img image.Image) (Artifact, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Artifact{}, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := paths.AtomicWrite(path, buf.Bytes()); err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", path, err)
	}
	return Artifact{Size: size, Path: path, Bytes: buf.Len()}, nil
}
