package pbxproj

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/opsbrain/tenx-tools/internal/paths"
)

// Options describes one generation run.
type Options struct {
	Root      string   // directory scanned for sources; the project is written inside it
	Name      string   // target and product name
	Extension string   // source file suffix, e.g. ".swift"
	SkipDirs  []string // directory names never descended into
	Target    Target
	Rand      io.Reader // identifier entropy; nil uses crypto/rand
}

// Result summarizes a generation run.
type Result struct {
	Path  string   // the written project.pbxproj
	Files []string // discovered sources, sorted
	IDs   int      // identifiers minted
	Bytes int
}

// ProjectFile returns where the project description for name under root
// is written.
func ProjectFile(root, name string) string {
	return filepath.Join(root, name+".xcodeproj", "project.pbxproj")
}

// Generate discovers sources under opts.Root, builds the project graph and
// writes it to ProjectFile(opts.Root, opts.Name), replacing any existing
// file. Any filesystem error ends the run.
func Generate(opts Options) (Result, error) {
	files, err := FindSources(opts.Root, opts.Extension, opts.SkipDirs)
	if err != nil {
		return Result{}, err
	}

	m := NewMinter(opts.Rand)
	g, err := NewGraph(opts.Name, files, m)
	if err != nil {
		return Result{}, err
	}

	var buf bytes.Buffer
	if err := Render(&buf, g, DefaultSettings(opts.Target)); err != nil {
		return Result{}, err
	}

	p := ProjectFile(opts.Root, opts.Name)
	if err := paths.AtomicWrite(p, buf.Bytes()); err != nil {
		return Result{}, fmt.Errorf("write %s: %w", p, err)
	}
	return Result{Path: p, Files: files, IDs: m.Len(), Bytes: buf.Len()}, nil
}
