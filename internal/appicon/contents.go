package appicon

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/opsbrain/tenx-tools/internal/paths"
)

// ContentsFileName is the asset catalog manifest name.
const ContentsFileName = "Contents.json"

// Slot is one icon well in an asset catalog app icon set.
type Slot struct {
	Idiom  string
	Points float64
	Scale  int
}

// Pixels is the PNG size that fills the slot.
func (s Slot) Pixels() int {
	return int(s.Points * float64(s.Scale))
}

// Slots lists the iPhone, iPad and marketing wells of an iOS app icon set.
var Slots = []Slot{
	{"iphone", 20, 2}, {"iphone", 20, 3},
	{"iphone", 29, 2}, {"iphone", 29, 3},
	{"iphone", 40, 2}, {"iphone", 40, 3},
	{"iphone", 60, 2}, {"iphone", 60, 3},
	{"ipad", 20, 1}, {"ipad", 20, 2},
	{"ipad", 29, 1}, {"ipad", 29, 2},
	{"ipad", 40, 1}, {"ipad", 40, 2},
	{"ipad", 76, 1}, {"ipad", 76, 2},
	{"ipad", 83.5, 2},
	{"ios-marketing", 1024, 1},
}

type contentsImage struct {
	Filename string `json:"filename,omitempty"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

type contentsInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

type contents struct {
	Images []contentsImage `json:"images"`
	Info   contentsInfo    `json:"info"`
}

// buildContents maps every slot to the rendered file of its pixel size.
// Slots without a matching size are listed empty, as Xcode does.
func buildContents(sizes []int, master bool) contents {
	rendered := make(map[int]string, len(sizes))
	for _, s := range sizes {
		rendered[s] = FileName(s)
	}
	if master {
		rendered[MasterSize] = MasterFileName
	}

	c := contents{Info: contentsInfo{Author: "xcode", Version: 1}}
	for _, slot := range Slots {
		pt := strconv.FormatFloat(slot.Points, 'f', -1, 64)
		c.Images = append(c.Images, contentsImage{
			Filename: rendered[slot.Pixels()],
			Idiom:    slot.Idiom,
			Scale:    fmt.Sprintf("%dx", slot.Scale),
			Size:     pt + "x" + pt,
		})
	}
	return c
}

func writeContents(dir string, sizes []int, master bool) (Artifact, error) {
	data, err := json.MarshalIndent(buildContents(sizes, master), "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("encode %s: %w", ContentsFileName, err)
	}
	data = append(data, '\n')
	p := filepath.Join(dir, ContentsFileName)
	if err := paths.AtomicWrite(p, data); err != nil {
		return Artifact{}, fmt.Errorf("write %s: %w", p, err)
	}
	return Artifact{Path: p, Bytes: len(data)}, nil
}
