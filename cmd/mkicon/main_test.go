package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opsbrain/tenx-tools/internal/appicon"
	"github.com/opsbrain/tenx-tools/internal/config"
	"github.com/opsbrain/tenx-tools/internal/icon"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Icons.OutputDir = filepath.Join(t.TempDir(), "AppIcon")
	cfg.Icons.Sizes = []int{58, 40, 20}
	cfg.Icons.Fonts = nil
	return cfg
}

func TestGenerateDefaults(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer

	s, run, err := generate(cfg, &out)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// three sizes, master, Contents.json
	if s.Files != 5 || run.Artifacts != 5 {
		t.Errorf("files = %d/%d, want 5", s.Files, run.Artifacts)
	}
	if s.Bytes <= 0 || s.Bytes != run.Bytes {
		t.Errorf("bytes = %d/%d", s.Bytes, run.Bytes)
	}
	for _, name := range []string{"AppIcon-58x58.png", appicon.MasterFileName, appicon.ContentsFileName} {
		if _, err := os.Stat(filepath.Join(cfg.Icons.OutputDir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "Creating 58x58 icon...") {
		t.Errorf("progress = %q", out.String())
	}
	if len(s.Details) != 1 || s.Details[0] != "Font: "+icon.BuiltinSource {
		t.Errorf("details = %v", s.Details)
	}
}

func TestGenerateLetterformsOnly(t *testing.T) {
	cfg := testConfig(t)
	cfg.Icons.Style = "letterforms"
	cfg.Icons.Master = false
	cfg.Icons.ContentsJSON = false

	s, _, err := generate(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if s.Files != 3 {
		t.Errorf("files = %d, want 3", s.Files)
	}
	if len(s.Details) != 0 {
		t.Errorf("letterforms should not report a font: %v", s.Details)
	}
	if len(s.Hints) != 3 {
		t.Errorf("hints = %v", s.Hints)
	}
}

func TestGenerateUnwritableOutput(t *testing.T) {
	cfg := testConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	os.WriteFile(blocker, []byte("x"), 0644)
	cfg.Icons.OutputDir = filepath.Join(blocker, "AppIcon")

	if _, _, err := generate(cfg, nil); err == nil {
		t.Fatal("expected error writing below a regular file")
	}
}

func TestRendererOptions(t *testing.T) {
	opts := rendererOptions(config.Icons{Style: "letterforms", Text: "TX", Grid: false, Fonts: []string{"a.ttf"}})
	if opts.Style != icon.StyleLetterforms || opts.Text != "TX" || opts.Grid || len(opts.Fonts) != 1 {
		t.Errorf("options = %+v", opts)
	}
	if opts.Palette.Top != icon.DefaultPalette().Top {
		t.Error("palette not defaulted")
	}
}
