package eventlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Compile-time interface check.
var _ Store = (*FileStore)(nil)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "sub", "tenx.log"))
}

func TestFileStoreLogAndEntries(t *testing.T) {
	s := tempStore(t)
	run := Run{Tool: ToolIcons, Artifacts: 13, Bytes: 4096, Elapsed: 1500 * time.Millisecond, Output: "TenX/AppIcon"}

	if err := s.Log(run); err != nil {
		t.Fatal(err)
	}
	if err := s.Log(Run{Tool: ToolProject, Artifacts: 1, Sources: 2, Output: "TenX/TenX.xcodeproj/project.pbxproj"}); err != nil {
		t.Fatal(err)
	}

	runs, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	got := runs[0]
	if got.Tool != ToolIcons || got.Artifacts != 13 || got.Bytes != 4096 ||
		got.Elapsed != 1500*time.Millisecond || got.Output != "TenX/AppIcon" {
		t.Fatalf("unexpected run: %+v", got)
	}
	if runs[1].Tool != ToolProject || runs[1].Sources != 2 {
		t.Fatalf("unexpected run: %+v", runs[1])
	}
}

func TestFileStoreEntriesMissingFile(t *testing.T) {
	s := tempStore(t)
	runs, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(runs))
	}
}

func TestFileStoreEntriesDays(t *testing.T) {
	s := tempStore(t)
	old := time.Now().AddDate(0, 0, -10)
	s.Log(Run{Time: old, Tool: ToolIcons})
	s.Log(Run{Tool: ToolProject})

	runs, err := s.Entries(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].Tool != ToolProject {
		t.Fatalf("expected only today's run, got %+v", runs)
	}
}

func TestFileStoreClean(t *testing.T) {
	s := tempStore(t)
	s.Log(Run{Time: time.Now().AddDate(0, 0, -30), Tool: ToolIcons})
	s.Log(Run{Time: time.Now().AddDate(0, 0, -20), Tool: ToolIcons})
	s.Log(Run{Tool: ToolProject})

	removed, err := s.Clean(7)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	runs, _ := s.Entries(0)
	if len(runs) != 1 || runs[0].Tool != ToolProject {
		t.Fatalf("unexpected runs after clean: %+v", runs)
	}
	data, _ := os.ReadFile(s.Path())
	if !strings.HasSuffix(string(data), "\n\n") {
		t.Errorf("cleaned log should end with a blank line: %q", data)
	}
}

func TestFileStoreCleanRemovesEmptyFile(t *testing.T) {
	s := tempStore(t)
	s.Log(Run{Time: time.Now().AddDate(0, 0, -30), Tool: ToolIcons})

	removed, err := s.Clean(1)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatalf("expected log file removed, stat err = %v", err)
	}
}

func TestFileStoreClear(t *testing.T) {
	s := tempStore(t)
	s.Log(Run{Tool: ToolIcons})

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatal("expected log file removed")
	}
	// Clearing twice is fine.
	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	fs, err := Open(BackendFile, dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := fs.(*FileStore); !ok {
		t.Errorf("file backend = %T", fs)
	}

	db, err := Open(BackendSQLite, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if filepath.Base(db.Path()) != "tenx.db" {
		t.Errorf("sqlite path = %s", db.Path())
	}

	if _, err := Open("csv", dir); err == nil {
		t.Error("expected error for unknown backend")
	}
}
