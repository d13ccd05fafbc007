package eventlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Compile-time interface check.
var _ Store = (*SQLiteStore)(nil)

func tempSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tenx.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreLogAndEntries(t *testing.T) {
	s := tempSQLiteStore(t)
	run := Run{Tool: ToolProject, Artifacts: 1, Sources: 42, Bytes: 20000,
		Elapsed: 250 * time.Millisecond, Output: "My App/My App.xcodeproj/project.pbxproj"}

	if err := s.Log(run); err != nil {
		t.Fatal(err)
	}

	runs, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.Tool != ToolProject || got.Sources != 42 || got.Bytes != 20000 ||
		got.Elapsed != 250*time.Millisecond || got.Output != run.Output {
		t.Fatalf("unexpected run: %+v", got)
	}
	if time.Since(got.Time) > time.Minute {
		t.Fatalf("timestamp not set: %v", got.Time)
	}
}

func TestSQLiteStoreEntriesOrderedAndFiltered(t *testing.T) {
	s := tempSQLiteStore(t)
	now := time.Now()
	s.Log(Run{Time: now, Tool: "b"})
	s.Log(Run{Time: now.AddDate(0, 0, -10), Tool: "old"})
	s.Log(Run{Time: now.Add(-time.Second), Tool: "a"})

	all, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 || all[0].Tool != "old" || all[1].Tool != "a" || all[2].Tool != "b" {
		t.Fatalf("unexpected order: %+v", all)
	}

	recent, err := s.Entries(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent runs, got %d", len(recent))
	}
}

func TestSQLiteStoreClean(t *testing.T) {
	s := tempSQLiteStore(t)
	s.Log(Run{Time: time.Now().AddDate(0, 0, -30), Tool: ToolIcons})
	s.Log(Run{Tool: ToolIcons})

	removed, err := s.Clean(7)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	runs, _ := s.Entries(0)
	if len(runs) != 1 {
		t.Fatalf("expected 1 run left, got %d", len(runs))
	}
}

func TestSQLiteStoreClear(t *testing.T) {
	s := tempSQLiteStore(t)
	s.Log(Run{Tool: ToolIcons})
	s.Log(Run{Tool: ToolProject})

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	runs, _ := s.Entries(0)
	if len(runs) != 0 {
		t.Fatalf("expected empty store, got %d runs", len(runs))
	}
}

func TestSQLiteStoreMigratesLogFile(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "tenx.log"))
	fs.Log(Run{Tool: ToolIcons, Artifacts: 12})
	fs.Log(Run{Tool: ToolProject, Sources: 3})

	s, err := NewSQLiteStore(filepath.Join(dir, "tenx.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	runs, err := s.Entries(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 || runs[0].Artifacts != 12 || runs[1].Sources != 3 {
		t.Fatalf("unexpected migrated runs: %+v", runs)
	}
	if _, err := os.Stat(filepath.Join(dir, "tenx.log")); !os.IsNotExist(err) {
		t.Error("log file should be renamed after migration")
	}
	if _, err := os.Stat(filepath.Join(dir, "tenx.log.migrated")); err != nil {
		t.Errorf("migrated file missing: %v", err)
	}
}
