package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/opsbrain/tenx-tools/internal/paths"
)

// FileStore implements Store using a flat log file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that reads and writes the given log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// openLog opens (or creates) the log file for appending, creating the
// parent directory if needed.
func (f *FileStore) openLog() (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(f.path), paths.DirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, paths.FilePerm)
}

// Log appends r followed by a blank line.
func (f *FileStore) Log(r Run) error {
	file, err := f.openLog()
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = fmt.Fprintf(file, "%s\n\n", FormatRun(r))
	return err
}

func (f *FileStore) read() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (f *FileStore) Entries(days int) ([]Run, error) {
	content, err := f.read()
	if err != nil {
		return nil, err
	}
	runs := ParseRuns(content)
	if days <= 0 {
		return runs, nil
	}

	cutoff := DayCutoff(days)
	var filtered []Run
	for _, r := range runs {
		if !r.Time.In(cutoff.Location()).Before(cutoff) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (f *FileStore) Clean(days int) (int, error) {
	content, err := f.read()
	if err != nil {
		return 0, err
	}
	content = strings.TrimRight(content, "\n\r ")
	if content == "" {
		return 0, nil
	}

	orig := len(SplitBlocks(content))
	filtered := FilterBlocksByDays(content, days)
	removed := orig - len(SplitBlocks(filtered))

	if filtered == "" {
		_ = os.Remove(f.path)
		return removed, nil
	}
	if err := paths.AtomicWrite(f.path, []byte(filtered+"\n\n")); err != nil {
		return 0, err
	}
	return removed, nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FileStore) Path() string {
	return f.path
}

// Close is a no-op; the file is opened per write.
func (f *FileStore) Close() error {
	return nil
}
