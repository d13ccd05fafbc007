package eventlog

import (
	"fmt"
	"path/filepath"

	"github.com/opsbrain/tenx-tools/internal/paths"
)

// Store abstracts run history storage. FileStore keeps a flat log file;
// SQLiteStore keeps a database next to it.
type Store interface {
	// Write
	Log(r Run) error

	// Read
	Entries(days int) ([]Run, error) // oldest first, 0 = all

	// Maintenance
	Clean(days int) (int, error) // remove runs older than days, return removed count
	Clear() error                // delete all data

	// Metadata
	Path() string
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend inside dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case "", BackendFile:
		return NewFileStore(filepath.Join(dir, paths.LogFileName)), nil
	case BackendSQLite:
		return NewSQLiteStore(filepath.Join(dir, paths.DBFileName))
	default:
		return nil, fmt.Errorf("unknown storage %q", backend)
	}
}
