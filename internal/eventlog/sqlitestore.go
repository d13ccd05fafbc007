package eventlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opsbrain/tenx-tools/internal/paths"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path, creates
// the runs table, and performs one-time migration from tenx.log if it
// exists in the same directory.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    tool        TEXT    NOT NULL,
    artifacts   INTEGER NOT NULL DEFAULT 0,
    sources     INTEGER NOT NULL DEFAULT 0,
    bytes       INTEGER NOT NULL DEFAULT 0,
    elapsed_ms  INTEGER NOT NULL DEFAULT 0,
    output      TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}

	// One-time migration from flat file.
	logPath := filepath.Join(filepath.Dir(path), paths.LogFileName)
	if _, err := os.Stat(logPath); err == nil {
		if err := s.migrateFromFile(logPath); err != nil {
			fmt.Fprintf(os.Stderr, "eventlog: migration: %v\n", err)
		}
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Timestamps are stored in UTC so that text comparison orders them.
func dbTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func (s *SQLiteStore) Log(r Run) error {
	if r.Time.IsZero() {
		r.Time = time.Now()
	}
	return s.insert(s.db, r)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *SQLiteStore) insert(db execer, r Run) error {
	_, err := db.Exec(
		`INSERT INTO runs (timestamp, tool, artifacts, sources, bytes, elapsed_ms, output)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		dbTime(r.Time), r.Tool, r.Artifacts, r.Sources, r.Bytes,
		r.Elapsed.Milliseconds(), r.Output,
	)
	return err
}

func (s *SQLiteStore) Entries(days int) ([]Run, error) {
	query := `SELECT timestamp, tool, artifacts, sources, bytes, elapsed_ms, output FROM runs`
	var args []any
	if days > 0 {
		query += ` WHERE timestamp >= ?`
		args = append(args, dbTime(DayCutoff(days)))
	}
	query += ` ORDER BY timestamp, id`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ts string
		var ms int64
		if err := rows.Scan(&ts, &r.Tool, &r.Artifacts, &r.Sources, &r.Bytes, &ms, &r.Output); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			continue
		}
		r.Time = t.Local()
		r.Elapsed = time.Duration(ms) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) Clean(days int) (int, error) {
	res, err := s.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, dbTime(DayCutoff(days)))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// migrateFromFile imports the runs of an existing tenx.log into the
// database. On success, renames the log to tenx.log.migrated.
func (s *SQLiteStore) migrateFromFile(logPath string) error {
	data, err := os.ReadFile(logPath)
	if err != nil {
		return err
	}
	content := strings.TrimRight(string(data), "\n\r ")
	if content == "" {
		return os.Rename(logPath, logPath+".migrated")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	runs := ParseRuns(content)
	for _, r := range runs {
		if err := s.insert(tx, r); err != nil {
			return fmt.Errorf("migrate run: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "eventlog: migrated %d runs from %s\n", len(runs), paths.LogFileName)
	return os.Rename(logPath, logPath+".migrated")
}
