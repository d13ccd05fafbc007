// Package eventlog records one line per tool run and reads the history
// back for the buildlog command.
package eventlog

import (
	"fmt"
	"time"
)

// Tool names written to the history.
const (
	ToolIcons   = "mkicon"
	ToolProject = "genproj"
)

// Run is one tool invocation.
type Run struct {
	Time      time.Time
	Tool      string
	Artifacts int   // files written
	Sources   int   // source files listed (genproj only)
	Bytes     int64 // total bytes written
	Elapsed   time.Duration
	Output    string // icon directory or project file
}

// FormatRun renders r as a single log line. A zero Time means now.
func FormatRun(r Run) string {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	return fmt.Sprintf("%s  tool=%s  artifacts=%d  sources=%d  bytes=%d  elapsed=%s  output=%q",
		ts.Format(time.RFC3339), r.Tool, r.Artifacts, r.Sources, r.Bytes,
		r.Elapsed.Round(time.Millisecond), r.Output)
}

// Last returns at most the n most recent runs of runs (which are oldest
// first). n <= 0 returns all of them.
func Last(runs []Run, n int) []Run {
	if n <= 0 || n >= len(runs) {
		return runs
	}
	return runs[len(runs)-n:]
}
