// Package report formats the end-of-run summary for the terminal and
// forwards it to the configured notification endpoints.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"
)

// Summary describes a finished run.
type Summary struct {
	Tool     string
	Headline string   // first line, e.g. "Created TenX icons in: TenX/AppIcon"
	Details  []string // indented facts under the headline
	Hints    []string // next steps, numbered when there are several
	HintHead string   // line introducing Hints
	Files    int
	Bytes    int64
	Elapsed  time.Duration
	Time     time.Time
}

const (
	bold  = "\x1b[1m"
	green = "\x1b[32m"
	reset = "\x1b[0m"
)

// Stats is the one-line file count, size and duration of s.
func (s Summary) Stats() string {
	noun := "files"
	if s.Files == 1 {
		noun = "file"
	}
	return fmt.Sprintf("%d %s, %s, %s", s.Files, noun,
		humanize.Bytes(uint64(s.Bytes)), s.Elapsed.Round(time.Millisecond))
}

// Body is the stats line followed by the details, one per line.
func (s Summary) Body() string {
	return strings.Join(append([]string{s.Stats()}, s.Details...), "\n")
}

// Vars are the placeholder values for notification titles.
func (s Summary) Vars(output string) map[string]string {
	return map[string]string{
		"tool":    s.Tool,
		"files":   fmt.Sprint(s.Files),
		"size":    humanize.Bytes(uint64(s.Bytes)),
		"elapsed": s.Elapsed.Round(time.Millisecond).String(),
		"output":  output,
	}
}

// Text renders s as plain text.
func (s Summary) Text() string {
	var b strings.Builder
	s.write(&b, false)
	return b.String()
}

// Write prints s to w, with ANSI emphasis when w is a terminal.
func Write(w io.Writer, s Summary) {
	s.write(w, IsTerminal(w))
}

func (s Summary) write(w io.Writer, color bool) {
	if color {
		fmt.Fprintf(w, "%s%s✓%s %s%s%s\n", bold, green, reset, bold, s.Headline, reset)
	} else {
		fmt.Fprintf(w, "✓ %s\n", s.Headline)
	}
	fmt.Fprintf(w, "  %s\n", s.Stats())
	for _, d := range s.Details {
		fmt.Fprintf(w, "  %s\n", d)
	}
	if len(s.Hints) == 0 {
		return
	}
	fmt.Fprintln(w)
	if s.HintHead != "" {
		fmt.Fprintln(w, s.HintHead)
	}
	if len(s.Hints) == 1 {
		fmt.Fprintln(w, s.Hints[0])
		return
	}
	for i, h := range s.Hints {
		fmt.Fprintf(w, "%d. %s\n", i+1, h)
	}
}

// IsTerminal reports whether w is an interactive terminal that accepts
// colour. NO_COLOR disables it.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind w, or 80.
func Width(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return 80
}

type payload struct {
	Tool      string   `json:"tool"`
	Headline  string   `json:"headline"`
	Details   []string `json:"details,omitempty"`
	Files     int      `json:"files"`
	Bytes     int64    `json:"bytes"`
	ElapsedMS int64    `json:"elapsed_ms"`
	Time      string   `json:"time"`
}

// JSON encodes s for machine consumers.
func (s Summary) JSON() ([]byte, error) {
	ts := s.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	return json.Marshal(payload{
		Tool:      s.Tool,
		Headline:  s.Headline,
		Details:   s.Details,
		Files:     s.Files,
		Bytes:     s.Bytes,
		ElapsedMS: s.Elapsed.Milliseconds(),
		Time:      ts.Format(time.RFC3339),
	})
}
