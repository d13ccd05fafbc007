package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/opsbrain/tenx-tools/internal/eventlog"
	"github.com/opsbrain/tenx-tools/internal/report"
)

// --- ANSI color helpers (disabled when NO_COLOR is set or stdout is not a terminal) ---

var noColor = !report.IsTerminal(os.Stdout)

func ansi(code, s string) string {
	if noColor {
		return s
	}
	return code + s + "\033[0m"
}

func bold(s string) string { return ansi("\033[1m", s) }
func dim(s string) string  { return ansi("\033[2m", s) }
func cyan(s string) string { return ansi("\033[36m", s) }

// padL pads s to width with spaces on the left.
func padL(s string, width int) string {
	if pad := width - len(s); pad > 0 {
		return strings.Repeat(" ", pad) + s
	}
	return s
}

// padR pads s to width with spaces on the right.
func padR(s string, width int) string {
	if pad := width - len(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// --- Table layout constants ---

const (
	colTool    = 8
	colNumber  = 7
	colSize    = 9
	colElapsed = 9
	colWhen    = 16 // "2006-01-02 15:04"
	minOutput  = 12
)

var now = time.Now

// renderRuns lists runs oldest first, one per line, fitting the output
// path into width columns.
func renderRuns(runs []eventlog.Run, width int) string {
	var w strings.Builder
	fixed := 2 + colWhen + 2 + colTool + 2 + colNumber + 2 + colSize + 2 + colElapsed + 2
	outW := width - fixed
	if outW < minOutput {
		outW = minOutput
	}

	for _, r := range runs {
		count := fmt.Sprintf("%d", r.Artifacts)
		if r.Sources > 0 {
			count = fmt.Sprintf("%d/%d", r.Artifacts, r.Sources)
		}
		fmt.Fprintf(&w, "  %s  %s  %s  %s  %s  %s\n",
			dim(r.Time.Local().Format("2006-01-02 15:04")),
			padR(cyan(r.Tool), colTool+len(cyan(r.Tool))-len(r.Tool)),
			padL(count, colNumber),
			padL(humanize.Bytes(uint64(r.Bytes)), colSize),
			padL(r.Elapsed.Round(time.Millisecond).String(), colElapsed),
			truncate(r.Output, outW))
	}
	if len(runs) > 0 {
		last := runs[len(runs)-1].Time
		fmt.Fprintf(&w, "%s\n", dim(fmt.Sprintf("  last run %s", humanize.RelTime(last, now(), "ago", "from now"))))
	}
	return w.String()
}

// renderSummary writes one block per day with a row per tool and a
// bold total.
func renderSummary(groups []eventlog.DayGroup) string {
	var w strings.Builder
	sep := dim("  " + strings.Repeat("─", colTool+4*(colNumber+2)+colSize+2))

	hdr := fmt.Sprintf("  %-*s  %*s  %*s  %*s  %*s  %*s",
		colTool, "", colNumber, "Runs", colNumber, "Files", colNumber, "Sources", colSize, "Size", colNumber, "Time")

	var total eventlog.DaySummary
	for i, dg := range groups {
		if i > 0 {
			w.WriteString("\n")
		}
		fmt.Fprintf(&w, "%s\n", dim(fmt.Sprintf("%s  (%s)", dg.Date.Format("2006-01-02"), dg.Date.Format("Monday"))))
		w.WriteString(bold(hdr) + "\n")
		for _, s := range dg.Summaries {
			w.WriteString(summaryRow(cyan(s.Tool), len(s.Tool), s) + "\n")
			total.Runs += s.Runs
			total.Artifacts += s.Artifacts
			total.Sources += s.Sources
			total.Bytes += s.Bytes
			total.Elapsed += s.Elapsed
		}
	}
	w.WriteString(sep + "\n")
	w.WriteString(bold(summaryRow("Total", len("Total"), total)) + "\n")
	return w.String()
}

func summaryRow(label string, visible int, s eventlog.DaySummary) string {
	return fmt.Sprintf("  %s  %s  %s  %s  %s  %s",
		padR(label, colTool+len(label)-visible),
		padL(humanize.Comma(int64(s.Runs)), colNumber),
		padL(humanize.Comma(int64(s.Artifacts)), colNumber),
		padL(humanize.Comma(int64(s.Sources)), colNumber),
		padL(humanize.Bytes(uint64(s.Bytes)), colSize),
		padL(s.Elapsed.Round(time.Millisecond).String(), colNumber))
}
