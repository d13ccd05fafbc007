package eventlog

import (
	"strings"
	"testing"
	"time"
)

func TestFormatAndParseLine(t *testing.T) {
	ts := time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC)
	r := Run{Time: ts, Tool: ToolProject, Artifacts: 1, Sources: 7, Bytes: 12345,
		Elapsed: 1234567 * time.Microsecond, Output: `dir with "quotes"/p.pbxproj`}

	line := FormatRun(r)
	if !strings.HasPrefix(line, "2026-03-04T10:30:00Z  tool=genproj  ") {
		t.Fatalf("unexpected line: %s", line)
	}
	if !strings.Contains(line, "elapsed=1.235s") {
		t.Errorf("elapsed not rounded to ms: %s", line)
	}

	got, ok := ParseLine(line)
	if !ok {
		t.Fatalf("ParseLine(%q) failed", line)
	}
	if !got.Time.Equal(ts) || got.Tool != r.Tool || got.Sources != 7 || got.Bytes != 12345 ||
		got.Elapsed != 1235*time.Millisecond || got.Output != r.Output {
		t.Errorf("parsed = %+v", got)
	}
}

func TestParseLineRejects(t *testing.T) {
	for _, line := range []string{
		"",
		"garbage",
		"not-a-time  tool=mkicon",
		"2026-03-04T10:30:00Z  artifacts=3",
	} {
		if _, ok := ParseLine(line); ok {
			t.Errorf("ParseLine(%q) accepted", line)
		}
	}
}

func TestParseRunsSkipsMalformedBlocks(t *testing.T) {
	content := "2026-03-04T10:30:00Z  tool=mkicon  artifacts=13\n\n" +
		"junk line\n\n" +
		"\n\n\n" +
		"2026-03-05T08:00:00Z  tool=genproj  sources=2  output=\"TenX\"\n\n"
	runs := ParseRuns(content)
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Artifacts != 13 || runs[1].Output != "TenX" {
		t.Errorf("unexpected runs: %+v", runs)
	}
}

func TestExtractQuoted(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`"plain"`, "plain"},
		{`"with \"esc\"" trailing`, `with "esc"`},
		{`noquote`, ""},
		{`"unterminated`, ""},
		{``, ""},
	}
	for _, tt := range tests {
		if got := extractQuoted(tt.in); got != tt.want {
			t.Errorf("extractQuoted(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLast(t *testing.T) {
	runs := []Run{{Tool: "a"}, {Tool: "b"}, {Tool: "c"}}
	if got := Last(runs, 2); len(got) != 2 || got[0].Tool != "b" {
		t.Errorf("Last(2) = %+v", got)
	}
	if got := Last(runs, 0); len(got) != 3 {
		t.Errorf("Last(0) = %+v", got)
	}
	if got := Last(runs, 10); len(got) != 3 {
		t.Errorf("Last(10) = %+v", got)
	}
}
