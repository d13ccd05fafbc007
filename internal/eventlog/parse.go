package eventlog

import (
	"strconv"
	"strings"
	"time"
)

// ParseRuns splits log content on blank lines and parses the first line of
// every block as a run. Malformed blocks are silently skipped.
func ParseRuns(content string) []Run {
	var runs []Run
	for _, block := range SplitBlocks(content) {
		line := block
		if idx := strings.Index(block, "\n"); idx > 0 {
			line = block[:idx]
		}
		if r, ok := ParseLine(line); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// ParseLine parses one line written by FormatRun. Lines without a
// timestamp or a tool field are rejected; missing numeric fields read as
// zero.
func ParseLine(line string) (Run, bool) {
	ts, ok := ExtractTimestamp(line)
	if !ok {
		return Run{}, false
	}
	tool := extractField(line, "tool")
	if tool == "" {
		return Run{}, false
	}
	r := Run{
		Time:      ts,
		Tool:      tool,
		Artifacts: atoi(extractField(line, "artifacts")),
		Sources:   atoi(extractField(line, "sources")),
		Output:    extractQuotedField(line, "output"),
	}
	r.Bytes, _ = strconv.ParseInt(extractField(line, "bytes"), 10, 64)
	r.Elapsed, _ = time.ParseDuration(extractField(line, "elapsed"))
	return r, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ExtractTimestamp parses the RFC3339 timestamp at the start of a log line
// (everything before the first "  " double-space separator). Returns the
// parsed time and true on success, or zero time and false on failure.
func ExtractTimestamp(line string) (time.Time, bool) {
	tsEnd := strings.Index(line, "  ")
	if tsEnd < 0 {
		return time.Time{}, false
	}
	ts, err := time.Parse(time.RFC3339, line[:tsEnd])
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// extractField returns the value after "key=" in a space-separated line.
// Returns "" if not found.
func extractField(line, key string) string {
	prefix := key + "="
	for _, field := range strings.Fields(line) {
		if strings.HasPrefix(field, prefix) {
			return field[len(prefix):]
		}
	}
	return ""
}

// extractQuotedField returns the %q-encoded value after "  key=", which may
// contain spaces.
func extractQuotedField(line, key string) string {
	idx := strings.Index(line, "  "+key+"=")
	if idx < 0 {
		return ""
	}
	return extractQuoted(line[idx+len(key)+3:])
}

// extractQuoted extracts a Go %q-encoded string from the start of s.
// It finds the matching closing quote (respecting backslash escapes),
// then uses strconv.Unquote to decode the value. Returns "" on failure.
func extractQuoted(s string) string {
	if len(s) == 0 || s[0] != '"' {
		return ""
	}
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++ // skip escaped character
			continue
		}
		if s[i] == '"' {
			text, err := strconv.Unquote(s[:i+1])
			if err != nil {
				return ""
			}
			return text
		}
	}
	return ""
}
