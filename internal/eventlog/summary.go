package eventlog

import (
	"sort"
	"strings"
	"time"
)

// SplitBlocks splits log content on blank lines, trims whitespace from
// each block, and returns only non-empty blocks.
func SplitBlocks(content string) []string {
	raw := strings.Split(content, "\n\n")
	blocks := make([]string, 0, len(raw))
	for _, b := range raw {
		b = strings.TrimSpace(b)
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// DayCutoff returns midnight N days ago (inclusive) in the local timezone.
// For days=1 it returns today at midnight, for days=7 it returns 6 days ago, etc.
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}

// FilterBlocksByDays returns only log blocks whose timestamp falls within
// the last N calendar days. Each block is separated by a blank line.
func FilterBlocksByDays(content string, days int) string {
	cutoff := DayCutoff(days)

	var kept []string
	for _, block := range SplitBlocks(content) {
		firstLine := block
		if idx := strings.Index(block, "\n"); idx > 0 {
			firstLine = block[:idx]
		}
		ts, ok := ExtractTimestamp(firstLine)
		if !ok {
			continue
		}
		if !ts.In(cutoff.Location()).Before(cutoff) {
			kept = append(kept, block)
		}
	}
	return strings.Join(kept, "\n\n")
}

// DaySummary totals the runs of one tool on one day.
type DaySummary struct {
	Tool      string
	Runs      int
	Artifacts int
	Sources   int
	Bytes     int64
	Elapsed   time.Duration
}

// DayGroup holds all summaries for a single calendar day.
type DayGroup struct {
	Date      time.Time
	Summaries []DaySummary
}

// SummarizeByDay filters runs to the last N calendar days (local time),
// groups by date and tool, and returns day groups sorted descending with
// summaries sorted by tool. Pass days=0 to include all runs.
func SummarizeByDay(runs []Run, days int) []DayGroup {
	now := time.Now()
	var cutoff time.Time
	if days > 0 {
		cutoff = DayCutoff(days)
	}

	type key struct{ date, tool string }
	grouped := map[key]*DaySummary{}
	dates := map[string]time.Time{}

	for _, r := range runs {
		local := r.Time.In(now.Location())
		day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, now.Location())
		if days > 0 && day.Before(cutoff) {
			continue
		}
		ds := day.Format("2006-01-02")
		k := key{ds, r.Tool}
		s, ok := grouped[k]
		if !ok {
			s = &DaySummary{Tool: r.Tool}
			grouped[k] = s
			dates[ds] = day
		}
		s.Runs++
		s.Artifacts += r.Artifacts
		s.Sources += r.Sources
		s.Bytes += r.Bytes
		s.Elapsed += r.Elapsed
	}

	dayMap := map[string]*DayGroup{}
	for k, s := range grouped {
		dg, ok := dayMap[k.date]
		if !ok {
			dg = &DayGroup{Date: dates[k.date]}
			dayMap[k.date] = dg
		}
		dg.Summaries = append(dg.Summaries, *s)
	}
	for _, dg := range dayMap {
		sort.Slice(dg.Summaries, func(i, j int) bool {
			return dg.Summaries[i].Tool < dg.Summaries[j].Tool
		})
	}

	groups := make([]DayGroup, 0, len(dayMap))
	for _, dg := range dayMap {
		groups = append(groups, *dg)
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.After(groups[j].Date)
	})
	return groups
}
