package eventlog

import (
	"testing"
	"time"
)

func TestSummarizeByDay(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	runs := []Run{
		{Time: yesterday, Tool: ToolIcons, Artifacts: 12, Bytes: 100, Elapsed: time.Second},
		{Time: now, Tool: ToolProject, Artifacts: 1, Sources: 4, Bytes: 50},
		{Time: now, Tool: ToolIcons, Artifacts: 12, Bytes: 100, Elapsed: time.Second},
		{Time: now, Tool: ToolIcons, Artifacts: 13, Bytes: 200, Elapsed: 2 * time.Second},
	}

	groups := SummarizeByDay(runs, 0)
	if len(groups) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(groups))
	}
	today := groups[0]
	if !today.Date.After(groups[1].Date) {
		t.Fatal("groups not sorted newest first")
	}
	if len(today.Summaries) != 2 {
		t.Fatalf("expected 2 tools today, got %d", len(today.Summaries))
	}
	icons := today.Summaries[1]
	if icons.Tool != ToolIcons || icons.Runs != 2 || icons.Artifacts != 25 ||
		icons.Bytes != 300 || icons.Elapsed != 3*time.Second {
		t.Errorf("unexpected icon summary: %+v", icons)
	}
	if today.Summaries[0].Tool != ToolProject || today.Summaries[0].Sources != 4 {
		t.Errorf("unexpected project summary: %+v", today.Summaries[0])
	}

	if got := SummarizeByDay(runs, 1); len(got) != 1 {
		t.Errorf("days=1: expected 1 group, got %d", len(got))
	}
}

func TestSummarizeByDayEmpty(t *testing.T) {
	if got := SummarizeByDay(nil, 7); len(got) != 0 {
		t.Errorf("expected no groups, got %d", len(got))
	}
}

func TestDayCutoff(t *testing.T) {
	c := DayCutoff(1)
	now := time.Now()
	if c.Year() != now.Year() || c.YearDay() != now.YearDay() || c.Hour() != 0 {
		t.Errorf("DayCutoff(1) = %v, want today at midnight", c)
	}
	if got := DayCutoff(7); !got.Equal(c.AddDate(0, 0, -6)) {
		t.Errorf("DayCutoff(7) = %v", got)
	}
}

func TestFilterBlocksByDays(t *testing.T) {
	old := FormatRun(Run{Time: time.Now().AddDate(0, 0, -9), Tool: "old"})
	fresh := FormatRun(Run{Time: time.Now(), Tool: "fresh"})
	got := FilterBlocksByDays(old+"\n\n"+fresh+"\n\n", 3)
	if got != fresh {
		t.Errorf("FilterBlocksByDays = %q, want %q", got, fresh)
	}
}
