package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/cdzone/countdown-cli/internal/config"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func rec(title, datetime string) config.Record {
	return config.Record{Title: title, Datetime: datetime, Enabled: true}
}

func TestFormatBands(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{
			name:      "day band above boundary",
			remaining: 86401 * time.Second,
			want:      "t: There are 1 days, 00:00:01 secs left.",
		},
		{
			name:      "exactly one day stays in sub-day band",
			remaining: 86400 * time.Second,
			want:      "t: There are 00:00:00.000 secs left.",
		},
		{
			name:      "sub-day with milliseconds",
			remaining: 2*time.Hour + 3*time.Minute + 4*time.Second + 56*time.Millisecond,
			want:      "t: There are 02:03:04.056 secs left.",
		},
		{
			name:      "one second left",
			remaining: time.Second,
			want:      "t: There are 00:00:01.000 secs left.",
		},
		{
			name:      "zero",
			remaining: 0,
			want:      "t: Now is the time!",
		},
		{
			name:      "sub-second past still counts as now",
			remaining: -400 * time.Millisecond,
			want:      "t: Now is the time!",
		},
		{
			name:      "one second ago",
			remaining: -time.Second,
			want:      "t: The datetime was 1 seconds ago.",
		},
		{
			name:      "long past uses total seconds",
			remaining: -(time.Hour + time.Second),
			want:      "t: The datetime was 3601 seconds ago.",
		},
		{
			name:      "multi day keeps wall clock components",
			remaining: 3*24*time.Hour + 5*time.Hour + 6*time.Minute + 7*time.Second,
			want:      "t: There are 3 days, 05:06:07 secs left.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format("t", tt.remaining); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.remaining, got, tt.want)
			}
		})
	}
}

func TestBuildSortsByTarget(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []config.Record{
		rec("later", "2026-03-03 00:00:00"),
		rec("sooner", "2026-03-02 00:00:00"),
		rec("soonest", "2026-03-01 13:00:00"),
	}

	entries, diagnostics := Build(records, now)
	if len(diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diagnostics)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []string{"soonest", "sooner", "later"}
	for i, title := range want {
		if entries[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, entries[i].Title)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Target.Before(entries[i-1].Target) {
			t.Errorf("entries out of order at %d", i)
		}
	}
}

func TestBuildStableOnEqualTargets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []config.Record{
		rec("first", "2026-03-02 00:00:00"),
		rec("second", "2026-03-02 00:00:00"),
		rec("third", "2026-03-02 00:00:00"),
	}

	entries, _ := Build(records, now)
	want := []string{"first", "second", "third"}
	for i, title := range want {
		if entries[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, entries[i].Title)
		}
	}
}

func TestBuildSkipsDisabled(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []config.Record{
		rec("on", "2026-03-02 00:00:00"),
		{Title: "off", Datetime: "2026-03-02 00:00:00", Enabled: false},
	}

	entries, _ := Build(records, now)
	if len(entries) != 1 || entries[0].Title != "on" {
		t.Errorf("expected only the enabled record, got %+v", entries)
	}
}

func TestBuildDropsBadDatetimeForTickOnly(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []config.Record{
		rec("good", "2026-03-02 00:00:00"),
		rec("bad", "tomorrow-ish"),
	}

	entries, diagnostics := Build(records, now)
	if len(entries) != 1 || entries[0].Title != "good" {
		t.Fatalf("expected the good record to survive, got %+v", entries)
	}
	if len(diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diagnostics)
	}
	if !strings.Contains(diagnostics[0], "'bad'") {
		t.Errorf("diagnostic should name the offending title: %q", diagnostics[0])
	}

	// The record is re-evaluated every cycle, not permanently excluded.
	records[1].Datetime = "2026-03-04 00:00:00"
	entries, diagnostics = Build(records, now)
	if len(entries) != 2 || len(diagnostics) != 0 {
		t.Errorf("expected fixed record to reappear, got %+v / %v", entries, diagnostics)
	}
}

func TestBuildDueFlag(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []config.Record{
		rec("due", "2026-03-01 12:00:00"),
		rec("pending", "2026-03-01 12:00:30"),
		rec("past", "2026-03-01 11:59:00"),
	}

	entries, _ := Build(records, now)
	for _, e := range entries {
		switch e.Title {
		case "due":
			if !e.Due {
				t.Error("expected zero-remaining entry to be due")
			}
		default:
			if e.Due {
				t.Errorf("expected %q not to be due", e.Title)
			}
		}
	}
}

func TestBuildLaunchExample(t *testing.T) {
	now := time.Date(2098, 12, 30, 12, 0, 0, 0, time.UTC)
	entries, _ := Build([]config.Record{rec("Launch", "2099-01-01 00:00:00")}, now)

	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	msg := entries[0].Message
	if !strings.Contains(msg, "Launch") {
		t.Errorf("message should contain the title: %q", msg)
	}
	if !strings.Contains(msg, "1 days") {
		t.Errorf("message should contain the day count: %q", msg)
	}
	if !strings.Contains(msg, "12:00:00") {
		t.Errorf("message should contain the wall-clock remainder: %q", msg)
	}
}

func TestBuildEmptyTitleRendersBlankLabel(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries, _ := Build([]config.Record{rec("", "2026-03-02 00:00:00")}, now)

	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	if !strings.HasPrefix(entries[0].Message, ": There are") {
		t.Errorf("expected blank label, got %q", entries[0].Message)
	}
}
