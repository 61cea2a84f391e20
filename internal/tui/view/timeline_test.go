package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func timelineState(entries ...TimelineEntry) TimelineState {
	return TimelineState{
		InnerW:      40,
		Height:      20,
		Entries:     entries,
		Cursor:      -1,
		Use24Hour:   true,
		HourStyle:   lipgloss.NewStyle(),
		RuleStyle:   lipgloss.NewStyle(),
		CursorStyle: lipgloss.NewStyle(),
	}
}

func TestTimelineLines_HourMarkers(t *testing.T) {
	state := timelineState(
		TimelineEntry{Start: 9 * 60, End: 10 * 60, Text: "Deep work"},
		TimelineEntry{Start: 11*60 + 15, End: 12*60 + 30, Text: "Walk"},
	)
	state.Cursor = 1

	lines, cursor := TimelineLines(state)
	// 09, 10, 11, 12 markers plus two entries
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[0], "09:00") || !strings.Contains(lines[1], "Deep work") {
		t.Errorf("first hour block wrong:\n%s", strings.Join(lines, "\n"))
	}
	if !strings.HasPrefix(lines[3], "11:00") || !strings.Contains(lines[4], "Walk") {
		t.Errorf("entry not listed under its starting hour:\n%s", strings.Join(lines, "\n"))
	}
	if cursor != 4 {
		t.Errorf("cursor line = %d, want 4", cursor)
	}
	if !strings.HasPrefix(lines[5], "12:00") {
		t.Errorf("last marker = %q, want 12:00", lines[5])
	}
}

func TestTimelineLines_12Hour(t *testing.T) {
	state := timelineState(TimelineEntry{Start: 13 * 60, End: 13*60 + 30, Text: "Lunch"})
	state.Use24Hour = false
	lines, _ := TimelineLines(state)
	if !strings.HasPrefix(lines[0], "1:00 PM") {
		t.Errorf("marker = %q, want 1:00 PM", lines[0])
	}
}

func TestTimelineLines_PastMidnightStopsAtLastHour(t *testing.T) {
	state := timelineState(TimelineEntry{Start: 23 * 60, End: 25 * 60, Text: "Late"})
	lines, _ := TimelineLines(state)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want marker and entry", len(lines))
	}
}

func TestRenderTimeline_Offset(t *testing.T) {
	state := timelineState(
		TimelineEntry{Start: 8 * 60, End: 9 * 60, Text: "A"},
		TimelineEntry{Start: 12 * 60, End: 13 * 60, Text: "B"},
	)
	state.Height = 3
	state.Offset = 4
	out := RenderTimeline(state)
	if strings.Contains(out, "08:00") || !strings.Contains(out, "11:00") {
		t.Errorf("offset not applied:\n%s", out)
	}
	if got := len(strings.Split(out, "\n")); got != 3 {
		t.Errorf("rendered %d lines, want 3", got)
	}
}

func TestTimelineLines_Empty(t *testing.T) {
	lines, cursor := TimelineLines(timelineState())
	if lines != nil || cursor != -1 {
		t.Errorf("TimelineLines() on empty = %v, %d", lines, cursor)
	}
}

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(HeaderModel{
		InnerW: 60,
		Title:  "dayplan",
		Total:  "Total scheduled: 3.5 hours",
		Badges: []string{"24h", "list"},
	})
	if lipgloss.Width(out) != 60 {
		t.Errorf("header width = %d, want 60", lipgloss.Width(out))
	}
	for _, want := range []string{"dayplan", "Total scheduled: 3.5 hours", "24h", "list"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q: %q", want, out)
		}
	}
}
