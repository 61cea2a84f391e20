package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// TimelineEntry is one activity placed on the timeline.
type TimelineEntry struct {
	Start int    // minutes since midnight
	End   int    // may exceed a day
	Text  string // time range and label
	Style lipgloss.Style
}

// TimelineState holds the data needed to render the timeline.
type TimelineState struct {
	InnerW      int
	Height      int
	Offset      int // first visible line
	Entries     []TimelineEntry
	Cursor      int // index into Entries, -1 for none
	Use24Hour   bool
	HourStyle   lipgloss.Style
	RuleStyle   lipgloss.Style
	CursorStyle lipgloss.Style
	Bg          lipgloss.Color
}

const timelineGutter = 10

// TimelineLines lays out one marker line per hour between the first and last
// hour the entries touch, with each entry listed under the hour it starts in.
// It returns the lines and the line index of the cursor entry (-1 if none).
func TimelineLines(state TimelineState) ([]string, int) {
	if len(state.Entries) == 0 {
		return nil, -1
	}

	first := state.Entries[0].Start / 60
	last := first
	for _, e := range state.Entries {
		last = max(last, (max(e.End, e.Start+1)-1)/60)
	}
	last = min(last, 23)

	ruleW := max(state.InnerW-timelineGutter, 0)
	blockW := max(state.InnerW-timelineGutter-2, 1)

	lines := make([]string, 0, last-first+1+len(state.Entries))
	cursorLine := -1
	next := 0
	for hour := first; hour <= last; hour++ {
		marker := timeutil.Format(timeutil.FromMinutes(hour*60), state.Use24Hour)
		lines = append(lines,
			state.HourStyle.Width(timelineGutter).Render(marker)+
				state.RuleStyle.Render(strings.Repeat("─", ruleW)))

		for next < len(state.Entries) && (state.Entries[next].Start/60 == hour || hour == last) {
			e := state.Entries[next]
			style := e.Style
			if next == state.Cursor {
				style = state.CursorStyle
				cursorLine = len(lines)
			}
			text := runewidth.FillRight(runewidth.Truncate(" "+e.Text, blockW, "…"), blockW)
			lines = append(lines,
				state.HourStyle.Width(timelineGutter).Render("")+
					state.RuleStyle.Render("│ ")+
					style.Render(text))
			next++
		}
	}
	return lines, cursorLine
}

// RenderTimeline renders the visible window of the timeline.
func RenderTimeline(state TimelineState) string {
	if state.Height <= 0 {
		return ""
	}
	lines, _ := TimelineLines(state)
	start := min(max(state.Offset, 0), max(len(lines)-1, 0))
	end := min(start+state.Height, len(lines))
	visible := ""
	if start < end {
		visible = strings.Join(lines[start:end], "\n")
	}
	return Box(state.InnerW, state.Height, lipgloss.Top, visible, state.Bg)
}
