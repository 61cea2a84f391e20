package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/schedule"
	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// Layout constants for footer sizing.
const (
	footerCompact = 2 // status + help

	footerBaseLines       = 4 // stats + conflict + status + help
	promptBorderLines     = 2
	promptMinContentLines = 1

	footerMinHeight     = footerBaseLines + promptBorderLines + promptMinContentLines
	footerFullMinHeight = 15

	headerLines = 2 // title row + blank line

	// tableChromeLines is the top border, header row, header rule and bottom border.
	tableChromeLines = 4
)

// current returns the activity under the cursor.
func (m Model) current() (activity.Activity, bool) {
	list := m.engine.List()
	if m.cursor < 0 || m.cursor >= len(list) {
		return activity.Activity{}, false
	}
	return list[m.cursor], true
}

// clampCursor keeps the cursor inside the list.
func (m *Model) clampCursor() {
	n := m.engine.Len()
	m.cursor = min(max(m.cursor, 0), max(n-1, 0))
}

// focusActivity moves the cursor onto the activity with id.
func (m *Model) focusActivity(id int) {
	for i, a := range m.engine.List() {
		if a.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}

// visibleRows is the number of list rows that fit in the body.
func (m Model) visibleRows() int {
	return max(m.layoutCache.BodyH-tableChromeLines, 1)
}

// ensureCursorVisible adjusts the scroll offset so the cursor stays on screen.
func (m *Model) ensureCursorVisible() {
	m.clampCursor()

	if m.viewKind == ViewTimeline {
		lines, cursorLine := m.timelineLines()
		height := max(m.layoutCache.BodyH, 1)
		if cursorLine >= 0 {
			if cursorLine < m.scrollOffset {
				m.scrollOffset = cursorLine
			} else if cursorLine >= m.scrollOffset+height {
				m.scrollOffset = cursorLine - height + 1
			}
		}
		m.scrollOffset = min(max(m.scrollOffset, 0), max(len(lines)-height, 0))
		return
	}

	rows := m.visibleRows()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+rows {
		m.scrollOffset = m.cursor - rows + 1
	}
	m.scrollOffset = min(max(m.scrollOffset, 0), max(m.engine.Len()-rows, 0))
}

func (m Model) isPast(a activity.Activity) bool {
	now := m.clock()
	return a.End() <= now.Hour()*60+now.Minute()
}

// conflictText renders a resolved overlap for the footer.
func conflictText(c schedule.Conflict, use24Hour bool) string {
	return fmt.Sprintf("%s (%s) overlapped %s (%s), moved to %s",
		c.Later,
		timeutil.Format(c.OriginalTime, use24Hour),
		c.Earlier,
		timeutil.Format(c.EarlierTime, use24Hour),
		timeutil.Format(c.ResolvedTime, use24Hour))
}

// scheduleText renders the schedule as plain text for the clipboard.
func scheduleText(list []activity.Activity, use24Hour bool) string {
	var b strings.Builder
	for _, a := range list {
		b.WriteString(timeutil.FormatRange(a.Time, a.Duration, use24Hour))
		b.WriteString("  ")
		b.WriteString(a.Label)
		if a.Important {
			b.WriteString(" !")
		}
		fmt.Fprintf(&b, " [%s]\n", activity.JoinCategories(a.Categories))
	}
	return b.String()
}

// plural formats a count with the singular or plural noun.
func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
