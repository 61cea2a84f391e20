package ui

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/schedule"
	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// PrintOpts configures schedule printing.
type PrintOpts struct {
	Use24Hour     bool
	Highlight     []int // ids marked as changed by the last load
	MaxLabelWidth int   // 0 = derive from terminal width
}

// rowOverhead approximates the table columns other than the label.
const rowOverhead = 50

func (o PrintOpts) labelWidth() int {
	if o.MaxLabelWidth > 0 {
		return o.MaxLabelWidth
	}
	return min(max(termWidth()-rowOverhead, 16), 48)
}

// PrintSchedule writes the activities as a bordered table.
func PrintSchedule(w io.Writer, list []activity.Activity, opts PrintOpts) {
	if len(list) == 0 {
		fmt.Fprintln(w, formatMuted("No activities scheduled."))
		return
	}

	width := opts.labelWidth()
	rows := make([][]string, 0, len(list))
	for _, a := range list {
		rows = append(rows, []string{
			marker(a, opts.Highlight),
			timeutil.FormatRange(a.Time, a.Duration, opts.Use24Hour),
			runewidth.Truncate(a.Label, width, "…"),
			formatCategories(a.Categories),
			timeutil.FormatDuration(a.Duration),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderRow(false).
		Headers("", "Time", "Activity", "Categories", "Length").
		Rows(rows...).
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}

// marker returns the leading cell: "*" for changed rows, "!" for important ones.
func marker(a activity.Activity, highlight []int) string {
	var b strings.Builder
	if slices.Contains(highlight, a.ID) {
		b.WriteString(colorModified.Sprint("*"))
	}
	if a.Important {
		b.WriteString(colorImportant.Sprint("!"))
	}
	return b.String()
}

func formatCategories(cats []activity.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = formatCategory(c)
	}
	return strings.Join(parts, ", ")
}

// PrintStats writes the total and the per-category breakdown.
func PrintStats(w io.Writer, stats schedule.Stats) {
	fmt.Fprintf(w, "Total scheduled: %s\n", formatStats(stats.TotalHours+" hours"))
	if len(stats.CategoryHours) == 0 {
		return
	}
	parts := make([]string, len(stats.CategoryHours))
	for i, ch := range stats.CategoryHours {
		parts[i] = fmt.Sprintf("%s %sh", formatCategory(ch.Category), ch.Hours)
	}
	fmt.Fprintf(w, "  %s\n", strings.Join(parts, formatMuted(" | ")))
}

// PrintConflicts writes one line per resolved overlap.
func PrintConflicts(w io.Writer, conflicts []schedule.Conflict, use24Hour bool) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, formatMuted("No overlaps."))
		return
	}
	noun := "overlaps"
	if len(conflicts) == 1 {
		noun = "overlap"
	}
	fmt.Fprintf(w, "Resolved %d %s:\n", len(conflicts), noun)
	for _, c := range conflicts {
		fmt.Fprintf(w, "  %s %s\n", colorConflict.Sprint("→"), ConflictLine(c, use24Hour))
	}
}

// ConflictLine renders a conflict with times in the requested clock format.
func ConflictLine(c schedule.Conflict, use24Hour bool) string {
	return fmt.Sprintf("%s (%s) overlapped %s (%s), moved to %s",
		c.Later, timeutil.Format(c.OriginalTime, use24Hour),
		c.Earlier, timeutil.Format(c.EarlierTime, use24Hour),
		timeutil.Format(c.ResolvedTime, use24Hour))
}

func clockName(use24Hour bool) string {
	if use24Hour {
		return "24h"
	}
	return "12h"
}
