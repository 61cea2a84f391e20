package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
)

const categoriesCol = 3

var listHeaders = []string{"", "Time", "Activity", "Categories", "Length"}

// ListRow is one activity in the list view with its resolved styles.
type ListRow struct {
	Activity activity.Activity
	Style    lipgloss.Style // cursor, recently modified or zebra
	Category lipgloss.Style // categories cell
}

// ListState holds the visible slice of the schedule for the list view.
type ListState struct {
	InnerW      int
	Height      int
	Rows        []ListRow
	Use24Hour   bool
	HeaderStyle lipgloss.Style
	BorderStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderList renders the activities as a bordered table: important marker,
// time range, label, categories and length.
func RenderList(state ListState) string {
	if state.Height <= 0 {
		return ""
	}

	labelW := max(state.InnerW-52, 12)
	cells := make([][]string, len(state.Rows))
	for i, r := range state.Rows {
		cells[i] = listCells(r.Activity, labelW, state.Use24Hour)
	}

	t := table.New().
		Headers(listHeaders...).
		Rows(cells...).
		Width(max(state.InnerW-2, 0)).
		Height(state.Height).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(state.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return state.HeaderStyle
			case row < 0 || row >= len(state.Rows):
				return lipgloss.NewStyle()
			case col == categoriesCol:
				return state.Rows[row].Category
			default:
				return state.Rows[row].Style
			}
		})

	return Box(state.InnerW, state.Height, lipgloss.Top, t.Render(), state.Bg)
}

func listCells(a activity.Activity, labelW int, use24Hour bool) []string {
	marker := " "
	if a.Important {
		marker = "!"
	}
	return []string{
		marker,
		timeutil.FormatRange(a.Time, a.Duration, use24Hour),
		runewidth.Truncate(a.Label, labelW, "…"),
		activity.JoinCategories(a.Categories),
		timeutil.FormatDuration(a.Duration),
	}
}
