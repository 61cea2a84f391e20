package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel holds the title bar content.
type HeaderModel struct {
	InnerW     int
	Title      string
	Total      string // e.g. "Total scheduled: 3.5 hours"
	Badges     []string
	TitleStyle lipgloss.Style
	TotalStyle lipgloss.Style
	BadgeStyle lipgloss.Style
	Bg         lipgloss.Color
}

// RenderHeader renders the title on the left and the total and badges on the right.
func RenderHeader(model HeaderModel) string {
	left := model.TitleStyle.Render(model.Title)

	parts := make([]string, 0, len(model.Badges)+1)
	parts = append(parts, model.TotalStyle.Render(model.Total))
	for _, b := range model.Badges {
		parts = append(parts, model.BadgeStyle.Render(b))
	}
	gap := lipgloss.NewStyle().Background(model.Bg).Render("  ")
	right := strings.Join(parts, gap)

	space := model.InnerW - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return Pad(left, model.InnerW, 1, model.Bg)
	}
	filler := lipgloss.NewStyle().Background(model.Bg).Render(strings.Repeat(" ", space))
	return left + filler + right
}
