package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayplan/internal/tui/view"
)

// LayoutCache holds the screen areas and footer styles for the current
// window size. It is rebuilt on resize and whenever the prompt grows.
type LayoutCache struct {
	InnerW int
	InnerH int

	FooterH int
	BodyH   int

	// Footer line styles sized to InnerW. Footer.Status is the normal
	// status style; ErrorStyle replaces it after a failed command.
	Footer     view.FooterStyles
	ErrorStyle lipgloss.Style

	PromptWidth int
}

// promptWidth is the usable width inside the prompt border, never narrower
// than 20 columns when the screen allows it.
func promptWidth(styles *Styles, innerW int) int {
	frameW, _ := styles.PromptStyle.GetFrameSize()
	w := max(innerW-frameW, 0)
	if w < 20 && innerW >= frameW+20 {
		w = 20
	}
	return w
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	s := m.styles
	frameW, frameH := s.AppStyle.GetFrameSize()
	innerW := max(width-frameW, 0)
	innerH := max(height-frameH, 0)
	pw := promptWidth(s, innerW)

	footerH := footerCompact
	if innerH >= footerFullMinHeight {
		footerH = m.fullFooterHeight(innerH, pw)
	}

	line := lipgloss.NewStyle().Width(innerW).Background(s.colorBg)

	return LayoutCache{
		InnerW:  innerW,
		InnerH:  innerH,
		FooterH: footerH,
		BodyH:   max(innerH-headerLines-footerH, 2),
		Footer: view.FooterStyles{
			Stats:         line.Inherit(s.StatsBarStyle),
			Overlap:       line.Inherit(s.ConflictStyle),
			Status:        s.StatusStyle.Inherit(line),
			Help:          s.HelpStyle.Inherit(line),
			Prompt:        s.PromptStyle.Width(pw),
			PromptFocused: s.PromptFocusedStyle.Width(pw),
		},
		ErrorStyle:  s.ErrorStyle.Inherit(line),
		PromptWidth: pw,
	}
}

// relayout recomputes the layout after a size or prompt change.
func (m *Model) relayout() {
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	m.ensureCursorVisible()
}
