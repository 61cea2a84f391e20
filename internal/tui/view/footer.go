package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterStyles styles each footer line.
type FooterStyles struct {
	Stats         lipgloss.Style
	Overlap       lipgloss.Style
	Status        lipgloss.Style
	Help          lipgloss.Style
	Prompt        lipgloss.Style
	PromptFocused lipgloss.Style
}

// Footer is the bottom of the screen: hours per category, the last resolved
// overlap, the command prompt, the status line and key help.
type Footer struct {
	InnerW        int
	Height        int
	Compact       bool // only the status and help lines fit
	Stats         string
	Overlap       string
	Status        string
	Help          string
	Prompt        []string
	PromptRows    int  // height kept by the prompt box while it is hidden
	PromptFocused bool
	PromptHidden  bool // a modal is open
	Styles        FooterStyles
	Bg            lipgloss.Color
}

// RenderFooter renders the footer bottom-aligned in its area.
func RenderFooter(f Footer) string {
	if f.Height <= 0 {
		return ""
	}

	var rows []string
	if !f.Compact {
		var prompt string
		switch {
		case f.PromptHidden:
			prompt = RenderPrompt(f.InnerW, f.Styles.Prompt, nil, f.PromptRows)
		case f.PromptFocused:
			prompt = RenderPrompt(f.InnerW, f.Styles.PromptFocused, f.Prompt, 1)
		default:
			prompt = RenderPrompt(f.InnerW, f.Styles.Prompt, f.Prompt, 1)
		}
		rows = append(rows,
			fitLine(f.InnerW, f.Styles.Stats, f.Stats),
			fitLine(f.InnerW, f.Styles.Overlap, f.Overlap),
			prompt)
	}
	rows = append(rows,
		fitLine(f.InnerW, f.Styles.Status, f.Status),
		fitLine(f.InnerW, f.Styles.Help, f.Help))

	return Box(f.InnerW, f.Height, lipgloss.Bottom, strings.Join(rows, "\n"), f.Bg)
}

// fitLine renders s on one line of the given outer width, cutting what does not fit.
func fitLine(width int, style lipgloss.Style, s string) string {
	frameW, _ := style.GetFrameSize()
	w := max(width-frameW, 0)
	if w > 0 {
		s = ansi.Truncate(s, w, "")
	}
	return style.Width(w).Render(s)
}
