package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/dayplan/internal/tui/theme"
)

func TestNewStyles_AllThemes(t *testing.T) {
	for _, name := range theme.Available() {
		t.Run(name, func(t *testing.T) {
			th, err := theme.Load(name)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", name, err)
			}
			s := NewStyles(th)
			if s.colorBg != lipgloss.Color(th.Bg) {
				t.Errorf("colorBg = %q, want %q", s.colorBg, th.Bg)
			}
			if s.ModalBgColor == "" {
				t.Error("ModalBgColor is empty")
			}
			if w := s.ModalStyle.GetWidth(); w != 64 {
				t.Errorf("modal width = %d, want 64", w)
			}
		})
	}
}

func TestStyles_CategoryColors(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prevProfile)
	})

	th, err := theme.Load(theme.DefaultName)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	s := NewStyles(th)

	career := s.BlockStyle("Career", false).Render("x")
	health := s.BlockStyle("Health", false).Render("x")
	if career == health {
		t.Error("different categories should render different blocks")
	}
	if past := s.BlockStyle("Career", true).Render("x"); past == career {
		t.Error("past blocks should be muted")
	}
	if got := s.CategoryStyle(s.RowStyle, "Career").GetForeground(); got == s.RowStyle.GetForeground() {
		t.Error("category style should recolor the text")
	}
}
