package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayplan/internal/tui/theme"
	"github.com/javiermolinar/dayplan/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	colorBg lipgloss.Color

	// Header
	TitleStyle lipgloss.Style
	TotalStyle lipgloss.Style
	BadgeStyle lipgloss.Style

	// List rows
	HeaderCellStyle  lipgloss.Style
	RowStyle         lipgloss.Style
	RowAltStyle      lipgloss.Style
	RowModifiedStyle lipgloss.Style
	CursorStyle      lipgloss.Style
	BorderStyle      lipgloss.Style
	EmptyStyle       lipgloss.Style

	// Timeline
	HourStyle lipgloss.Style
	RuleStyle lipgloss.Style

	// Footer
	StatsBarStyle      lipgloss.Style
	ConflictStyle      lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	StatusStyle        lipgloss.Style
	ErrorStyle         lipgloss.Style
	HelpStyle          lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalLabelFocusStyle   lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ModalTagStyle          lipgloss.Style
	ModalKeyStyle          lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{
		palette: palette,
		colorBg: palette.Bg,
	}

	base := lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.TitleStyle = base.
		Bold(true).
		Foreground(palette.Accent)

	s.TotalStyle = base.Bold(true)

	s.BadgeStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(palette.Accent).
		Padding(0, 1)

	s.HeaderCellStyle = base.
		Bold(true).
		Foreground(palette.Accent).
		Padding(0, 1)

	s.RowStyle = base.Padding(0, 1)

	s.RowAltStyle = s.RowStyle.Background(palette.RowBgAlt)

	s.RowModifiedStyle = s.RowStyle.
		Background(palette.ModifiedBg).
		Foreground(palette.TextOnModified).
		Bold(true)

	s.CursorStyle = s.RowStyle.
		Background(palette.BgSelection).
		Foreground(palette.Accent).
		Bold(true)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.EmptyStyle = base.
		Foreground(palette.FgMuted).
		Italic(true)

	s.HourStyle = base.Foreground(palette.Accent)

	s.RuleStyle = base.Foreground(palette.BgSelection)

	s.StatsBarStyle = base

	s.ConflictStyle = base.Foreground(palette.Modified)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.FgMuted).
		BorderBackground(palette.Bg).
		Background(palette.BgHighlight).
		Foreground(palette.Fg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(palette.Accent).
		BorderBackground(palette.Bg).
		Background(palette.BgSelection).
		Foreground(palette.Fg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = base.
		Foreground(palette.Modified).
		Bold(true)

	s.ErrorStyle = base.
		Foreground(palette.Error).
		Bold(true)

	s.HelpStyle = base.Foreground(palette.FgMuted)

	// Modal styles use the modal palette for contrast against the backdrop.
	modal := palette.Modal
	s.ModalBgColor = modal.Bg
	modalBase := lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		BorderBackground(modal.Bg).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 2).
		Width(64).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = modalBase.
		Bold(true).
		Padding(0, 1)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Background(modal.Bg)

	s.ModalTitleStyle = modalBase.Bold(true)

	s.ModalBodyStyle = modalBase

	s.ModalSectionTitleStyle = modalBase.
		Bold(true).
		Foreground(modal.Highlight)

	s.ModalLabelStyle = modalBase.
		Foreground(modal.Muted).
		Width(12)

	s.ModalLabelFocusStyle = modalBase.
		Foreground(modal.Highlight).
		Bold(true).
		Width(12)

	s.ModalInputTextStyle = modalBase

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = modalBase.Foreground(modal.Muted)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 2).
		Underline(true)

	s.ModalHintStyle = modalBase.Foreground(modal.Muted)

	s.ModalErrorStyle = modalBase.
		Foreground(palette.Error).
		Bold(true)

	s.ModalTagStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Muted).
		Padding(0, 1)

	s.ModalKeyStyle = modalBase.
		Foreground(modal.Highlight).
		Bold(true).
		Width(14)

	s.AppStyle = lipgloss.NewStyle().
		Background(palette.Bg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// CategoryStyle colors category text on a row background.
func (s *Styles) CategoryStyle(row lipgloss.Style, name string) lipgloss.Style {
	return row.Foreground(s.palette.Category(name).Fg)
}

// BlockStyle returns the timeline block style for a category.
func (s *Styles) BlockStyle(name string, past bool) lipgloss.Style {
	c := s.palette.Category(name)
	if past {
		c = s.palette.CategoryPast(name)
	}
	return lipgloss.NewStyle().
		Background(c.Bg).
		Foreground(c.Text)
}

func (s *Styles) modalChrome() view.ModalChrome {
	return view.ModalChrome{
		Box:          s.ModalStyle,
		Header:       s.ModalHeaderStyle,
		Title:        s.ModalTitleStyle,
		Danger:       s.ModalErrorStyle,
		Footer:       s.ModalFooterStyle,
		Body:         s.ModalBodyStyle,
		Button:       s.ModalButtonStyle,
		ButtonActive: s.ModalButtonActiveStyle,
	}
}

func (s *Styles) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         s.ModalBodyStyle,
		SectionTitleStyle: s.ModalSectionTitleStyle,
		LabelStyle:        s.ModalLabelStyle,
		LabelFocusStyle:   s.ModalLabelFocusStyle,
		HintStyle:         s.ModalHintStyle,
		ErrorStyle:        s.ModalErrorStyle,
		TagStyle:          s.ModalTagStyle,
		TagPrimaryStyle:   s.ModalButtonActiveStyle.UnsetUnderline().Padding(0, 1),
		TagSecondaryStyle: s.ModalSectionTitleStyle.Padding(0, 1),
		KeyStyle:          s.ModalKeyStyle,
	}
}
