package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
	"github.com/javiermolinar/dayplan/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	f := view.Frame{
		Width:       m.width,
		Height:      m.height,
		Body:        m.renderAppContent(),
		ModalBg:     m.styles.ModalBgColor,
		Placeholder: "Loading...",
	}
	if m.mode == ModeModal && m.modalType != ModalNone {
		f.Modal = m.renderModal()
	}
	return f.String()
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	header := view.RenderHeader(m.headerModel(layout))
	spacer := view.Box(layout.InnerW, 1, lipgloss.Top, "", m.styles.colorBg)

	var body string
	switch {
	case m.engine.Len() == 0:
		body = view.Box(layout.InnerW, layout.BodyH, lipgloss.Center,
			m.styles.EmptyStyle.Render("No activities yet. Press a or type /add to plan your day."),
			m.styles.colorBg)
	case m.viewKind == ViewTimeline:
		body = view.RenderTimeline(m.timelineState(layout))
	default:
		body = view.RenderList(m.listState(layout))
	}

	footer := view.RenderFooter(m.footer(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, header, spacer, body, footer)
	app := m.styles.AppStyle.Render(content)
	return view.Pad(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) headerModel(layout LayoutCache) view.HeaderModel {
	stats := m.engine.Stats()
	clock := "24h"
	if !m.use24Hour {
		clock = "12h"
	}
	return view.HeaderModel{
		InnerW:     layout.InnerW,
		Title:      "dayplan",
		Total:      fmt.Sprintf("Total scheduled: %s hours", stats.TotalHours),
		Badges:     []string{m.viewKind.String(), clock},
		TitleStyle: m.styles.TitleStyle,
		TotalStyle: m.styles.TotalStyle,
		BadgeStyle: m.styles.BadgeStyle,
		Bg:         m.styles.colorBg,
	}
}

// rowStyle picks the style for list row i.
func (m Model) rowStyle(i int, a activity.Activity) lipgloss.Style {
	switch {
	case i == m.cursor:
		return m.styles.CursorStyle
	case m.engine.IsModified(a.ID):
		return m.styles.RowModifiedStyle
	case i%2 == 1:
		return m.styles.RowAltStyle
	default:
		return m.styles.RowStyle
	}
}

func (m Model) listState(layout LayoutCache) view.ListState {
	list := m.engine.List()
	start := min(m.scrollOffset, len(list))
	end := min(start+m.visibleRows(), len(list))

	rows := make([]view.ListRow, 0, end-start)
	for i := start; i < end; i++ {
		a := list[i]
		style := m.rowStyle(i, a)
		row := view.ListRow{Activity: a, Style: style, Category: style}
		if i != m.cursor && !m.engine.IsModified(a.ID) {
			row.Category = m.styles.CategoryStyle(style, string(a.Primary()))
		}
		rows = append(rows, row)
	}

	return view.ListState{
		InnerW:      layout.InnerW,
		Height:      layout.BodyH,
		Rows:        rows,
		Use24Hour:   m.use24Hour,
		HeaderStyle: m.styles.HeaderCellStyle,
		BorderStyle: m.styles.BorderStyle,
		Bg:          m.styles.colorBg,
	}
}

func (m Model) timelineState(layout LayoutCache) view.TimelineState {
	list := m.engine.List()
	entries := make([]view.TimelineEntry, len(list))
	for i, a := range list {
		style := m.styles.BlockStyle(string(a.Primary()), m.isPast(a))
		if m.engine.IsModified(a.ID) {
			style = m.styles.RowModifiedStyle.UnsetPadding()
		}
		text := timeutil.FormatRange(a.Time, a.Duration, m.use24Hour) + "  " + a.Label
		if a.Important {
			text += " !"
		}
		entries[i] = view.TimelineEntry{
			Start: a.Start(),
			End:   a.End(),
			Text:  text,
			Style: style,
		}
	}
	return view.TimelineState{
		InnerW:      layout.InnerW,
		Height:      layout.BodyH,
		Offset:      m.scrollOffset,
		Entries:     entries,
		Cursor:      m.cursor,
		Use24Hour:   m.use24Hour,
		HourStyle:   m.styles.HourStyle,
		RuleStyle:   m.styles.RuleStyle,
		CursorStyle: m.styles.CursorStyle.UnsetPadding(),
		Bg:          m.styles.colorBg,
	}
}

func (m Model) timelineLines() ([]string, int) {
	return view.TimelineLines(m.timelineState(m.layoutCache))
}

func (m Model) footer(layout LayoutCache) view.Footer {
	rows := m.promptMaxContentLines()
	styles := layout.Footer
	if m.statusError {
		styles.Status = layout.ErrorStyle
	}
	return view.Footer{
		InnerW:        layout.InnerW,
		Height:        layout.FooterH,
		Compact:       layout.FooterH < footerMinHeight,
		Stats:         m.statsText(),
		Overlap:       m.conflictLine(),
		Status:        m.statusMsgOrDefault(),
		Help:          m.helpText(),
		Prompt:        view.ClampPromptLines(m.promptLines(layout.PromptWidth), rows, layout.PromptWidth),
		PromptRows:    rows,
		PromptFocused: m.mode == ModePrompt,
		PromptHidden:  m.mode == ModeModal,
		Styles:        styles,
		Bg:            m.styles.colorBg,
	}
}

// statsText renders per-category hours, e.g. "Career 1.5h | Health 0.5h".
func (m Model) statsText() string {
	stats := m.engine.Stats()
	if len(stats.CategoryHours) == 0 {
		return "No time scheduled"
	}
	parts := make([]string, len(stats.CategoryHours))
	for i, c := range stats.CategoryHours {
		parts[i] = fmt.Sprintf("%s %sh", c.Category, c.Hours)
	}
	return strings.Join(parts, " | ")
}

func (m Model) conflictLine() string {
	if m.lastConflict == "" {
		return "No overlaps"
	}
	return "Last overlap: " + m.lastConflict
}

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

func (m Model) helpText() string {
	switch m.mode {
	case ModePrompt:
		return "Enter: run | Tab: complete | Esc: cancel"
	case ModeModal:
		switch m.modalType {
		case ModalActivityForm:
			return "Tab: next field | ←/→: category | Enter: save | Esc: cancel"
		case ModalConfirmDelete:
			return "y/Enter: delete | n/Esc: cancel"
		default:
			return "Esc: close"
		}
	default:
		return "j/k: move | a: add | e: edit | d: delete | J/K: swap | s: snap | tab: view | t: 12/24h | y: copy | /: commands | ?: help | q: quit"
	}
}
