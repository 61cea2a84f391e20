package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayplan/internal/schedule"
	"github.com/javiermolinar/dayplan/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case commands.ErrMsg:
		return m.setError(msg.Err)

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if !m.clock().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusError = false
		}
		return m, nil

	case commands.ClearHighlightMsg:
		// A newer mutation owns the highlight.
		if msg.Seq == m.highlightSeq {
			m.engine.ClearModified()
		}
		return m, nil

	case commands.ConfigSavedMsg:
		clock := "12-hour"
		if msg.Use24Hour {
			clock = "24-hour"
		}
		return m.setStatus("Using " + clock + " clock")

	case commands.ClipboardCopiedMsg:
		return m.setStatus(fmt.Sprintf("Copied %s to clipboard", plural(msg.Count, "activity", "activities")))
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyResult records a successful mutation: the cursor follows the
// targeted activity, resolved overlaps are reported, and the highlight of
// modified rows is scheduled to clear.
func (m Model) applyResult(res schedule.Result, status string) (tea.Model, tea.Cmd) {
	if res.Activity.ID != 0 {
		m.focusActivity(res.Activity.ID)
	}
	m.ensureCursorVisible()

	if n := len(res.Conflicts); n > 0 {
		m.lastConflict = conflictText(res.Conflicts[n-1], m.use24Hour)
		status += fmt.Sprintf(" (resolved %s)", plural(n, "overlap", "overlaps"))
	}
	m.log.Info().
		Int("id", res.Activity.ID).
		Ints("modified", res.Modified).
		Int("conflicts", len(res.Conflicts)).
		Msg(status)

	m.highlightSeq++
	var highlight tea.Cmd
	if d := m.highlightDuration(); d > 0 {
		highlight = commands.ClearHighlightAfter(d, m.highlightSeq)
	} else {
		m.engine.ClearModified()
	}

	updated, statusCmd := m.setStatus(status)
	return updated, tea.Batch(highlight, statusCmd)
}

// setStatus shows a transient status message.
func (m Model) setStatus(msg string) (Model, tea.Cmd) {
	m.statusMsg = msg
	m.statusError = false
	m.statusTime = m.clock().Add(statusDuration)
	return m, clearStatusAfter(statusDuration)
}

// setError shows an error in the status line.
func (m Model) setError(err error) (Model, tea.Cmd) {
	m.log.Warn().Err(err).Msg("operation failed")
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusError = true
	m.statusTime = m.clock().Add(errorDuration)
	return m, clearStatusAfter(errorDuration)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}
