// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayplan/internal/config"
)

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ClearHighlightMsg is sent when the recently modified highlight expires.
// Seq identifies the mutation that scheduled it; stale ticks are ignored.
type ClearHighlightMsg struct {
	Seq int
}

// ConfigSavedMsg is sent after the configuration was written.
type ConfigSavedMsg struct {
	Use24Hour bool
}

// ClipboardCopiedMsg is sent after the schedule was copied.
type ClipboardCopiedMsg struct {
	Count int
}

// ConfigSaver persists a configuration.
type ConfigSaver func(*config.Config) error

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ClearHighlightAfter schedules a ClearHighlightMsg.
func ClearHighlightAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearHighlightMsg{Seq: seq}
	})
}

// SaveConfig writes cfg with save. The config is passed by value so the
// model can keep changing its own copy while the write runs.
func SaveConfig(save ConfigSaver, cfg config.Config) tea.Cmd {
	return func() tea.Msg {
		if save == nil {
			return ConfigSavedMsg{Use24Hour: cfg.Display.Use24Hour}
		}
		if err := save(&cfg); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving config: %w", err)}
		}
		return ConfigSavedMsg{Use24Hour: cfg.Display.Use24Hour}
	}
}

// CopyToClipboard copies text holding count activities to the system clipboard.
func CopyToClipboard(text string, count int) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return ClipboardCopiedMsg{Count: count}
	}
}
