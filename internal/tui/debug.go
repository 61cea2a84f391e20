package tui

import tea "github.com/charmbracelet/bubbletea"

func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.log.Debug().
		Str("key", msg.String()).
		Stringer("mode", m.mode).
		Int("cursor", m.cursor).
		Msg("key press")
}

// setMode switches mode and logs the transition.
func (m *Model) setMode(to Mode, reason string) {
	if m.mode != to {
		m.log.Debug().
			Stringer("from", m.mode).
			Stringer("to", to).
			Str("reason", reason).
			Msg("mode change")
	}
	m.mode = to
	if to != ModeModal {
		m.modalType = ModalNone
	}
}

func (m *Model) openModal(t ModalType, reason string) {
	m.setMode(ModeModal, reason)
	m.modalType = t
}
