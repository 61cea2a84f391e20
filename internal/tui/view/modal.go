package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ModalKind identifies which modal is open.
type ModalKind int

const (
	ModalForm    ModalKind = iota // add or edit an activity
	ModalConfirm                  // confirm deleting an activity
	ModalHelp
)

// ModalChrome styles the box around a modal body.
type ModalChrome struct {
	Box          lipgloss.Style
	Header       lipgloss.Style
	Title        lipgloss.Style
	Danger       lipgloss.Style // title of the delete confirmation
	Footer       lipgloss.Style
	Body         lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// Modal is a modal ready to draw.
type Modal struct {
	Kind    ModalKind
	Title   string
	Body    string
	Editing bool // form only: submit saves an existing activity
}

// Actions returns the button labels for the modal. The first one is what
// Enter does.
func (m Modal) Actions() []string {
	switch m.Kind {
	case ModalForm:
		submit := "[Enter] Add"
		if m.Editing {
			submit = "[Enter] Save"
		}
		return []string{submit, "[Tab] Next", "[Esc] Cancel"}
	case ModalConfirm:
		return []string{"[y/Enter] Delete", "[n/Esc] Cancel"}
	default:
		return []string{"[Esc] Close"}
	}
}

// RenderModal draws the title bar, the body and the action buttons.
func RenderModal(m Modal, c ModalChrome) string {
	title := c.Title
	if m.Kind == ModalConfirm {
		title = c.Danger
	}

	parts := []string{c.Header.Render(title.Render(m.Title))}
	if m.Body != "" {
		parts = append(parts, m.Body)
	}
	parts = append(parts, c.Footer.Render(modalButtons(m.Actions(), c)))
	return c.Box.Render(strings.Join(parts, "\n\n"))
}

func modalButtons(labels []string, c ModalChrome) string {
	buttons := make([]string, len(labels))
	for i, label := range labels {
		style := c.Button
		if i == 0 {
			style = c.ButtonActive
		}
		buttons[i] = style.Render(label)
	}
	return strings.Join(buttons, c.Body.Render(" "))
}
