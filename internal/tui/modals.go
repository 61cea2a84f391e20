package tui

import (
	"github.com/javiermolinar/dayplan/internal/timeutil"
	"github.com/javiermolinar/dayplan/internal/tui/view"
)

var helpKeys = []view.HelpEntry{
	{Keys: "j / k", Description: "move the cursor"},
	{Keys: "a", Description: "add an activity"},
	{Keys: "e / enter", Description: "edit the selected activity"},
	{Keys: "d", Description: "delete the selected activity"},
	{Keys: "J / K", Description: "swap with the next or previous activity"},
	{Keys: "s", Description: "snap to the end of the previous activity"},
	{Keys: "tab", Description: "toggle list and timeline"},
	{Keys: "t", Description: "toggle 12/24 hour clock"},
	{Keys: "y", Description: "copy the schedule"},
	{Keys: "/", Description: "command prompt"},
	{Keys: "q", Description: "quit"},
}

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalActivityForm:
		return m.renderActivityFormModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	case ModalHelp:
		return m.renderHelpModal()
	default:
		return ""
	}
}

func (m Model) renderActivityFormModal() string {
	title := "Add Activity"
	if m.form.editingID != 0 {
		title = "Edit Activity"
	}
	frameW, _ := m.styles.ModalStyle.GetFrameSize()
	maxWidth := m.styles.ModalStyle.GetWidth() - frameW
	body := view.RenderActivityFormBody(m.form.viewModel(m.use24Hour, maxWidth), m.styles.modalStyleSet().ActivityFormStyles())
	return view.RenderModal(view.Modal{
		Kind:    view.ModalForm,
		Title:   title,
		Body:    body,
		Editing: m.form.editingID != 0,
	}, m.styles.modalChrome())
}

func (m Model) renderConfirmDeleteModal() string {
	model := view.ConfirmDeleteModel{}
	if a, ok := m.engine.Get(m.deleteID); ok {
		model = view.ConfirmDeleteModel{
			Label:       a.Label,
			TimeRange:   timeutil.FormatRange(a.Time, a.Duration, m.use24Hour),
			HasActivity: true,
		}
	}
	body := view.RenderConfirmDeleteBody(model, m.styles.modalStyleSet().ConfirmDeleteStyles())
	return view.RenderModal(view.Modal{Kind: view.ModalConfirm, Title: "Delete Activity", Body: body}, m.styles.modalChrome())
}

func (m Model) renderHelpModal() string {
	cmds := make([]view.HelpEntry, len(promptCommands))
	for i, c := range promptCommands {
		cmds[i] = view.HelpEntry{Keys: c.Name, Description: c.Description}
	}
	body := view.RenderHelpBody(helpKeys, cmds, m.styles.modalStyleSet().HelpStyles())
	return view.RenderModal(view.Modal{Kind: view.ModalHelp, Title: "Help", Body: body}, m.styles.modalChrome())
}
