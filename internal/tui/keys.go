package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/schedule"
	"github.com/javiermolinar/dayplan/internal/timeutil"
	"github.com/javiermolinar/dayplan/internal/tui/commands"
	"github.com/javiermolinar/dayplan/internal/tui/view"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "j", "down":
		m.cursor++
		m.ensureCursorVisible()
		return m, nil

	case "k", "up":
		m.cursor--
		m.ensureCursorVisible()
		return m, nil

	case "g", "home":
		m.cursor = 0
		m.ensureCursorVisible()
		return m, nil

	case "G", "end":
		m.cursor = m.engine.Len() - 1
		m.ensureCursorVisible()
		return m, nil

	case "a":
		m.openAddForm()
		return m, nil

	case "e", "enter":
		m.openEditForm()
		return m, nil

	case "d", "x":
		m.openConfirmDelete()
		return m, nil

	case "J", "shift+down":
		return m.swapWith(1)

	case "K", "shift+up":
		return m.swapWith(-1)

	case "s":
		return m.snapCurrent()

	case "tab":
		return m.setView(m.toggledView())

	case "t":
		return m.setClock(!m.use24Hour)

	case "y":
		list := m.engine.List()
		if len(list) == 0 {
			return m.setStatus("Nothing to copy")
		}
		return m, commands.CopyToClipboard(scheduleText(list, m.use24Hour), len(list))

	case "/":
		m.setMode(ModePrompt, "prompt_opened")
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		cmd := m.prompt.Focus()
		m.relayout()
		return m, cmd

	case "?":
		m.openModal(ModalHelp, "help")
		return m, nil
	}
	return m, nil
}

// handlePromptKeys handles keys while the command prompt is focused.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt("prompt_cancelled")
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt("prompt_submitted")
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := promptCommands.Complete(m.prompt.Value()); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			m.relayout()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.relayout()
	return m, cmd
}

func (m *Model) closePrompt(reason string) {
	m.setMode(ModeNormal, reason)
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.relayout()
}

// handleModalKeys dispatches keys to the open modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalActivityForm:
		return m.handleFormKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	default:
		switch msg.String() {
		case "esc", "enter", "q", "?":
			m.setMode(ModeNormal, "modal_closed")
		}
		return m, nil
	}
}

func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form
	switch msg.String() {
	case "esc":
		m.setMode(ModeNormal, "form_cancelled")
		return m, nil
	case "enter":
		return m.submitForm()
	case "tab", "down":
		f.setFocus(f.focus.Next())
		return m, nil
	case "shift+tab", "up":
		f.setFocus(f.focus.Prev())
		return m, nil
	}

	switch f.focus {
	case view.FieldCategory:
		switch msg.String() {
		case "left", "h":
			f.cyclePrimary(-1)
		case "right", "l":
			f.cyclePrimary(1)
		case "+", "=":
			f.addSecondary()
		case "-", "backspace":
			f.clearSecondary()
		}
		return m, nil
	case view.FieldImportant:
		switch msg.String() {
		case " ", "space", "x":
			f.important = !f.important
		}
		return m, nil
	}

	if in := f.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		f.err = ""
		return m, cmd
	}
	return m, nil
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.deleteID
		m.setMode(ModeNormal, "delete_confirmed")
		a, ok := m.engine.Get(id)
		if !ok || !m.engine.Delete(id) {
			return m.setError(fmt.Errorf("%w: id %d", schedule.ErrNotFound, id))
		}
		m.clampCursor()
		m.ensureCursorVisible()
		m.log.Info().Int("id", id).Str("label", a.Label).Msg("deleted activity")
		return m.setStatus(fmt.Sprintf("Deleted %q", a.Label))
	case "n", "esc", "q":
		m.setMode(ModeNormal, "delete_cancelled")
	}
	return m, nil
}

func (m *Model) openAddForm() {
	d := activity.Draft{
		Time:       m.scheduler.NextStart(m.engine.List(), m.clock()),
		Duration:   defaultFormDuration,
		Categories: []activity.Category{m.engine.Categories().Default()},
	}
	m.form = newActivityForm(m.styles, m.engine.Categories(), d, 0, m.use24Hour)
	m.openModal(ModalActivityForm, "add")
}

func (m *Model) openEditForm() {
	a, ok := m.current()
	if !ok {
		m.openAddForm()
		return
	}
	m.form = newActivityForm(m.styles, m.engine.Categories(), a.Draft(), a.ID, m.use24Hour)
	m.openModal(ModalActivityForm, "edit")
}

func (m *Model) openConfirmDelete() {
	a, ok := m.current()
	if !ok {
		return
	}
	m.deleteID = a.ID
	m.openModal(ModalConfirmDelete, "delete")
}

// submitForm validates the form and applies it to the engine. Errors keep
// the modal open and are shown inside it.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	d, err := m.form.draft(m.use24Hour)
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	var res schedule.Result
	verb := "Added"
	if m.form.editingID == 0 {
		res, err = m.engine.Add(d)
	} else {
		verb = "Updated"
		res, err = m.engine.Edit(m.form.editingID, d)
	}
	if err != nil {
		m.log.Debug().Err(err).Msg("form rejected")
		m.form.err = err.Error()
		return m, nil
	}

	m.setMode(ModeNormal, "form_submitted")
	return m.applyResult(res, fmt.Sprintf("%s %q at %s", verb, res.Activity.Label, timeutil.Format(res.Activity.Time, m.use24Hour)))
}

// swapWith exchanges the current activity with its neighbour at cursor+delta.
func (m Model) swapWith(delta int) (tea.Model, tea.Cmd) {
	list := m.engine.List()
	i, j := m.cursor, m.cursor+delta
	if i < 0 || i >= len(list) || j < 0 || j >= len(list) {
		return m, nil
	}
	res, err := m.engine.Reorder(list[i].ID, list[j].ID)
	if err != nil {
		return m.setError(err)
	}
	return m.applyResult(res, fmt.Sprintf("Swapped %q and %q", list[i].Label, list[j].Label))
}

func (m Model) snapCurrent() (tea.Model, tea.Cmd) {
	a, ok := m.current()
	if !ok {
		return m, nil
	}
	if m.cursor == 0 {
		return m.setStatus(fmt.Sprintf("%q is the first activity", a.Label))
	}
	res, err := m.engine.SnapToPrevious(a.ID)
	if err != nil {
		return m.setError(err)
	}
	return m.applyResult(res, fmt.Sprintf("Snapped %q to %s", a.Label, timeutil.Format(res.Activity.Time, m.use24Hour)))
}

func (m Model) toggledView() ViewKind {
	if m.viewKind == ViewList {
		return ViewTimeline
	}
	return ViewList
}

func (m Model) setView(v ViewKind) (tea.Model, tea.Cmd) {
	if m.viewKind != v {
		m.log.Debug().Stringer("view", v).Msg("view change")
	}
	m.viewKind = v
	m.scrollOffset = 0
	m.ensureCursorVisible()
	return m, nil
}

// setClock switches between 12 and 24 hour display and persists the choice.
func (m Model) setClock(use24Hour bool) (tea.Model, tea.Cmd) {
	m.use24Hour = use24Hour
	m.config.Display.Use24Hour = use24Hour
	return m, commands.SaveConfig(m.saveConfig, *m.config)
}
