package view

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormField identifies a field of the activity form.
type FormField int

const (
	FieldTime FormField = iota
	FieldDuration
	FieldLabel
	FieldCategory
	FieldImportant
	formFieldCount
)

// Next returns the field after f, wrapping around.
func (f FormField) Next() FormField {
	return (f + 1) % formFieldCount
}

// Prev returns the field before f, wrapping around.
func (f FormField) Prev() FormField {
	return (f + formFieldCount - 1) % formFieldCount
}

// ActivityFormModel contains the fields needed to render the activity form body.
type ActivityFormModel struct {
	TimeInput     string // rendered text input
	TimeHint      string // how the current input will be read
	DurationInput string
	DurationHint  string
	LabelInput    string
	Categories    []string
	Primary       int   // index into Categories
	Secondary     []int // extra tags, indexes into Categories
	Important     bool
	Focus         FormField
	Error         string
	MaxWidth      int // wrap width for the category row
}

// ActivityFormStyles groups styles for the activity form body.
type ActivityFormStyles struct {
	BodyStyle         lipgloss.Style
	LabelStyle        lipgloss.Style
	LabelFocusStyle   lipgloss.Style
	HintStyle         lipgloss.Style
	ErrorStyle        lipgloss.Style
	TagStyle          lipgloss.Style
	TagPrimaryStyle   lipgloss.Style
	TagSecondaryStyle lipgloss.Style
}

// RenderActivityFormBody renders the modal body for adding or editing an activity.
func RenderActivityFormBody(model ActivityFormModel, styles ActivityFormStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render("  ")

	label := func(f FormField, text string) string {
		if model.Focus == f {
			return styles.LabelFocusStyle.Render("› " + text)
		}
		return styles.LabelStyle.Render("  " + text)
	}

	body.WriteString(label(FieldTime, "TIME") + model.TimeInput + sep + styles.HintStyle.Render(model.TimeHint) + "\n")
	body.WriteString(label(FieldDuration, "MINUTES") + model.DurationInput + sep + styles.HintStyle.Render(model.DurationHint) + "\n")
	body.WriteString(label(FieldLabel, "ACTIVITY") + model.LabelInput + "\n\n")

	body.WriteString(label(FieldCategory, "CATEGORY") + "\n")
	tags := make([]string, 0, len(model.Categories))
	for i, name := range model.Categories {
		switch {
		case i == model.Primary:
			tags = append(tags, styles.TagPrimaryStyle.Render(name))
		case slices.Contains(model.Secondary, i):
			tags = append(tags, styles.TagSecondaryStyle.Render("+"+name))
		default:
			tags = append(tags, styles.TagStyle.Render(name))
		}
	}
	for _, line := range wrapTags(tags, sep, model.MaxWidth) {
		body.WriteString(styles.BodyStyle.Render("  ") + line + "\n")
	}
	if model.Focus == FieldCategory {
		body.WriteString(styles.HintStyle.Render("  ←/→ primary  + add tag  - clear tags") + "\n")
	}
	body.WriteString("\n")

	check := "[ ]"
	if model.Important {
		check = "[x]"
	}
	body.WriteString(label(FieldImportant, "IMPORTANT") + styles.BodyStyle.Render(check))
	if model.Focus == FieldImportant {
		body.WriteString(sep + styles.HintStyle.Render("space to toggle"))
	}

	if model.Error != "" {
		body.WriteString("\n\n" + styles.ErrorStyle.Render(model.Error))
	}

	return body.String()
}

// wrapTags joins rendered tags into lines no wider than maxWidth.
func wrapTags(tags []string, sep string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{strings.Join(tags, sep)}
	}
	var lines []string
	var line string
	for _, tag := range tags {
		if line == "" {
			line = tag
			continue
		}
		if lipgloss.Width(line)+lipgloss.Width(sep)+lipgloss.Width(tag) > maxWidth {
			lines = append(lines, line)
			line = tag
			continue
		}
		line += sep + tag
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// ConfirmDeleteModel contains the fields needed to render the confirm delete body.
type ConfirmDeleteModel struct {
	Label       string
	TimeRange   string
	HasActivity bool
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle lipgloss.Style
	HintStyle lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	if model.HasActivity {
		body.WriteString(styles.BodyStyle.Render(fmt.Sprintf("%q", model.Label)) + "\n")
		body.WriteString(styles.BodyStyle.Render(model.TimeRange) + "\n\n")
	}
	body.WriteString(styles.BodyStyle.Render("Delete this activity?") + "\n")
	body.WriteString(styles.HintStyle.Render("Other activities keep their times."))

	return body.String()
}

// HelpEntry is one key binding shown in the help modal.
type HelpEntry struct {
	Keys        string
	Description string
}

// HelpStyles groups styles for the help body.
type HelpStyles struct {
	BodyStyle         lipgloss.Style
	KeyStyle          lipgloss.Style
	SectionTitleStyle lipgloss.Style
}

// RenderHelpBody renders key bindings followed by prompt commands.
func RenderHelpBody(keys, commands []HelpEntry, styles HelpStyles) string {
	var body strings.Builder
	write := func(title string, entries []HelpEntry) {
		body.WriteString(styles.SectionTitleStyle.Render(title) + "\n")
		for _, e := range entries {
			body.WriteString(styles.KeyStyle.Render(e.Keys) + styles.BodyStyle.Render(e.Description) + "\n")
		}
	}
	write("KEYS", keys)
	if len(commands) > 0 {
		body.WriteString("\n")
		write("COMMANDS", commands)
	}
	return strings.TrimSuffix(body.String(), "\n")
}
