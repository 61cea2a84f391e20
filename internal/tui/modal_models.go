package tui

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
	"github.com/javiermolinar/dayplan/internal/tui/view"
)

const defaultFormDuration = 30

var errInvalidDuration = errors.New("minutes must be a whole number")

// activityForm is the state of the add/edit modal.
type activityForm struct {
	editingID  int // 0 when adding
	categories []activity.Category
	timeInput  textinput.Model
	duration   textinput.Model
	label      textinput.Model
	focus      view.FormField
	primary    int
	secondary  []int
	important  bool
	err        string
}

func newTextInput(styles *Styles, placeholder string, width, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = width
	ti.PlaceholderStyle = styles.ModalPlaceholderStyle
	ti.TextStyle = styles.ModalInputTextStyle
	ti.PromptStyle = styles.ModalInputTextStyle
	ti.Cursor.Style = styles.ModalInputCursorStyle
	ti.Cursor.TextStyle = styles.ModalInputTextStyle
	return ti
}

// newActivityForm builds a form prefilled from d. The time is shown on the
// active clock so it can be submitted unchanged.
func newActivityForm(styles *Styles, set activity.CategorySet, d activity.Draft, editingID int, use24Hour bool) activityForm {
	f := activityForm{
		editingID:  editingID,
		categories: set.All(),
		timeInput:  newTextInput(styles, "9, 930, 14:30, 2pm", 12, 10),
		duration:   newTextInput(styles, "30", 6, 4),
		label:      newTextInput(styles, "What are you doing?", 40, 120),
		important:  d.Important,
	}

	if d.Time != "" {
		f.timeInput.SetValue(timeutil.Format(d.Time, use24Hour))
	}
	if d.Duration > 0 {
		f.duration.SetValue(strconv.Itoa(d.Duration))
	}
	f.label.SetValue(d.Label)

	primary := set.Default()
	if len(d.Categories) > 0 {
		primary = d.Categories[0]
	}
	f.primary = max(slices.Index(f.categories, primary), 0)
	for _, c := range d.Categories[min(1, len(d.Categories)):] {
		if i := slices.Index(f.categories, c); i >= 0 {
			f.secondary = append(f.secondary, i)
		}
	}

	f.setFocus(view.FieldTime)
	return f
}

func (f *activityForm) setFocus(field view.FormField) {
	f.focus = field
	f.timeInput.Blur()
	f.duration.Blur()
	f.label.Blur()
	switch field {
	case view.FieldTime:
		f.timeInput.Focus()
		f.timeInput.CursorEnd()
	case view.FieldDuration:
		f.duration.Focus()
		f.duration.CursorEnd()
	case view.FieldLabel:
		f.label.Focus()
		f.label.CursorEnd()
	}
}

// focusedInput returns the text input that receives typed keys, if any.
func (f *activityForm) focusedInput() *textinput.Model {
	switch f.focus {
	case view.FieldTime:
		return &f.timeInput
	case view.FieldDuration:
		return &f.duration
	case view.FieldLabel:
		return &f.label
	default:
		return nil
	}
}

// cyclePrimary moves the primary category by delta, wrapping around.
// A secondary tag that becomes primary is dropped from the tags.
func (f *activityForm) cyclePrimary(delta int) {
	n := len(f.categories)
	if n == 0 {
		return
	}
	f.primary = ((f.primary+delta)%n + n) % n
	f.secondary = slices.DeleteFunc(f.secondary, func(i int) bool { return i == f.primary })
}

// addSecondary tags the next category after the last chosen one that is
// not already selected.
func (f *activityForm) addSecondary() {
	n := len(f.categories)
	from := f.primary
	if len(f.secondary) > 0 {
		from = f.secondary[len(f.secondary)-1]
	}
	for step := 1; step < n; step++ {
		i := (from + step) % n
		if i != f.primary && !slices.Contains(f.secondary, i) {
			f.secondary = append(f.secondary, i)
			return
		}
	}
}

func (f *activityForm) clearSecondary() {
	f.secondary = nil
}

// selectedCategories returns the primary followed by the secondary tags.
func (f activityForm) selectedCategories() []activity.Category {
	if len(f.categories) == 0 {
		return nil
	}
	out := []activity.Category{f.categories[f.primary]}
	for _, i := range f.secondary {
		out = append(out, f.categories[i])
	}
	return out
}

// draft parses the form fields into a draft with a canonical time.
func (f activityForm) draft(use24Hour bool) (activity.Draft, error) {
	parsed, err := timeutil.ParseFlexible(f.timeInput.Value(), use24Hour)
	if err != nil {
		return activity.Draft{}, err
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(f.duration.Value()))
	if err != nil {
		return activity.Draft{}, fmt.Errorf("%w: %q", errInvalidDuration, f.duration.Value())
	}
	return activity.Draft{
		Time:       parsed.Time,
		Duration:   minutes,
		Label:      f.label.Value(),
		Categories: f.selectedCategories(),
		Important:  f.important,
	}, nil
}

// timeHint shows how the time input will be read.
func (f activityForm) timeHint(use24Hour bool) string {
	if strings.TrimSpace(f.timeInput.Value()) == "" {
		return ""
	}
	parsed, err := timeutil.ParseFlexible(f.timeInput.Value(), use24Hour)
	if err != nil {
		return "?"
	}
	return "→ " + parsed.Display
}

func (f activityForm) durationHint() string {
	minutes, err := strconv.Atoi(strings.TrimSpace(f.duration.Value()))
	if err != nil || minutes <= 0 {
		return ""
	}
	return timeutil.FormatDuration(minutes)
}

func (f activityForm) viewModel(use24Hour bool, maxWidth int) view.ActivityFormModel {
	names := make([]string, len(f.categories))
	for i, c := range f.categories {
		names[i] = string(c)
	}
	return view.ActivityFormModel{
		TimeInput:     f.timeInput.View(),
		TimeHint:      f.timeHint(use24Hour),
		DurationInput: f.duration.View(),
		DurationHint:  f.durationHint(),
		LabelInput:    f.label.View(),
		Categories:    names,
		Primary:       f.primary,
		Secondary:     slices.Clone(f.secondary),
		Important:     f.important,
		Focus:         f.focus,
		Error:         f.err,
		MaxWidth:      maxWidth,
	}
}
