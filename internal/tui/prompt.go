package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
	"github.com/javiermolinar/dayplan/internal/tui/input"
	"github.com/javiermolinar/dayplan/internal/tui/view"
)

var promptCommands = input.Commands{
	{
		Name:        "/add",
		Description: "Add an activity: [time] <minutes> <label> [#category]",
	},
	{
		Name:        "/view",
		Description: "Switch view: list or timeline",
	},
	{
		Name:        "/format",
		Description: "Clock format: 12 or 24",
	},
	{
		Name:        "/snap",
		Description: "Move the selected activity to the end of the previous one",
	},
	{
		Name:        "/delete",
		Description: "Delete the selected activity",
	},
	{
		Name:        "/help",
		Description: "Show keys and commands",
	},
}

var errUsage = errors.New("usage")

// handlePromptSubmit runs a prompt command.
func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	name, args := input.Split(value)
	if name == "" || name == "/" {
		return m, nil
	}
	m.log.Debug().Str("command", name).Strs("args", args).Msg("prompt command")

	switch name {
	case "/add":
		d, err := m.parseAddArgs(args)
		if err != nil {
			return m.setError(err)
		}
		res, err := m.engine.Add(d)
		if err != nil {
			return m.setError(err)
		}
		return m.applyResult(res, fmt.Sprintf("Added %q at %s", res.Activity.Label, timeutil.Format(res.Activity.Time, m.use24Hour)))

	case "/view":
		if len(args) == 0 {
			return m.setView(m.toggledView())
		}
		switch strings.ToLower(args[0]) {
		case "list":
			return m.setView(ViewList)
		case "timeline":
			return m.setView(ViewTimeline)
		}
		return m.setError(fmt.Errorf("%w: /view list|timeline", errUsage))

	case "/format":
		if len(args) == 1 {
			switch strings.TrimSuffix(strings.ToLower(args[0]), "h") {
			case "12":
				return m.setClock(false)
			case "24":
				return m.setClock(true)
			}
		}
		return m.setError(fmt.Errorf("%w: /format 12|24", errUsage))

	case "/snap":
		return m.snapCurrent()

	case "/delete":
		m.openConfirmDelete()
		return m, nil

	case "/help":
		m.openModal(ModalHelp, "help")
		return m, nil
	}

	return m.setError(fmt.Errorf("unknown command %q", name))
}

// parseAddArgs reads "/add [time] <minutes> <label...> [#category...]".
// The first argument is a time only when the second is a number too; the
// time defaults to the suggested next start.
func (m Model) parseAddArgs(args []string) (activity.Draft, error) {
	usage := fmt.Errorf("%w: /add [time] <minutes> <label>", errUsage)
	if len(args) < 2 {
		return activity.Draft{}, usage
	}

	start := m.scheduler.NextStart(m.engine.List(), m.clock())
	if _, err := strconv.Atoi(args[1]); err == nil && len(args) >= 3 {
		parsed, err := timeutil.ParseFlexible(args[0], m.use24Hour)
		if err != nil {
			return activity.Draft{}, err
		}
		start = parsed.Time
		args = args[1:]
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return activity.Draft{}, usage
	}

	var words []string
	var cats []activity.Category
	set := m.engine.Categories()
	for _, w := range args[1:] {
		if tag, ok := strings.CutPrefix(w, "#"); ok && tag != "" {
			c, found := set.Lookup(strings.NewReplacer("-", " ", "_", " ").Replace(tag))
			if !found {
				return activity.Draft{}, fmt.Errorf("%w: %q", activity.ErrUnknownCategory, tag)
			}
			cats = append(cats, c)
			continue
		}
		words = append(words, w)
	}

	return activity.Draft{
		Time:       start,
		Duration:   minutes,
		Label:      strings.Join(words, " "),
		Categories: cats,
	}, nil
}

func (m Model) fullFooterHeight(innerH, promptWidth int) int {
	promptLines := max(promptMinContentLines, len(m.promptLines(promptWidth)))
	desired := footerBaseLines + promptLines + promptBorderLines

	maxFooter := innerH - headerLines - 2
	if maxFooter < footerMinHeight {
		return footerCompact
	}
	return min(max(desired, footerMinHeight), maxFooter)
}

func (m Model) promptMaxContentLines() int {
	return max(m.layoutCache.FooterH-footerBaseLines-promptBorderLines, promptMinContentLines)
}

func (m Model) promptLines(contentWidth int) []string {
	cursor := ""
	if m.mode == ModePrompt {
		cursor = "_"
	}
	state := view.PromptState{
		Value:      m.prompt.Value(),
		Cursor:     cursor,
		ModePrompt: m.mode == ModePrompt,
	}
	return view.PromptLines(state, contentWidth, promptCommands)
}
