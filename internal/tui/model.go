// Package tui provides the terminal user interface for dayplan.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/dayplan/internal/config"
	"github.com/javiermolinar/dayplan/internal/schedule"
	"github.com/javiermolinar/dayplan/internal/scheduler"
	"github.com/javiermolinar/dayplan/internal/tui/commands"
	"github.com/javiermolinar/dayplan/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrompt
	ModeModal
)

func (m Mode) String() string {
	switch m {
	case ModePrompt:
		return "prompt"
	case ModeModal:
		return "modal"
	default:
		return "normal"
	}
}

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalActivityForm
	ModalConfirmDelete
	ModalHelp
)

// ViewKind selects how the schedule is drawn.
type ViewKind int

const (
	ViewList ViewKind = iota
	ViewTimeline
)

func (v ViewKind) String() string {
	if v == ViewTimeline {
		return "timeline"
	}
	return "list"
}

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	engine     *schedule.Engine
	config     *config.Config
	scheduler  *scheduler.Scheduler
	log        zerolog.Logger
	clock      func() time.Time
	saveConfig commands.ConfigSaver

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	mode         Mode
	viewKind     ViewKind
	use24Hour    bool
	cursor       int // index into the engine's start-ordered list
	scrollOffset int // first visible row (list) or line (timeline)

	// Modal state
	modalType ModalType
	form      activityForm
	deleteID  int

	prompt textinput.Model

	lastConflict string
	highlightSeq int

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache

	// Messages
	statusMsg   string
	statusError bool
	statusTime  time.Time // when the message expires
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger for key presses and mode changes.
func WithLogger(l zerolog.Logger) ModelOption {
	return func(m *Model) {
		m.log = l.With().Str("component", "tui").Logger()
	}
}

// WithConflicts reports overlaps resolved while seeding the schedule.
func WithConflicts(conflicts []schedule.Conflict) ModelOption {
	return func(m *Model) {
		if len(conflicts) == 0 {
			return
		}
		m.lastConflict = conflictText(conflicts[len(conflicts)-1], m.use24Hour)
		m.statusMsg = fmt.Sprintf("Resolved %d overlap(s) in the configured schedule", len(conflicts))
		m.statusTime = m.clock().Add(statusDuration)
	}
}

// WithConfigSaver sets how display preference changes are persisted.
func WithConfigSaver(save commands.ConfigSaver) ModelOption {
	return func(m *Model) {
		m.saveConfig = save
	}
}

// WithScheduler overrides the start-time suggester.
func WithScheduler(s *scheduler.Scheduler) ModelOption {
	return func(m *Model) {
		if s != nil {
			m.scheduler = s
		}
	}
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.clock = now
		}
	}
}

// New creates a new TUI model over engine.
func New(engine *schedule.Engine, cfg *config.Config, opts ...ModelOption) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	prompt := textinput.New()
	prompt.Placeholder = "/add 9 30 Deep work"
	prompt.Prompt = ""
	prompt.CharLimit = 256

	m := Model{
		engine:    engine,
		config:    cfg,
		scheduler: scheduler.New(cfg.Schedule.DayStart),
		log:       zerolog.Nop(),
		clock:     time.Now,
		theme:     t,
		styles:    styles,
		mode:      ModeNormal,
		viewKind:  ViewList,
		use24Hour: cfg.Display.Use24Hour,
		prompt:    prompt,
	}

	for _, opt := range opts {
		opt(&m)
	}
	m.layoutCache = m.buildLayoutCache(0, 0)
	return m
}

// Init starts the highlight timer for activities changed while seeding.
func (m Model) Init() tea.Cmd {
	if len(m.engine.RecentlyModified()) == 0 {
		return nil
	}
	return commands.ClearHighlightAfter(m.highlightDuration(), m.highlightSeq)
}

// Run starts the TUI.
func Run(engine *schedule.Engine, cfg *config.Config, opts ...ModelOption) error {
	model := New(engine, cfg, opts...)
	model.log.Debug().Int("activities", engine.Len()).Msg("starting tui")
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) highlightDuration() time.Duration {
	return time.Duration(m.config.UI.HighlightMS) * time.Millisecond
}
