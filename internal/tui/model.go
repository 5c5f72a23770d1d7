package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wagetrack/internal/clock"
	"github.com/julianstephens/wagetrack/internal/constants"
	"github.com/julianstephens/wagetrack/internal/effects"
	"github.com/julianstephens/wagetrack/internal/shift"
)

// Options configures the TUI model.
type Options struct {
	Tracker      *shift.Tracker
	Clock        clock.Clock
	TickInterval time.Duration
	// Prefill seeds the setup form on first launch.
	Prefill shift.Input
	// Shake drives the screen shake offsets; nil disables shaking.
	Shake effects.Rand
}

type Model struct {
	tracker      *shift.Tracker
	clock        clock.Clock
	tickInterval time.Duration
	shake        effects.Rand

	keys     KeyMap
	help     help.Model
	progress progress.Model
	form     *huh.Form
	setup    *SetupFormModel

	frame    shift.Frame
	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = constants.DefaultTickInterval
	}
	if opts.Tracker == nil {
		opts.Tracker = shift.New(shift.Options{})
	}

	setup := &SetupFormModel{
		Wage:       opts.Prefill.Wage,
		TaxPercent: opts.Prefill.TaxPercent,
		ClockIn:    opts.Prefill.ClockIn,
	}
	m := Model{
		tracker:      opts.Tracker,
		clock:        opts.Clock,
		tickInterval: opts.TickInterval,
		shake:        opts.Shake,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		progress:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		form:         NewSetupForm(setup),
		setup:        setup,
	}
	m.frame = m.tracker.Tick(m.clock.Now())
	return m
}

// TickMsg drives the tracker forward.
type TickMsg time.Time

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), m.tick())
}

// Frame returns the most recent frame.
func (m Model) Frame() shift.Frame {
	return m.frame
}

func (m Model) ShortHelp() []key.Binding {
	switch m.tracker.State() {
	case shift.StateTracking:
		return []key.Binding{m.keys.ClockOut, m.keys.ToggleTax, m.keys.Quit, m.keys.Help}
	case shift.StateSummary:
		return []key.Binding{m.keys.NewShift, m.keys.Quit}
	}
	return []key.Binding{m.keys.ForceQuit}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

// resetForm rebuilds the setup form from the current field values.
func (m *Model) resetForm() tea.Cmd {
	m.form = NewSetupForm(m.setup)
	return m.form.Init()
}
