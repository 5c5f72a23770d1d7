package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	apperrors "github.com/julianstephens/wagetrack/internal/errors"
	"github.com/julianstephens/wagetrack/internal/logger"
	"github.com/julianstephens/wagetrack/internal/shift"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = min(msg.Width-8, 40)
		return m, nil

	case TickMsg:
		m.frame = m.tracker.Tick(m.clock.Now())
		return m, m.tick()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.tracker.State() {
	case shift.StateIdle:
		return m.updateSetup(msg)
	case shift.StateTracking:
		return m.updateTracking(msg)
	case shift.StateSummary:
		return m.updateSummary(msg)
	}
	return m, nil
}

func (m Model) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		now := m.clock.Now()
		if err := m.tracker.ClockIn(m.setup.Input(), now); err != nil {
			// Stay on the form so the input can be corrected
			m.errMsg = apperrors.Format(err)
			cmds = append(cmds, m.resetForm())
			return m, tea.Batch(cmds...)
		}
		m.errMsg = ""
		m.frame = m.tracker.Tick(now)
	case huh.StateAborted:
		m.quitting = true
		return m, tea.Quit
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateTracking(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.ToggleTax):
		m.report(m.tracker.ToggleTax())
		m.frame = m.tracker.Tick(m.clock.Now())
	case key.Matches(keyMsg, m.keys.ClockOut):
		now := m.clock.Now()
		_, err := m.tracker.ClockOut(now)
		m.report(err)
		m.frame = m.tracker.Tick(now)
	}
	return m, nil
}

func (m Model) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.NewShift):
		if err := m.tracker.NewShift(); err != nil {
			m.report(err)
			return m, nil
		}
		m.setup = &SetupFormModel{}
		m.errMsg = ""
		m.frame = m.tracker.Tick(m.clock.Now())
		return m, m.resetForm()
	}
	return m, nil
}

func (m *Model) report(err error) {
	if err == nil {
		m.errMsg = ""
		return
	}
	logger.Warn("Action rejected", "state", m.tracker.State(), "error", err)
	m.errMsg = apperrors.Format(err)
}
