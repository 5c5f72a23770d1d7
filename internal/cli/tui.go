package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wagetrack/internal/tui"
)

type TuiCmd struct {
	Wage    string `help:"Hourly wage to prefill, e.g. 15.00."`
	Tax     string `help:"Tax rate percentage to prefill (defaults to the configured rate)."`
	ClockIn string `name:"clock-in" help:"Clock-in time (HH:MM). With --wage, tracking starts immediately."`
	Seed    int64  `help:"Seed for confetti and money rain (0 picks one)."`
}

func (c *TuiCmd) Run(ctx *Context) error {
	rng := NewRand(c.Seed)
	tracker := ctx.NewTracker(rng)
	input := ctx.shiftInput(c.Wage, c.Tax, c.ClockIn)

	if c.Wage != "" && c.ClockIn != "" {
		if err := tracker.ClockIn(input, ctx.now()); err != nil {
			return err
		}
	}

	model := tui.NewModel(tui.Options{
		Tracker:      tracker,
		Clock:        ctx.Clock,
		TickInterval: ctx.Settings.TickInterval,
		Prefill:      input,
		Shake:        rng,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}
