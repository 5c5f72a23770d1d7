package cli

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/julianstephens/wagetrack/internal/errors"
	"github.com/julianstephens/wagetrack/internal/utils"
)

// CalcCmd prints what a shift has earned so far without starting the TUI.
type CalcCmd struct {
	Wage    string `required:"" help:"Hourly wage, e.g. 15.00."`
	Tax     string `help:"Tax rate percentage (defaults to the configured rate)."`
	ClockIn string `name:"clock-in" required:"" help:"Clock-in time (HH:MM)."`
	At      string `help:"Evaluate at this time today (HH:MM) instead of now."`
}

func (c *CalcCmd) Run(ctx *Context) error {
	now, err := c.evaluationTime(ctx.now())
	if err != nil {
		return err
	}

	tracker := ctx.NewTracker(nil)
	if err := tracker.ClockIn(ctx.shiftInput(c.Wage, c.Tax, c.ClockIn), now); err != nil {
		return err
	}
	frame := tracker.Tick(now)
	snap := frame.Snapshot

	out := ctx.stdout()
	fmt.Fprintf(out, "Shift %s\n", frame.ShiftID)
	fmt.Fprintf(out, "  Clocked in:  %s\n", utils.FormatClock(frame.Config.ClockIn))
	fmt.Fprintf(out, "  Elapsed:     %s\n", utils.FormatHMS(frame.Elapsed))
	fmt.Fprintf(out, "  Earned:      %s\n", utils.FormatMoney(snap.Earnings))
	fmt.Fprintf(out, "  After tax:   %s (%s tax: %s)\n",
		utils.FormatMoney(snap.Taxed), utils.FormatPercent(frame.Config.TaxRate), utils.FormatMoney(snap.Tax))
	fmt.Fprintf(out, "  Per minute:  %s\n", utils.FormatRate(snap.PerMinuteRate, "min"))

	if len(frame.Unlocked) == 0 {
		fmt.Fprintln(out, "  Milestones:  none yet")
	} else {
		labels := make([]string, 0, len(frame.Unlocked))
		for _, m := range frame.Unlocked {
			labels = append(labels, m.Label)
		}
		fmt.Fprintf(out, "  Milestones:  %s\n", strings.Join(labels, ", "))
	}
	if frame.HasNext {
		fmt.Fprintf(out, "  Next:        %s at %s (%.0f%%)\n",
			frame.Next.Label, utils.FormatMoney(frame.Next.Threshold), frame.NextProgress*100)
	}
	return nil
}

func (c *CalcCmd) evaluationTime(now time.Time) (time.Time, error) {
	if c.At == "" {
		return now, nil
	}
	tod, err := utils.ParseTime(c.At)
	if err != nil {
		return time.Time{}, apperrors.NewInputValidationError("evaluation time", c.At, "must be HH:MM (24-hour)")
	}
	return time.Date(now.Year(), now.Month(), now.Day(), tod.Hour(), tod.Minute(), 0, 0, now.Location()), nil
}
