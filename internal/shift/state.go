// Package shift drives a single shift from setup through tracking to the
// end-of-shift summary. The Tracker owns every piece of per-shift state and is
// advanced explicitly with the current instant on each tick.
package shift

import (
	"time"

	"github.com/julianstephens/wagetrack/internal/earnings"
	apperrors "github.com/julianstephens/wagetrack/internal/errors"
	"github.com/julianstephens/wagetrack/internal/utils"
)

// State is the tracker's position in the shift lifecycle.
type State string

const (
	StateIdle     State = "idle"
	StateTracking State = "tracking"
	StateSummary  State = "summary"
)

func (s State) String() string {
	return string(s)
}

// Input is the raw text entered on the setup screen.
type Input struct {
	Wage       string // e.g. "15.00"
	TaxPercent string // e.g. "25"
	ClockIn    string // HH:MM, 24-hour
}

// Parse validates the input and resolves the clock-in time of day against now.
// Every failure is an *errors.InputValidationError.
func (in Input) Parse(now time.Time) (earnings.ShiftConfig, error) {
	wage, err := earnings.ParseWage(in.Wage)
	if err != nil {
		return earnings.ShiftConfig{}, err
	}
	rate, err := earnings.ParseTaxPercent(in.TaxPercent)
	if err != nil {
		return earnings.ShiftConfig{}, err
	}
	clockIn, err := utils.ResolveClockIn(now, in.ClockIn)
	if err != nil {
		return earnings.ShiftConfig{}, apperrors.NewInputValidationError(earnings.FieldClockIn, in.ClockIn, "must be HH:MM (24-hour)")
	}
	return earnings.NewShiftConfig(wage, rate, clockIn)
}
