package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wagetrack/internal/constants"
	"github.com/julianstephens/wagetrack/internal/earnings"
	"github.com/julianstephens/wagetrack/internal/shift"
	"github.com/julianstephens/wagetrack/internal/utils"
)

// SetupFormModel backs the clock-in form fields.
type SetupFormModel struct {
	Wage       string
	TaxPercent string
	ClockIn    string
}

func (fm *SetupFormModel) Input() shift.Input {
	return shift.Input{Wage: fm.Wage, TaxPercent: fm.TaxPercent, ClockIn: fm.ClockIn}
}

// NewSetupForm creates the clock-in form.
func NewSetupForm(fm *SetupFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hourly wage ($)").
				Placeholder(constants.PlaceholderWage).
				CharLimit(constants.MaxInputLength).
				Value(&fm.Wage).
				Validate(func(s string) error {
					_, err := earnings.ParseWage(s)
					return err
				}),
			huh.NewInput().
				Title("Tax rate (%)").
				Placeholder(constants.PlaceholderTax).
				CharLimit(constants.MaxInputLength).
				Value(&fm.TaxPercent).
				Validate(func(s string) error {
					_, err := earnings.ParseTaxPercent(s)
					return err
				}),
			huh.NewInput().
				Title("Clock-in time").
				Description("24-hour HH:MM. A time later than now means yesterday.").
				Placeholder(constants.PlaceholderClockIn).
				CharLimit(constants.MaxInputLength).
				Value(&fm.ClockIn).
				Validate(func(s string) error {
					if !utils.ValidateTimeFormat(s) {
						return fmt.Errorf("time must be HH:MM (24-hour)")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
}
