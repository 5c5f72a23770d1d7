// Package earnings derives pay from whole completed minutes.
//
// Pay accrues as a step function: it only changes when the completed-minute
// count changes, by exactly HourlyWage/60 per minute.
package earnings

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/julianstephens/wagetrack/internal/errors"
)

var (
	sixty = decimal.NewFromInt(60)
	one   = decimal.NewFromInt(1)
)

// ShiftConfig is fixed for the lifetime of a shift.
type ShiftConfig struct {
	HourlyWage decimal.Decimal
	TaxRate    decimal.Decimal // fraction in [0, 1]
	ClockIn    time.Time
}

// NewShiftConfig validates wage and tax rate and returns the config.
func NewShiftConfig(wage, taxRate decimal.Decimal, clockIn time.Time) (ShiftConfig, error) {
	cfg := ShiftConfig{HourlyWage: wage, TaxRate: taxRate, ClockIn: clockIn}
	if err := cfg.Validate(); err != nil {
		return ShiftConfig{}, err
	}
	return cfg, nil
}

// Validate checks the wage and tax invariants.
func (c ShiftConfig) Validate() error {
	if !c.HourlyWage.IsPositive() {
		return apperrors.NewInputValidationError(FieldWage, c.HourlyWage.String(), "must be greater than zero")
	}
	if c.TaxRate.IsNegative() || c.TaxRate.GreaterThan(one) {
		return apperrors.NewInputValidationError(FieldTax, c.TaxRate.String(), "must be between 0 and 1")
	}
	return nil
}

// PerMinuteRate is the amount added for every completed minute.
func (c ShiftConfig) PerMinuteRate() decimal.Decimal {
	return c.HourlyWage.Div(sixty)
}

// Snapshot is the pay owed after a number of completed minutes.
type Snapshot struct {
	Minutes       int64
	Earnings      decimal.Decimal // before tax
	PerMinuteRate decimal.Decimal
	Taxed         decimal.Decimal // after tax
	Tax           decimal.Decimal // amount withheld
}

// Compute returns the earnings snapshot for the given completed-minute count.
// Negative minute counts are treated as zero.
func Compute(cfg ShiftConfig, minutes int64) Snapshot {
	if minutes < 0 {
		minutes = 0
	}
	earned := cfg.HourlyWage.Mul(decimal.NewFromInt(minutes)).Div(sixty)
	taxed := earned.Mul(one.Sub(cfg.TaxRate))
	return Snapshot{
		Minutes:       minutes,
		Earnings:      earned,
		PerMinuteRate: cfg.PerMinuteRate(),
		Taxed:         taxed,
		Tax:           earned.Sub(taxed),
	}
}

// Display returns the amount to show for the current tax toggle.
func (s Snapshot) Display(afterTax bool) decimal.Decimal {
	if afterTax {
		return s.Taxed
	}
	return s.Earnings
}

// Hours returns the completed minutes expressed in hours.
func (s Snapshot) Hours() decimal.Decimal {
	return decimal.NewFromInt(s.Minutes).Div(sixty)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%dm: %s (after tax %s)", s.Minutes, s.Earnings.StringFixed(2), s.Taxed.StringFixed(2))
}
