package earnings

import (
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/julianstephens/wagetrack/internal/errors"
)

// Setup field names used in validation errors
const (
	FieldWage    = "hourly wage"
	FieldTax     = "tax rate"
	FieldClockIn = "clock-in time"
)

var hundred = decimal.NewFromInt(100)

// ParseWage parses an hourly wage such as "15.00". The wage must be positive.
func ParseWage(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, apperrors.NewInputValidationError(FieldWage, s, "is required")
	}
	wage, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.NewInputValidationError(FieldWage, s, "must be a number")
	}
	if !wage.IsPositive() {
		return decimal.Zero, apperrors.NewInputValidationError(FieldWage, s, "must be greater than zero")
	}
	return wage, nil
}

// ParseTaxPercent parses a tax percentage such as "25" and returns the
// fractional rate (0.25). The percentage must be within [0, 100].
func ParseTaxPercent(s string) (decimal.Decimal, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return decimal.Zero, apperrors.NewInputValidationError(FieldTax, s, "is required")
	}
	pct, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.NewInputValidationError(FieldTax, s, "must be a number")
	}
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return decimal.Zero, apperrors.NewInputValidationError(FieldTax, s, "must be between 0 and 100")
	}
	return pct.Div(hundred), nil
}
