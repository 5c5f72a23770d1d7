package utils

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatMoney renders an amount in dollars with two decimal places.
func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatRate renders an amount with a unit suffix, e.g. "$15.00/hr".
func FormatRate(d decimal.Decimal, unit string) string {
	return FormatMoney(d) + "/" + unit
}

// FormatPercent renders a fractional rate as a whole percentage, e.g. 0.25 -> "25%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(hundred).Truncate(0).String() + "%"
}
