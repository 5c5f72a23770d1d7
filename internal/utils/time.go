package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/wagetrack/internal/clock"
	"github.com/julianstephens/wagetrack/internal/constants"
)

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, strings.TrimSpace(timeStr))
}

// ValidateTimeFormat checks if the string matches the standard time format.
func ValidateTimeFormat(timeStr string) bool {
	_, err := ParseTime(timeStr)
	return err == nil
}

// ResolveClockIn turns an HH:MM time of day into a concrete instant relative to now.
// A time of day later than now is taken to mean that time yesterday.
func ResolveClockIn(now time.Time, timeStr string) (time.Time, error) {
	tod, err := ParseTime(timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	clockIn := time.Date(
		now.Year(), now.Month(), now.Day(),
		tod.Hour(), tod.Minute(), 0, 0,
		now.Location(),
	)
	if clockIn.After(now) {
		clockIn = clockIn.AddDate(0, 0, -1)
	}
	return clockIn, nil
}

// FormatClock formats an instant for display (e.g. "09:05 AM").
func FormatClock(t time.Time) string {
	return t.Format(constants.ClockDisplayFormat)
}

// FormatHMS formats elapsed time as "1h 2m 3s".
func FormatHMS(e clock.Elapsed) string {
	h, m, s := e.HMS()
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}

// FormatHoursMinutes formats a whole-minute count as "7h 30m".
func FormatHoursMinutes(minutes int64) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
