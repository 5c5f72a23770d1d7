package constants

import "time"

const (
	AppName           = "wagetrack"
	DefaultConfigPath = "~/.config/wagetrack/config.yaml"
	Version           = "v0.1.0"

	// TimeFormat is the clock-in input format (HH:MM, 24-hour)
	TimeFormat = "15:04"

	// ClockDisplayFormat is used for clock-in / clock-out times on screen
	ClockDisplayFormat = "03:04 PM"

	// MaxInputLength caps every setup field
	MaxInputLength = 10

	// Setup form placeholders
	PlaceholderWage    = "15.00"
	PlaceholderTax     = "25"
	PlaceholderClockIn = "09:00"

	// Shift defaults
	DefaultTaxPercent   = 25
	DefaultTickInterval = 50 * time.Millisecond

	// Timed event defaults
	IncrementDuration   = 2 * time.Second
	MilestoneDuration   = 3 * time.Second
	CelebrationDuration = 3 * time.Second
	ConfettiPerBurst    = 50
	MaxParticles        = 1000
	MoneyRainSymbols    = 15

	// Logical frame the effects are laid out in. The TUI scales it to the terminal.
	FrameWidth  = 600
	FrameHeight = 550
)
