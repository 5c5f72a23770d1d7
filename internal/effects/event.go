// Package effects manages short-lived visual events: floating "+$0.25"
// increments, milestone banners and confetti bursts.
//
// Every animated value is a pure function of (creation time, now, duration).
// Nothing here reads the wall clock; callers pass now on every tick.
package effects

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the variant of a timed event.
type Kind string

const (
	KindIncrement Kind = "increment"
	KindMilestone Kind = "milestone"
	KindBurst     Kind = "burst"
)

const (
	// IncrementRise is how far an increment floats up over its lifetime, in frame pixels.
	IncrementRise = 30.0
	// MilestoneSpacing separates stacked milestone banners, in frame pixels.
	MilestoneSpacing = 40.0
	// MaxShake is the shake amplitude at the start of a celebration, in frame pixels.
	MaxShake = 15.0
	// HueSpeed is how fast the celebration rainbow cycles, in degrees per second.
	HueSpeed = 300.0

	milestoneFadeIn  = 0.15
	milestoneFadeOut = 0.85
)

// Progress describes how an event should be drawn at a point in its life.
type Progress struct {
	Alpha     uint8
	OffsetY   float64
	Scale     float64
	Intensity float64
}

// Event is a single timed event. It is live while now < CreatedAt+Duration.
type Event struct {
	ID        uint64
	Kind      Kind
	CreatedAt time.Time
	Duration  time.Duration
	Amount    decimal.Decimal
	Label     string
}

// Fraction returns the elapsed share of the event's duration. Values before
// creation are clamped to 0; the result may exceed 1 once expired.
func (e Event) Fraction(now time.Time) float64 {
	if e.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(e.CreatedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	return float64(elapsed) / float64(e.Duration)
}

// Expired reports whether the event has reached the end of its duration.
func (e Event) Expired(now time.Time) bool {
	return now.Sub(e.CreatedAt) >= e.Duration
}

// Progress maps the event's elapsed fraction to its visual state.
func (e Event) Progress(now time.Time) Progress {
	f := e.Fraction(now)
	if f > 1 {
		f = 1
	}
	switch e.Kind {
	case KindIncrement:
		return incrementProgress(f)
	case KindMilestone:
		return milestoneProgress(f)
	case KindBurst:
		return burstProgress(f)
	}
	return Progress{Alpha: 255, Scale: 1}
}

// Increments fade out linearly while rising.
func incrementProgress(f float64) Progress {
	return Progress{
		Alpha:   alpha(1 - f),
		OffsetY: IncrementRise * f,
		Scale:   1,
	}
}

// Milestones fade and grow in over the first 15%, hold, then fade out over the last 15%.
func milestoneProgress(f float64) Progress {
	switch {
	case f < milestoneFadeIn:
		p := f / milestoneFadeIn
		return Progress{Alpha: alpha(p), Scale: 0.8 + 0.2*p}
	case f < milestoneFadeOut:
		return Progress{Alpha: 255, Scale: 1}
	default:
		p := (f - milestoneFadeOut) / (1 - milestoneFadeOut)
		return Progress{Alpha: alpha(1 - p), Scale: 1}
	}
}

// Bursts shake hardest at the start and settle linearly to nothing.
func burstProgress(f float64) Progress {
	return Progress{
		Alpha:     255,
		Scale:     1,
		Intensity: MaxShake * (1 - f),
	}
}

func alpha(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(255 * v)
}
