package shift

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/wagetrack/internal/clock"
	"github.com/julianstephens/wagetrack/internal/earnings"
	"github.com/julianstephens/wagetrack/internal/effects"
	"github.com/julianstephens/wagetrack/internal/milestones"
)

// Summary is the frozen result of a finished shift.
type Summary struct {
	ShiftID  string
	Start    time.Time
	End      time.Time
	Elapsed  clock.Elapsed
	Snapshot earnings.Snapshot
	Config   earnings.ShiftConfig
	Unlocked []milestones.Milestone
}

// FinalEarnings is the before-tax total.
func (s Summary) FinalEarnings() decimal.Decimal {
	return s.Snapshot.Earnings
}

// TotalHours is the number of completed minutes expressed in hours.
func (s Summary) TotalHours() decimal.Decimal {
	return s.Snapshot.Hours()
}

func (s Summary) clone() Summary {
	c := s
	c.Unlocked = append([]milestones.Milestone(nil), s.Unlocked...)
	return c
}

// Frame is everything the presentation layer needs for one tick.
type Frame struct {
	State State
	Now   time.Time

	// Set while Tracking.
	ShiftID  string
	Config   earnings.ShiftConfig
	Elapsed  clock.Elapsed
	Snapshot earnings.Snapshot
	AfterTax bool
	Effects  effects.Frame
	Rain     []effects.PlacedSymbol
	Unlocked []milestones.Milestone

	// Next is the first milestone not yet reached, valid when HasNext is set.
	Next         milestones.Milestone
	HasNext      bool
	NextProgress float64

	// Set while in Summary.
	Summary *Summary
}

// Display returns the earnings figure for the current tax toggle.
func (f Frame) Display() decimal.Decimal {
	return f.Snapshot.Display(f.AfterTax)
}

// Celebrating reports whether a celebration window is open.
func (f Frame) Celebrating() bool {
	return f.Effects.Celebration.Active
}
