package shift

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/wagetrack/internal/clock"
	"github.com/julianstephens/wagetrack/internal/constants"
	"github.com/julianstephens/wagetrack/internal/earnings"
	"github.com/julianstephens/wagetrack/internal/effects"
	apperrors "github.com/julianstephens/wagetrack/internal/errors"
	"github.com/julianstephens/wagetrack/internal/logger"
	"github.com/julianstephens/wagetrack/internal/milestones"
)

// Options configures a Tracker. Zero values take the defaults.
type Options struct {
	Catalog     milestones.Catalog
	Effects     effects.Config
	Rand        effects.Rand // nil disables confetti and money rain
	RainSymbols int
}

// Tracker is the shift state machine. It is not safe for concurrent use.
type Tracker struct {
	catalog     milestones.Catalog
	effectsCfg  effects.Config
	rng         effects.Rand
	rainSymbols int

	state      State
	shiftID    string
	cfg        earnings.ShiftConfig
	unlocked   milestones.UnlockedSet
	pool       *effects.Pool
	rain       effects.Rain
	lastMinute int64
	afterTax   bool
	summary    *Summary
}

// New returns a Tracker in the Idle state.
func New(opts Options) *Tracker {
	if opts.Catalog.Len() == 0 {
		opts.Catalog = milestones.DefaultCatalog()
	}
	if opts.Effects == (effects.Config{}) {
		opts.Effects = effects.DefaultConfig()
	}
	if opts.RainSymbols <= 0 {
		opts.RainSymbols = constants.MoneyRainSymbols
	}
	return &Tracker{
		catalog:     opts.Catalog,
		effectsCfg:  opts.Effects,
		rng:         opts.Rand,
		rainSymbols: opts.RainSymbols,
		state:       StateIdle,
		pool:        effects.NewPool(opts.Effects, opts.Rand),
	}
}

// State returns the current lifecycle state.
func (t *Tracker) State() State {
	return t.state
}

// Catalog returns the milestone catalog in use.
func (t *Tracker) Catalog() milestones.Catalog {
	return t.catalog
}

// Summary returns the frozen summary while in the Summary state.
func (t *Tracker) Summary() (Summary, bool) {
	if t.summary == nil {
		return Summary{}, false
	}
	return t.summary.clone(), true
}

// ClockIn validates the input and starts tracking. On error the tracker is left unchanged.
func (t *Tracker) ClockIn(in Input, now time.Time) error {
	if t.state != StateIdle {
		return t.invalid("clock in")
	}

	cfg, err := in.Parse(now)
	if err != nil {
		logger.Warn("Clock-in rejected", "error", err)
		return err
	}

	t.cfg = cfg
	t.shiftID = uuid.NewString()
	t.unlocked = milestones.UnlockedSet{}
	t.pool.Clear()
	t.lastMinute = 0
	t.afterTax = false
	t.summary = nil
	t.rain = effects.NewRain(t.rng, t.rainSymbols, t.effectsCfg.FrameWidth, t.effectsCfg.FrameHeight, cfg.ClockIn)
	t.state = StateTracking

	logger.Info("Clocked in",
		"shift", t.shiftID,
		"wage", cfg.HourlyWage.String(),
		"tax_rate", cfg.TaxRate.String(),
		"clock_in", cfg.ClockIn.Format(time.RFC3339),
	)
	return nil
}

// Tick advances the tracker to now and returns the frame to draw.
func (t *Tracker) Tick(now time.Time) Frame {
	switch t.state {
	case StateIdle:
		return Frame{State: StateIdle, Now: now}
	case StateSummary:
		s := t.summary.clone()
		return Frame{
			State:    StateSummary,
			Now:      now,
			ShiftID:  s.ShiftID,
			Config:   s.Config,
			Elapsed:  s.Elapsed,
			Snapshot: s.Snapshot,
			Unlocked: s.Unlocked,
			Summary:  &s,
		}
	}

	elapsed := t.elapsed(now)
	snap := earnings.Compute(t.cfg, elapsed.Minutes)
	unlocked := t.advanceMilestones(snap)

	for m := t.lastMinute + 1; m <= elapsed.Minutes; m++ {
		t.pool.SpawnIncrement(now, snap.PerMinuteRate)
		t.pool.SpawnBurst(now, snap.PerMinuteRate)
		logger.Debug("Minute completed", "shift", t.shiftID, "minute", m, "earned", snap.Earnings.StringFixed(2))
	}
	if elapsed.Minutes > t.lastMinute {
		t.lastMinute = elapsed.Minutes
	}
	for _, m := range unlocked {
		t.pool.SpawnMilestone(now, m.Message(), m.Threshold)
	}

	frame := Frame{
		State:        StateTracking,
		Now:          now,
		ShiftID:      t.shiftID,
		Config:       t.cfg,
		Elapsed:      elapsed,
		Snapshot:     snap,
		AfterTax:     t.afterTax,
		Effects:      t.pool.Tick(now),
		Rain:         t.rain.At(now),
		Unlocked:     t.unlocked.Items(),
		NextProgress: t.catalog.Progress(snap.Earnings, t.unlocked),
	}
	frame.Next, frame.HasNext = t.catalog.Next(t.unlocked)
	return frame
}

// ClockOut freezes the shift at now and discards every pending effect.
func (t *Tracker) ClockOut(now time.Time) (Summary, error) {
	if t.state != StateTracking {
		return Summary{}, t.invalid("clock out")
	}

	elapsed := t.elapsed(now)
	snap := earnings.Compute(t.cfg, elapsed.Minutes)
	t.advanceMilestones(snap)

	t.summary = &Summary{
		ShiftID:  t.shiftID,
		Start:    t.cfg.ClockIn,
		End:      now,
		Elapsed:  elapsed,
		Snapshot: snap,
		Config:   t.cfg,
		Unlocked: t.unlocked.Items(),
	}
	t.pool.Clear()
	t.rain = effects.Rain{}
	t.state = StateSummary

	logger.Info("Clocked out",
		"shift", t.shiftID,
		"earned", snap.Earnings.StringFixed(2),
		"after_tax", snap.Taxed.StringFixed(2),
		"minutes", snap.Minutes,
		"milestones", t.unlocked.Len(),
	)
	return t.summary.clone(), nil
}

// NewShift discards the summary and returns to Idle.
func (t *Tracker) NewShift() error {
	if t.state != StateSummary {
		return t.invalid("start a new shift")
	}
	logger.Info("Starting new shift", "previous", t.shiftID)

	t.summary = nil
	t.shiftID = ""
	t.cfg = earnings.ShiftConfig{}
	t.unlocked = milestones.UnlockedSet{}
	t.pool.Clear()
	t.rain = effects.Rain{}
	t.lastMinute = 0
	t.afterTax = false
	t.state = StateIdle
	return nil
}

// ToggleTax switches the tracking display between before- and after-tax earnings.
func (t *Tracker) ToggleTax() error {
	if t.state != StateTracking {
		return t.invalid("toggle tax display")
	}
	t.afterTax = !t.afterTax
	logger.Debug("Tax display toggled", "after_tax", t.afterTax)
	return nil
}

func (t *Tracker) elapsed(now time.Time) clock.Elapsed {
	e := clock.Since(t.cfg.ClockIn, now)
	if e.Skewed {
		logger.Warn("Clock is behind shift start, treating as zero elapsed",
			"clock_in", t.cfg.ClockIn.Format(time.RFC3339),
			"now", now.Format(time.RFC3339),
		)
	}
	return e
}

func (t *Tracker) advanceMilestones(snap earnings.Snapshot) []milestones.Milestone {
	next, unlocked := t.catalog.Update(snap.Earnings, t.unlocked)
	t.unlocked = next
	for _, m := range unlocked {
		logger.Info("Milestone unlocked", "shift", t.shiftID, "threshold", m.Threshold.String(), "label", m.Label)
	}
	return unlocked
}

func (t *Tracker) invalid(action string) error {
	return fmt.Errorf("%w: cannot %s while %s", apperrors.ErrInvalidTransition, action, t.state)
}
