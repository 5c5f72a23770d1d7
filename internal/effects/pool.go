package effects

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/julianstephens/wagetrack/internal/constants"
)

// Config holds event durations and particle limits.
type Config struct {
	IncrementDuration   time.Duration
	MilestoneDuration   time.Duration
	CelebrationDuration time.Duration
	ConfettiPerBurst    int
	MaxParticles        int
	FrameWidth          float64
	FrameHeight         float64
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		IncrementDuration:   constants.IncrementDuration,
		MilestoneDuration:   constants.MilestoneDuration,
		CelebrationDuration: constants.CelebrationDuration,
		ConfettiPerBurst:    constants.ConfettiPerBurst,
		MaxParticles:        constants.MaxParticles,
		FrameWidth:          constants.FrameWidth,
		FrameHeight:         constants.FrameHeight,
	}
}

// Celebration is the global state driven by the newest live burst.
type Celebration struct {
	Active    bool
	Intensity float64 // shake amplitude in frame pixels
	Hue       float64 // rainbow phase in degrees, [0, 360)
	Fraction  float64
	Amount    decimal.Decimal
}

// Live is an event placed for the current tick.
type Live struct {
	Event
	Fraction float64
	Progress Progress
	// Rank is the position among live events of the same kind, oldest first.
	Rank int
	// StackOffset is the vertical layout offset implied by Rank.
	StackOffset float64
}

// Frame is everything the pool produces for one tick.
type Frame struct {
	Events      []Live
	Particles   []LiveParticle
	Celebration Celebration
}

// Of returns the live events of one kind, in creation order.
func (f Frame) Of(kind Kind) []Live {
	var out []Live
	for _, ev := range f.Events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// Pool owns all transient events and confetti. It is not safe for concurrent use;
// the shift tracker is its only owner.
type Pool struct {
	cfg       Config
	rng       Rand
	seq       uint64
	events    []Event
	particles []Particle
	// bursts whose confetti has not been generated yet
	pending []Event
}

// NewPool creates an empty pool.
func NewPool(cfg Config, rng Rand) *Pool {
	return &Pool{cfg: cfg, rng: rng}
}

// Spawn adds an event, assigning it the next ID. A burst also queues its
// confetti, which is generated on the next Tick or ParticleCount.
func (p *Pool) Spawn(ev Event) Event {
	p.seq++
	ev.ID = p.seq
	if ev.Duration <= 0 {
		ev.Duration = p.durationFor(ev.Kind)
	}
	p.events = append(p.events, ev)
	if ev.Kind == KindBurst {
		p.pending = append(p.pending, ev)
	}
	return ev
}

// SpawnIncrement adds a floating per-minute amount.
func (p *Pool) SpawnIncrement(now time.Time, amount decimal.Decimal) Event {
	return p.Spawn(Event{Kind: KindIncrement, CreatedAt: now, Amount: amount})
}

// SpawnMilestone adds a milestone banner.
func (p *Pool) SpawnMilestone(now time.Time, label string, threshold decimal.Decimal) Event {
	return p.Spawn(Event{Kind: KindMilestone, CreatedAt: now, Label: label, Amount: threshold})
}

// SpawnBurst starts a celebration window and releases a round of confetti.
func (p *Pool) SpawnBurst(now time.Time, amount decimal.Decimal) Event {
	return p.Spawn(Event{Kind: KindBurst, CreatedAt: now, Amount: amount})
}

// Tick drops expired events and particles and returns what is live at now.
func (p *Pool) Tick(now time.Time) Frame {
	p.releaseConfetti()
	var frame Frame

	kept := p.events[:0]
	ranks := make(map[Kind]int)
	var newestBurst *Event
	for i := range p.events {
		ev := p.events[i]
		if ev.Expired(now) {
			continue
		}
		kept = append(kept, ev)

		rank := ranks[ev.Kind]
		ranks[ev.Kind]++
		live := Live{
			Event:    ev,
			Fraction: ev.Fraction(now),
			Progress: ev.Progress(now),
			Rank:     rank,
		}
		if ev.Kind == KindMilestone {
			live.StackOffset = float64(rank) * MilestoneSpacing
		}
		frame.Events = append(frame.Events, live)
		if ev.Kind == KindBurst {
			burst := ev
			newestBurst = &burst
		}
	}
	clearTail(p.events, len(kept))
	p.events = kept

	if newestBurst != nil {
		frame.Celebration = Celebration{
			Active:    true,
			Intensity: newestBurst.Progress(now).Intensity,
			Hue:       normalizeHue(HueSpeed * secondsSince(newestBurst.CreatedAt, now)),
			Fraction:  newestBurst.Fraction(now),
			Amount:    newestBurst.Amount,
		}
	}

	visible := p.particles[:0]
	for _, pt := range p.particles {
		if !pt.Visible(now, p.cfg.FrameHeight) {
			continue
		}
		visible = append(visible, pt)
		x, y := pt.Position(now)
		frame.Particles = append(frame.Particles, LiveParticle{
			Particle: pt,
			PosX:     x,
			PosY:     y,
			Angle:    pt.Angle(now),
		})
	}
	p.particles = visible

	return frame
}

// Clear discards every event and particle.
func (p *Pool) Clear() {
	p.events = nil
	p.particles = nil
	p.pending = nil
}

// Len returns the number of events held, live or awaiting collection.
func (p *Pool) Len() int {
	return len(p.events)
}

// ParticleCount returns the number of confetti particles held.
func (p *Pool) ParticleCount() int {
	p.releaseConfetti()
	return len(p.particles)
}

func (p *Pool) durationFor(kind Kind) time.Duration {
	switch kind {
	case KindIncrement:
		return p.cfg.IncrementDuration
	case KindMilestone:
		return p.cfg.MilestoneDuration
	case KindBurst:
		return p.cfg.CelebrationDuration
	}
	return p.cfg.IncrementDuration
}

// releaseConfetti generates particles for queued bursts. Bursts whose
// particles the cap would drop straight away are skipped.
func (p *Pool) releaseConfetti() {
	pending := p.pending
	p.pending = nil
	per := p.cfg.ConfettiPerBurst
	if p.rng == nil || per <= 0 || len(pending) == 0 {
		return
	}

	limit := p.cfg.MaxParticles
	if limit > 0 {
		if keep := (limit + per - 1) / per; len(pending) > keep {
			pending = pending[len(pending)-keep:]
		}
	}
	for _, burst := range pending {
		for i := 0; i < per; i++ {
			p.particles = append(p.particles, newParticle(p.rng, burst.ID, p.cfg.FrameWidth, burst.CreatedAt))
		}
	}
	if limit > 0 && len(p.particles) > limit {
		// drop the oldest
		p.particles = append([]Particle(nil), p.particles[len(p.particles)-limit:]...)
	}
}

// clearTail zeroes the slots past n so dropped events can be collected.
func clearTail(events []Event, n int) {
	for i := n; i < len(events); i++ {
		events[i] = Event{}
	}
}
