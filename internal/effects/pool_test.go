package effects

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var base = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestPool(seed int64) *Pool {
	return NewPool(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEventLiveForExactlyItsDuration(t *testing.T) {
	p := newTestPool(1)
	ev := p.SpawnIncrement(base, decimal.RequireFromString("0.25"))
	if ev.Duration != 2*time.Second {
		t.Fatalf("expected default increment duration 2s, got %v", ev.Duration)
	}

	for _, offset := range []time.Duration{0, time.Millisecond, time.Second, 2*time.Second - time.Nanosecond} {
		frame := p.Tick(base.Add(offset))
		if len(frame.Events) != 1 {
			t.Fatalf("at +%v expected 1 live event, got %d", offset, len(frame.Events))
		}
	}

	frame := p.Tick(base.Add(2 * time.Second))
	if len(frame.Events) != 0 {
		t.Errorf("expected event to expire at T+D, got %d live", len(frame.Events))
	}
	if p.Len() != 0 {
		t.Errorf("expired event was not collected, Len() = %d", p.Len())
	}

	// Collected events stay gone even if an earlier instant is seen again
	if frame := p.Tick(base); len(frame.Events) != 0 {
		t.Errorf("collected event came back: %d live", len(frame.Events))
	}
}

func TestIncrementProgress(t *testing.T) {
	ev := Event{Kind: KindIncrement, CreatedAt: base, Duration: 2 * time.Second}

	start := ev.Progress(base)
	if start.Alpha != 255 || start.OffsetY != 0 {
		t.Errorf("start progress = %+v", start)
	}

	mid := ev.Progress(base.Add(time.Second))
	if mid.Alpha != 127 || !approx(mid.OffsetY, 15) {
		t.Errorf("mid progress = %+v, want alpha 127 offset 15", mid)
	}

	end := ev.Progress(base.Add(5 * time.Second))
	if end.Alpha != 0 || !approx(end.OffsetY, IncrementRise) {
		t.Errorf("end progress = %+v", end)
	}
}

func TestMilestoneEnvelope(t *testing.T) {
	ev := Event{Kind: KindMilestone, CreatedAt: base, Duration: time.Second}

	tests := []struct {
		name      string
		at        time.Duration
		minAlpha  uint8
		maxAlpha  uint8
		wantScale float64
	}{
		{"start", 0, 0, 0, 0.8},
		{"halfway through fade in", 75 * time.Millisecond, 126, 128, 0.9},
		{"end of fade in", 150 * time.Millisecond, 255, 255, 1.0},
		{"hold", 500 * time.Millisecond, 255, 255, 1.0},
		{"halfway through fade out", 925 * time.Millisecond, 126, 128, 1.0},
		{"almost gone", 999 * time.Millisecond, 0, 2, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ev.Progress(base.Add(tt.at))
			if got.Alpha < tt.minAlpha || got.Alpha > tt.maxAlpha {
				t.Errorf("Alpha = %d, want in [%d, %d]", got.Alpha, tt.minAlpha, tt.maxAlpha)
			}
			if math.Abs(got.Scale-tt.wantScale) > 1e-6 {
				t.Errorf("Scale = %v, want %v", got.Scale, tt.wantScale)
			}
		})
	}
}

func TestProgressBeforeCreationIsClamped(t *testing.T) {
	ev := Event{Kind: KindIncrement, CreatedAt: base, Duration: time.Second}
	if f := ev.Fraction(base.Add(-time.Second)); f != 0 {
		t.Errorf("Fraction before creation = %v, want 0", f)
	}
	if ev.Expired(base.Add(-time.Second)) {
		t.Error("event should not be expired before it was created")
	}
}

func TestMilestonesStackInCreationOrder(t *testing.T) {
	p := newTestPool(1)
	p.SpawnMilestone(base, "a coffee", decimal.NewFromInt(5))
	p.SpawnMilestone(base.Add(100*time.Millisecond), "a sandwich", decimal.NewFromInt(10))
	p.SpawnMilestone(base.Add(200*time.Millisecond), "a movie ticket", decimal.NewFromInt(15))

	frame := p.Tick(base.Add(250 * time.Millisecond))
	ms := frame.Of(KindMilestone)
	if len(ms) != 3 {
		t.Fatalf("expected 3 live milestones, got %d", len(ms))
	}
	wantLabels := []string{"a coffee", "a sandwich", "a movie ticket"}
	for i, live := range ms {
		if live.Label != wantLabels[i] {
			t.Errorf("rank %d label = %q, want %q", i, live.Label, wantLabels[i])
		}
		if live.Rank != i {
			t.Errorf("rank = %d, want %d", live.Rank, i)
		}
		if !approx(live.StackOffset, float64(i)*MilestoneSpacing) {
			t.Errorf("StackOffset = %v, want %v", live.StackOffset, float64(i)*MilestoneSpacing)
		}
	}

	// The first banner expires and the others move up
	frame = p.Tick(base.Add(3050 * time.Millisecond))
	ms = frame.Of(KindMilestone)
	if len(ms) != 2 {
		t.Fatalf("expected 2 live milestones, got %d", len(ms))
	}
	if ms[0].Label != "a sandwich" || ms[0].Rank != 0 || ms[0].StackOffset != 0 {
		t.Errorf("unexpected first banner after expiry: %+v", ms[0])
	}
}

func TestEventIDsFollowCreationOrder(t *testing.T) {
	p := newTestPool(1)
	a := p.SpawnIncrement(base, decimal.NewFromInt(1))
	b := p.SpawnMilestone(base, "x", decimal.NewFromInt(5))
	c := p.SpawnBurst(base, decimal.NewFromInt(1))
	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("IDs not increasing: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestBurstDrivesCelebrationWindow(t *testing.T) {
	p := newTestPool(42)
	amount := decimal.RequireFromString("0.25")
	p.SpawnBurst(base, amount)

	frame := p.Tick(base)
	c := frame.Celebration
	if !c.Active {
		t.Fatal("expected celebration to be active right after a burst")
	}
	if !approx(c.Intensity, MaxShake) {
		t.Errorf("Intensity at start = %v, want %v", c.Intensity, MaxShake)
	}
	if !c.Amount.Equal(amount) {
		t.Errorf("Amount = %s, want %s", c.Amount, amount)
	}
	if len(frame.Particles) != 50 {
		t.Errorf("expected 50 particles, got %d", len(frame.Particles))
	}

	frame = p.Tick(base.Add(500 * time.Millisecond))
	if !approx(frame.Celebration.Hue, 150) {
		t.Errorf("Hue at 0.5s = %v, want 150", frame.Celebration.Hue)
	}

	frame = p.Tick(base.Add(1500 * time.Millisecond))
	if !approx(frame.Celebration.Intensity, MaxShake/2) {
		t.Errorf("Intensity at half = %v, want %v", frame.Celebration.Intensity, MaxShake/2)
	}

	prev := frame.Celebration.Intensity
	frame = p.Tick(base.Add(2900 * time.Millisecond))
	if frame.Celebration.Intensity >= prev {
		t.Errorf("intensity did not decay: %v >= %v", frame.Celebration.Intensity, prev)
	}

	frame = p.Tick(base.Add(3 * time.Second))
	if frame.Celebration.Active {
		t.Error("celebration should end after its window")
	}
}

func TestNewerBurstRestartsCelebration(t *testing.T) {
	p := newTestPool(3)
	p.SpawnBurst(base, decimal.NewFromInt(1))
	p.SpawnBurst(base.Add(2*time.Second), decimal.NewFromInt(2))

	frame := p.Tick(base.Add(2 * time.Second))
	if !approx(frame.Celebration.Intensity, MaxShake) {
		t.Errorf("newest burst should drive intensity, got %v", frame.Celebration.Intensity)
	}
	if !frame.Celebration.Amount.Equal(decimal.NewFromInt(2)) {
		t.Errorf("Amount = %s, want 2", frame.Celebration.Amount)
	}

	frame = p.Tick(base.Add(4 * time.Second))
	if !frame.Celebration.Active {
		t.Error("second burst window should still be open at +4s")
	}
}

func TestParticlesLeaveBelowFrame(t *testing.T) {
	p := newTestPool(7)
	p.SpawnBurst(base, decimal.NewFromInt(1))

	// Slowest particle moves 120px/s, fastest 300px/s
	frame := p.Tick(base.Add(time.Second))
	if len(frame.Particles) != 50 {
		t.Fatalf("expected all particles visible after 1s, got %d", len(frame.Particles))
	}
	for _, lp := range frame.Particles {
		if lp.PosY < 100 || lp.PosY > 300 {
			t.Errorf("particle y = %v after 1s, want within [100, 300]", lp.PosY)
		}
		if lp.PosX < 0 || lp.PosX >= DefaultConfig().FrameWidth {
			t.Errorf("particle x = %v outside frame", lp.PosX)
		}
	}

	// (550 + 20 + 10) / 120 < 5s
	frame = p.Tick(base.Add(5 * time.Second))
	if len(frame.Particles) != 0 || p.ParticleCount() != 0 {
		t.Errorf("expected every particle gone after 5s, got %d", len(frame.Particles))
	}
}

func TestParticlesDeterministicForSeed(t *testing.T) {
	a := newTestPool(99)
	b := newTestPool(99)
	a.SpawnBurst(base, decimal.NewFromInt(1))
	b.SpawnBurst(base, decimal.NewFromInt(1))

	fa := a.Tick(base.Add(time.Second))
	fb := b.Tick(base.Add(time.Second))
	if len(fa.Particles) != len(fb.Particles) {
		t.Fatalf("particle counts differ: %d vs %d", len(fa.Particles), len(fb.Particles))
	}
	for i := range fa.Particles {
		if fa.Particles[i].PosX != fb.Particles[i].PosX || fa.Particles[i].PosY != fb.Particles[i].PosY {
			t.Fatalf("particle %d differs between equally seeded pools", i)
		}
	}
}

func TestParticleCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxParticles = 60
	p := NewPool(cfg, rand.New(rand.NewSource(1)))

	p.SpawnBurst(base, decimal.NewFromInt(1))
	second := p.SpawnBurst(base, decimal.NewFromInt(1))

	if p.ParticleCount() != 60 {
		t.Fatalf("ParticleCount() = %d, want 60", p.ParticleCount())
	}
	frame := p.Tick(base)
	newest := 0
	for _, lp := range frame.Particles {
		if lp.BurstID == second.ID {
			newest++
		}
	}
	if newest != 50 {
		t.Errorf("expected the newest burst to keep all 50 particles, got %d", newest)
	}
}

// countingRand records how many particles were drawn.
type countingRand struct {
	*rand.Rand
	floats int
}

func (r *countingRand) Float64() float64 {
	r.floats++
	return r.Rand.Float64()
}

func TestBacklogOnlyGeneratesKeptParticles(t *testing.T) {
	rng := &countingRand{Rand: rand.New(rand.NewSource(1))}
	p := NewPool(DefaultConfig(), rng)

	// an 8-hour catch-up spawns one burst per minute in one tick
	var last Event
	for m := 0; m < 480; m++ {
		last = p.SpawnBurst(base, decimal.NewFromInt(1))
	}
	frame := p.Tick(base)

	if len(frame.Particles) != 1000 {
		t.Fatalf("expected the cap of 1000 particles, got %d", len(frame.Particles))
	}
	newest := 0
	for _, lp := range frame.Particles {
		if lp.BurstID == last.ID {
			newest++
		}
	}
	if newest != 50 {
		t.Errorf("newest burst kept %d particles, want 50", newest)
	}

	// only the 20 newest bursts are materialized
	one := &countingRand{Rand: rand.New(rand.NewSource(1))}
	single := NewPool(DefaultConfig(), one)
	single.SpawnBurst(base, decimal.NewFromInt(1))
	single.Tick(base)
	if want := 20 * one.floats; rng.floats != want {
		t.Errorf("drew %d floats for the backlog, want %d", rng.floats, want)
	}

	if !frame.Celebration.Active || !approx(frame.Celebration.Intensity, MaxShake) {
		t.Errorf("celebration should follow the newest burst: %+v", frame.Celebration)
	}
}

func TestPoolWithoutRandHasNoParticles(t *testing.T) {
	p := NewPool(DefaultConfig(), nil)
	p.SpawnBurst(base, decimal.NewFromInt(1))
	if p.ParticleCount() != 0 {
		t.Errorf("expected no particles without a Rand, got %d", p.ParticleCount())
	}
	if !p.Tick(base).Celebration.Active {
		t.Error("the celebration window does not depend on particles")
	}
}

func TestClear(t *testing.T) {
	p := newTestPool(1)
	p.SpawnIncrement(base, decimal.NewFromInt(1))
	p.SpawnMilestone(base, "a coffee", decimal.NewFromInt(5))
	p.SpawnBurst(base, decimal.NewFromInt(1))

	p.Clear()

	if p.Len() != 0 || p.ParticleCount() != 0 {
		t.Errorf("Clear() left %d events and %d particles", p.Len(), p.ParticleCount())
	}
	frame := p.Tick(base)
	if len(frame.Events) != 0 || frame.Celebration.Active {
		t.Errorf("expected empty frame after Clear, got %+v", frame)
	}
}

func TestSpawnKeepsExplicitDuration(t *testing.T) {
	p := newTestPool(1)
	ev := p.Spawn(Event{Kind: KindIncrement, CreatedAt: base, Duration: 500 * time.Millisecond})
	if ev.Duration != 500*time.Millisecond {
		t.Errorf("Duration = %v, want 500ms", ev.Duration)
	}
	if len(p.Tick(base.Add(500*time.Millisecond)).Events) != 0 {
		t.Error("expected explicit duration to be honored")
	}
}
