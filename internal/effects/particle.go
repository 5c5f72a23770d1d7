package effects

import (
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rand is the source of randomness for particles. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// confetti colors
var palette = []colorful.Color{
	{R: 1, G: 0, B: 0},
	{R: 1, G: 165.0 / 255, B: 0},
	{R: 1, G: 1, B: 0},
	{R: 0, G: 1, B: 0},
	{R: 0, G: 127.0 / 255, B: 1},
	{R: 139.0 / 255, G: 0, B: 1},
	{R: 1, G: 20.0 / 255, B: 147.0 / 255},
	{R: 0, G: 1, B: 1},
}

const (
	particleSpawnY      = -10.0
	particleExitMargin  = 20.0
	particleMinSize     = 4
	particleMaxSize     = 10
	particleMinSpeed    = 120.0 // px/s
	particleMaxSpeed    = 300.0
	particleMaxSpinRate = 300.0 // deg/s
)

// Particle is one piece of confetti. Its position is a pure function of time.
type Particle struct {
	BurstID   uint64
	X         float64
	Y0        float64
	Size      int
	Speed     float64 // px/s, downward
	Rotation  float64 // degrees at spawn
	Spin      float64 // deg/s
	Color     colorful.Color
	CreatedAt time.Time
}

// Position returns the particle's frame coordinates at now.
func (p Particle) Position(now time.Time) (x, y float64) {
	return p.X, p.Y0 + p.Speed*secondsSince(p.CreatedAt, now)
}

// Angle returns the particle's rotation in degrees at now.
func (p Particle) Angle(now time.Time) float64 {
	return math.Mod(p.Rotation+p.Spin*secondsSince(p.CreatedAt, now), 360)
}

// Visible reports whether the particle is still above the bottom of the frame.
func (p Particle) Visible(now time.Time, frameHeight float64) bool {
	_, y := p.Position(now)
	return y < frameHeight+particleExitMargin
}

// LiveParticle is a particle placed for the current tick.
type LiveParticle struct {
	Particle
	PosX  float64
	PosY  float64
	Angle float64
}

func newParticle(rng Rand, burstID uint64, width float64, at time.Time) Particle {
	w := int(width)
	if w < 1 {
		w = 1
	}
	return Particle{
		BurstID:   burstID,
		X:         float64(rng.Intn(w)),
		Y0:        particleSpawnY,
		Size:      particleMinSize + rng.Intn(particleMaxSize-particleMinSize+1),
		Speed:     uniform(rng, particleMinSpeed, particleMaxSpeed),
		Rotation:  uniform(rng, 0, 360),
		Spin:      uniform(rng, -particleMaxSpinRate, particleMaxSpinRate),
		Color:     palette[rng.Intn(len(palette))],
		CreatedAt: at,
	}
}

// RainbowColor returns the fully saturated color for a hue in degrees.
func RainbowColor(hue float64) colorful.Color {
	return colorful.Hsv(normalizeHue(hue), 1, 1)
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func secondsSince(from, now time.Time) float64 {
	d := now.Sub(from)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
