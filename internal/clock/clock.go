// Package clock converts a clock-in instant and the current instant into
// whole-second and whole-minute elapsed counts.
package clock

import "time"

// Clock abstracts time for deterministic tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

// Now returns the current time using the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.T
}

var (
	_ Clock = RealClock{}
	_ Clock = FixedClock{}
)

// Elapsed is the time between a shift start and now, truncated to whole seconds.
type Elapsed struct {
	Seconds int64
	Minutes int64
	// Skewed is set when now was before start and the result was clamped to zero.
	Skewed bool
}

// Since returns the elapsed time from start to now. A now before start is
// clamped to zero elapsed.
func Since(start, now time.Time) Elapsed {
	d := now.Sub(start)
	if d < 0 {
		return Elapsed{Skewed: true}
	}
	secs := int64(d / time.Second)
	return Elapsed{
		Seconds: secs,
		Minutes: secs / 60,
	}
}

// Duration returns the elapsed whole seconds as a time.Duration.
func (e Elapsed) Duration() time.Duration {
	return time.Duration(e.Seconds) * time.Second
}

// HMS splits the elapsed seconds into hours, minutes and seconds.
func (e Elapsed) HMS() (h, m, s int64) {
	return e.Seconds / 3600, (e.Seconds % 3600) / 60, e.Seconds % 60
}
