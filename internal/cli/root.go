package cli

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/julianstephens/wagetrack/internal/backup"
	"github.com/julianstephens/wagetrack/internal/clock"
	"github.com/julianstephens/wagetrack/internal/config"
	"github.com/julianstephens/wagetrack/internal/shift"
)

type Context struct {
	Clock    clock.Clock
	Store    *config.Store
	Settings config.Settings
	// Out receives command output; nil means stdout.
	Out io.Writer
	// In supplies confirmation answers; nil means stdin.
	In io.Reader
}

func (c *Context) stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) backups() *backup.Manager {
	return backup.NewManager(c.Store.Path(), c.Clock)
}

func (c *Context) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}

// NewRand returns a seeded generator. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewTracker builds a shift tracker from the loaded settings.
func (c *Context) NewTracker(rng *rand.Rand) *shift.Tracker {
	opts := shift.Options{
		Catalog: c.Settings.Milestones,
		Effects: c.Settings.Effects(),
	}
	// a nil *rand.Rand must not become a non-nil interface
	if rng != nil {
		opts.Rand = rng
	}
	return shift.New(opts)
}

// shiftInput fills in the default tax rate when none was given.
func (c *Context) shiftInput(wage, tax, clockIn string) shift.Input {
	if tax == "" {
		tax = c.Settings.DefaultTaxPercent.String()
	}
	return shift.Input{Wage: wage, TaxPercent: tax, ClockIn: clockIn}
}
