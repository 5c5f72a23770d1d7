// Package config loads and saves the user's settings file.
package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/wagetrack/internal/constants"
	"github.com/julianstephens/wagetrack/internal/effects"
	"github.com/julianstephens/wagetrack/internal/logger"
	"github.com/julianstephens/wagetrack/internal/milestones"
)

// Settings are the tunable parts of the tracker.
type Settings struct {
	DefaultTaxPercent   decimal.Decimal
	TickInterval        time.Duration
	IncrementDuration   time.Duration
	MilestoneDuration   time.Duration
	CelebrationDuration time.Duration
	ConfettiPerBurst    int
	MaxParticles        int
	Milestones          milestones.Catalog
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		DefaultTaxPercent:   decimal.NewFromInt(constants.DefaultTaxPercent),
		TickInterval:        constants.DefaultTickInterval,
		IncrementDuration:   constants.IncrementDuration,
		MilestoneDuration:   constants.MilestoneDuration,
		CelebrationDuration: constants.CelebrationDuration,
		ConfettiPerBurst:    constants.ConfettiPerBurst,
		MaxParticles:        constants.MaxParticles,
		Milestones:          milestones.DefaultCatalog(),
	}
}

// Effects returns the timed event configuration for these settings.
func (s Settings) Effects() effects.Config {
	cfg := effects.DefaultConfig()
	cfg.IncrementDuration = s.IncrementDuration
	cfg.MilestoneDuration = s.MilestoneDuration
	cfg.CelebrationDuration = s.CelebrationDuration
	cfg.ConfettiPerBurst = s.ConfettiPerBurst
	cfg.MaxParticles = s.MaxParticles
	return cfg
}

// yamlDecimal reads a YAML number straight into a decimal, with no float64 step.
type yamlDecimal struct {
	decimal.Decimal
}

func (d *yamlDecimal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}
	v, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %q is not a number", node.Line, node.Value)
	}
	d.Decimal = v
	return nil
}

func (d yamlDecimal) MarshalYAML() (interface{}, error) {
	tag := "!!float"
	if d.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: d.String()}, nil
}

type yamlMilestone struct {
	Amount yamlDecimal `yaml:"amount"`
	Label  string      `yaml:"label"`
}

type yamlSettings struct {
	DefaultTaxPercent     *yamlDecimal    `yaml:"default_tax_percent,omitempty"`
	TickIntervalMS        int             `yaml:"tick_interval_ms,omitempty"`
	IncrementDurationMS   int             `yaml:"increment_duration_ms,omitempty"`
	MilestoneDurationMS   int             `yaml:"milestone_duration_ms,omitempty"`
	CelebrationDurationMS int             `yaml:"celebration_duration_ms,omitempty"`
	ConfettiPerBurst      *int            `yaml:"confetti_per_burst,omitempty"`
	MaxParticles          int             `yaml:"max_particles,omitempty"`
	Milestones            []yamlMilestone `yaml:"milestones,omitempty"`
}

func toYAML(s Settings) yamlSettings {
	tax := yamlDecimal{s.DefaultTaxPercent}
	confetti := s.ConfettiPerBurst
	out := yamlSettings{
		DefaultTaxPercent:     &tax,
		TickIntervalMS:        int(s.TickInterval / time.Millisecond),
		IncrementDurationMS:   int(s.IncrementDuration / time.Millisecond),
		MilestoneDurationMS:   int(s.MilestoneDuration / time.Millisecond),
		CelebrationDurationMS: int(s.CelebrationDuration / time.Millisecond),
		ConfettiPerBurst:      &confetti,
		MaxParticles:          s.MaxParticles,
	}
	for _, m := range s.Milestones.Items() {
		out.Milestones = append(out.Milestones, yamlMilestone{
			Amount: yamlDecimal{m.Threshold},
			Label:  m.Label,
		})
	}
	return out
}

// applyYAML copies valid values from the file over the defaults. Out of range
// values are skipped with a warning; a bad milestone list is an error.
func applyYAML(s *Settings, in yamlSettings) error {
	if in.DefaultTaxPercent != nil {
		if v := in.DefaultTaxPercent.Decimal; !v.IsNegative() && v.LessThanOrEqual(decimal.NewFromInt(100)) {
			s.DefaultTaxPercent = v
		} else {
			logger.Warn("Ignoring default_tax_percent outside 0-100", "value", v.String())
		}
	}
	if in.TickIntervalMS > 0 {
		s.TickInterval = time.Duration(in.TickIntervalMS) * time.Millisecond
	}
	if in.IncrementDurationMS > 0 {
		s.IncrementDuration = time.Duration(in.IncrementDurationMS) * time.Millisecond
	}
	if in.MilestoneDurationMS > 0 {
		s.MilestoneDuration = time.Duration(in.MilestoneDurationMS) * time.Millisecond
	}
	if in.CelebrationDurationMS > 0 {
		s.CelebrationDuration = time.Duration(in.CelebrationDurationMS) * time.Millisecond
	}
	if in.ConfettiPerBurst != nil {
		if v := *in.ConfettiPerBurst; v >= 0 {
			s.ConfettiPerBurst = v
		} else {
			logger.Warn("Ignoring negative confetti_per_burst", "value", v)
		}
	}
	if in.MaxParticles > 0 {
		s.MaxParticles = in.MaxParticles
	}

	if len(in.Milestones) == 0 {
		return nil
	}
	items := make([]milestones.Milestone, 0, len(in.Milestones))
	for _, m := range in.Milestones {
		items = append(items, milestones.Milestone{
			Threshold: m.Amount.Decimal,
			Label:     m.Label,
		})
	}
	catalog, err := milestones.NewCatalog(items)
	if err != nil {
		return fmt.Errorf("invalid milestones: %w", err)
	}
	s.Milestones = catalog
	return nil
}
