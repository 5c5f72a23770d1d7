package cli

import (
	"encoding/json"
	"fmt"
)

type DebugCmd struct {
	ConfigPath *DebugConfigPathCmd `cmd:"" help:"Show settings file path."`
	Settings   *DebugSettingsCmd   `cmd:"" help:"Dump effective settings as JSON."`
}

type DebugConfigPathCmd struct{}

func (cmd *DebugConfigPathCmd) Run(ctx *Context) error {
	output := map[string]string{
		"path":   ctx.Store.Path(),
		"exists": fmt.Sprint(ctx.Store.Exists()),
	}
	return writeJSON(ctx, output)
}

type DebugSettingsCmd struct{}

type debugMilestone struct {
	Amount string `json:"amount"`
	Label  string `json:"label"`
}

type debugSettings struct {
	DefaultTaxPercent   string           `json:"default_tax_percent"`
	TickInterval        string           `json:"tick_interval"`
	IncrementDuration   string           `json:"increment_duration"`
	MilestoneDuration   string           `json:"milestone_duration"`
	CelebrationDuration string           `json:"celebration_duration"`
	ConfettiPerBurst    int              `json:"confetti_per_burst"`
	MaxParticles        int              `json:"max_particles"`
	Milestones          []debugMilestone `json:"milestones"`
}

func (cmd *DebugSettingsCmd) Run(ctx *Context) error {
	s := ctx.Settings
	output := debugSettings{
		DefaultTaxPercent:   s.DefaultTaxPercent.String(),
		TickInterval:        s.TickInterval.String(),
		IncrementDuration:   s.IncrementDuration.String(),
		MilestoneDuration:   s.MilestoneDuration.String(),
		CelebrationDuration: s.CelebrationDuration.String(),
		ConfettiPerBurst:    s.ConfettiPerBurst,
		MaxParticles:        s.MaxParticles,
	}
	for _, m := range s.Milestones.Items() {
		output.Milestones = append(output.Milestones, debugMilestone{Amount: m.Threshold.String(), Label: m.Label})
	}
	return writeJSON(ctx, output)
}

func writeJSON(ctx *Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.stdout(), string(jsonBytes))
	return nil
}
