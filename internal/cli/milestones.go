package cli

import (
	"fmt"

	"github.com/julianstephens/wagetrack/internal/utils"
)

type MilestonesCmd struct{}

func (c *MilestonesCmd) Run(ctx *Context) error {
	out := ctx.stdout()
	items := ctx.Settings.Milestones.Items()
	if len(items) == 0 {
		fmt.Fprintln(out, "No milestones configured")
		return nil
	}

	fmt.Fprintln(out, "Milestones:")
	for _, m := range items {
		fmt.Fprintf(out, "  %10s  %s\n", utils.FormatMoney(m.Threshold), m.Label)
	}
	return nil
}
