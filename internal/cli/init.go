package cli

import (
	"fmt"
	"path/filepath"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing settings file (the old one is backed up first)."`
}

func (c *InitCmd) Run(ctx *Context) error {
	out := ctx.stdout()
	if c.Force && ctx.Store.Exists() {
		path, err := ctx.backups().Create()
		if err != nil {
			return fmt.Errorf("failed to back up existing settings: %w", err)
		}
		fmt.Fprintf(out, "Backed up existing settings to: %s\n", filepath.Base(path))
	}
	if err := ctx.Store.Init(c.Force); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote default settings to: %s\n", ctx.Store.Path())
	return nil
}
