package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/wagetrack/internal/logger"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	out := ctx.stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false

	// Check 1: settings file present (warning only, defaults apply)
	if !ctx.Store.Exists() {
		fmt.Fprintf(out, "⚠ Settings file: WARNING\n")
		fmt.Fprintf(out, "   %s not found, using defaults (run 'wagetrack init' to create it)\n", ctx.Store.Path())
	} else {
		fmt.Fprintf(out, "✓ Settings file: OK\n")
	}

	// Check 2: settings parse and milestones are valid
	if settings, err := ctx.Store.Load(); err != nil {
		fmt.Fprintf(out, "❌ Settings valid: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Settings valid: OK (%d milestones)\n", settings.Milestones.Len())
	}

	// Check 3: log directory writable
	if err := checkLogDirWritable(filepath.Join(ctx.Store.Dir(), "logs")); err != nil {
		fmt.Fprintf(out, "❌ Log directory writable: FAIL\n")
		fmt.Fprintf(out, "   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Log directory writable: OK\n")
		if path := logger.Path(); path != "" {
			fmt.Fprintf(out, "   Logging to %s\n", path)
		}
	}

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Some checks failed.")
		return fmt.Errorf("diagnostics failed")
	}
	fmt.Fprintln(out, "All checks passed!")
	return nil
}

func checkLogDirWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
