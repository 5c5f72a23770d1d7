package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/wagetrack/internal/cli"
	"github.com/julianstephens/wagetrack/internal/clock"
	"github.com/julianstephens/wagetrack/internal/config"
	"github.com/julianstephens/wagetrack/internal/constants"
	apperrors "github.com/julianstephens/wagetrack/internal/errors"
	"github.com/julianstephens/wagetrack/internal/logger"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Settings file path." type:"path" default:"~/.config/wagetrack/config.yaml"`
	DebugLog bool   `name:"debug" help:"Enable debug logging (also mirrored to stderr)."`

	Tui        cli.TuiCmd        `cmd:"" help:"Launch the interactive tracker." default:"withargs"`
	Calc       cli.CalcCmd       `cmd:"" help:"Print what a shift has earned so far."`
	Milestones cli.MilestonesCmd `cmd:"" help:"List the milestone rewards."`
	Init       cli.InitCmd       `cmd:"" help:"Write the default settings file."`
	Backup     cli.BackupCmd     `cmd:"" help:"Manage settings backups."`
	Doctor     cli.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Debug      cli.DebugCmd      `cmd:"" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Watch your pay add up, one minute at a time"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	store := config.NewStore(CLI.Config)
	if err := logger.Init(logger.Config{Debug: CLI.DebugLog, Dir: store.Dir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	settings, err := store.Load()
	if err != nil {
		// these commands are how a broken settings file gets fixed
		switch ctx.Command() {
		case "init", "doctor", "backup create", "backup list", "backup restore <backup-file>":
			logger.Warn("Settings could not be loaded, using defaults", "path", store.Path(), "error", err)
		default:
			apperrors.Fatal(err)
		}
	}

	appCtx := &cli.Context{
		Clock:    clock.RealClock{},
		Store:    store,
		Settings: settings,
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}
