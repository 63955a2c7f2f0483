package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/go-pkgz/lgr"

	"github.com/julianstephens/summon/internal/cli"
	"github.com/julianstephens/summon/internal/storage"
	"github.com/julianstephens/summon/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/summon/summon.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd `cmd:"" help:"Initialize summon storage."`
	Tui     cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Project struct {
		Add    cli.ProjectAddCmd    `cmd:"" help:"Add a new project."`
		List   cli.ProjectListCmd   `cmd:"" help:"List all projects."`
		Remove cli.ProjectRemoveCmd `cmd:"" help:"Remove a project."`
	} `cmd:"" help:"Manage projects."`
	Toggle cli.ToggleCmd `cmd:"" help:"Cycle a day: not booked -> booked -> paid."`
	Cal    cli.CalCmd    `cmd:"" help:"Show a project's month calendar."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a storage backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run storage diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("summon"),
		kong.Description("Freelance work-calendar and payment tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if CLI.Debug {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile)
	}
	lgr.Setup(logOpts...)

	// Determine storage type based on extension
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}
	appCtx := &cli.Context{
		Store:    store.New(provider),
		Provider: provider,
	}

	err := ctx.Run(appCtx)
	provider.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
