package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mitchellh/go-homedir"

	"trainweek/internal/backup"
	"trainweek/internal/cli"
	"trainweek/internal/planner"
	"trainweek/internal/storage"
)

const version = "v0.3.0"

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.db for SQLite, .json for a plain document)." default:"~/.config/trainweek/trainweek.db"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize trainweek storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive weekly board." default:"1"`
	Week     cli.WeekCmd     `cmd:"" help:"Show a week's schedule."`
	Add      cli.AddCmd      `cmd:"" help:"Add a workout."`
	Edit     cli.EditCmd     `cmd:"" help:"Edit a workout."`
	Move     cli.MoveCmd     `cmd:"" help:"Move a workout to another day or position."`
	Done     cli.DoneCmd     `cmd:"" help:"Toggle a workout's completion."`
	Rest     cli.RestCmd     `cmd:"" help:"Mark a day as a rest day."`
	Remove   cli.RemoveCmd   `cmd:"" help:"Remove a workout."`
	Category cli.CategoryCmd `cmd:"" help:"Manage categories."`
	History  cli.HistoryCmd  `cmd:"" help:"Show the activity history."`
	Export   cli.ExportCmd   `cmd:"" help:"Export all data to a backup file."`
	Import   cli.ImportCmd   `cmd:"" help:"Import a backup file, replacing all data."`
	Settings cli.SettingsCmd `cmd:"" help:"View or update settings."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run storage health checks."`
	Debug    cli.DebugCmd    `cmd:"" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("trainweek"),
		kong.Description("Weekly training planner with a drag-and-drop board"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	configPath, err := homedir.Expand(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config path: %v\n", err)
		os.Exit(1)
	}

	// Storage backend follows the file extension.
	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	appCtx := &cli.Context{
		Store:   store,
		Planner: planner.New(store),
		Backup:  backup.NewRepository(store),
		Version: version,
	}

	err = ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
