package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"mealtrack/internal/cli"
	"mealtrack/internal/constants"
	apperrors "mealtrack/internal/errors"
	"mealtrack/internal/journal"
	"mealtrack/internal/logger"
	"mealtrack/internal/recipes"
	"mealtrack/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. Paths ending in .db or .sqlite use SQLite, anything else a JSON file." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init cli.InitCmd `cmd:"" help:"Initialize mealtrack storage."`
	Tui  cli.TuiCmd  `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Day  cli.DayCmd  `cmd:"" help:"Show the journal for a day."`
	Log  struct {
		Add    cli.LogAddCmd    `cmd:"" help:"Log a meal to a day's journal." default:"1"`
		Remove cli.LogRemoveCmd `cmd:"" help:"Remove a logged meal."`
	} `cmd:"" help:"Manage logged meals."`
	Search   cli.SearchCmd   `cmd:"" help:"Search a recipe provider."`
	Details  cli.DetailsCmd  `cmd:"" help:"Show full details for a recipe."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show nutrition statistics for a period."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage profile and nutrition goals."`
	Apikey   struct {
		Set    cli.ApikeySetCmd    `cmd:"" help:"Store a provider API key in the OS keyring."`
		Delete cli.ApikeyDeleteCmd `cmd:"" help:"Delete a provider API key from the OS keyring."`
	} `cmd:"" help:"Manage recipe provider API keys."`
	Clear cli.ClearCmd `cmd:"" help:"Delete all journals and reset settings."`
}

func main() {
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Meal and nutrition tracking companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
	}

	store := storage.NewStore(CLI.Config)
	appCtx := &cli.Context{
		Store:   store,
		Session: journal.NewSession(store),
		Recipes: recipes.NewClient(),
	}

	// Load the store before running the command; init handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		defer store.Close()
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
