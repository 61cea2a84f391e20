// Package ui implements the dayplan command line.
package ui

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/dayplan/internal/config"
	"github.com/javiermolinar/dayplan/internal/logging"
	"github.com/javiermolinar/dayplan/internal/schedule"
	"github.com/javiermolinar/dayplan/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	root       *cobra.Command
	debug      bool // force debug logging

	log      zerolog.Logger
	closeLog func()
}

// NewApp creates the CLI application. A nil cfg is loaded from --config
// before any command runs.
func NewApp(cfg *config.Config) *App {
	a := &App{
		config:   cfg,
		log:      zerolog.Nop(),
		closeLog: func() {},
	}

	a.root = &cobra.Command{
		Use:   "dayplan",
		Short: "Plan a single day on a conflict-free timeline",
		Long: `dayplan keeps one day's activities sorted and free of overlaps.

Adding, editing or moving an activity never fails because of a clash:
activities that would overlap are pushed forward until the day fits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runTUI()
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultConfigPath(), "Path to the config file")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.timeCmd())

	return a
}

// setup loads the config when needed and opens the log file.
func (a *App) setup(cmd *cobra.Command) error {
	if a.config == nil || cmd.Flags().Changed("config") {
		cfg, err := config.LoadFrom(a.configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}

	level := a.config.Log.Level
	if a.debug {
		level = "debug"
	}
	logger, closeLog, err := logging.New(level, a.config.LogFile())
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	a.closeLog()
	a.closeLog = closeLog
	a.log = logger.With().Str("command", cmd.Name()).Logger()
	a.log.Debug().Str("config", a.configPath).Msg("starting")
	return nil
}

func (a *App) runTUI() error {
	engine, res, err := a.seededEngine()
	if err != nil {
		return err
	}
	return tui.Run(engine, a.config,
		tui.WithLogger(a.log),
		tui.WithConflicts(res.Conflicts),
		tui.WithConfigSaver(func(cfg *config.Config) error {
			return cfg.SaveTo(a.configPath)
		}),
	)
}

// newEngine returns an empty engine using the configured categories.
func (a *App) newEngine() (*schedule.Engine, error) {
	set, err := a.config.CategorySet()
	if err != nil {
		return nil, err
	}
	return schedule.New(schedule.WithLogger(a.log), schedule.WithCategories(set)), nil
}

// seededEngine returns an engine loaded with the configured starting schedule.
func (a *App) seededEngine() (*schedule.Engine, schedule.Result, error) {
	engine, err := a.newEngine()
	if err != nil {
		return nil, schedule.Result{}, err
	}
	res, err := engine.Load(a.config.Drafts())
	if err != nil {
		return nil, schedule.Result{}, fmt.Errorf("loading configured schedule: %w", err)
	}
	return engine, res, nil
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dayplan %s (commit: %s)\n", Version, Commit)
		},
	}
}

// SetArgs overrides the command line arguments, for tests.
func (a *App) SetArgs(args ...string) {
	a.root.SetArgs(args)
}

// SetOutput redirects standard and error output.
func (a *App) SetOutput(out, errOut io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(errOut)
}

// SetInput replaces standard input, used by interactive commands.
func (a *App) SetInput(in io.Reader) {
	a.root.SetIn(in)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the log file.
func (a *App) Close() {
	a.closeLog()
}
