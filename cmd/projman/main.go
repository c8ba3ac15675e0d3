package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/tgienger/projman/internal/config"
	"github.com/tgienger/projman/internal/ids"
	"github.com/tgienger/projman/internal/logging"
	"github.com/tgienger/projman/internal/state"
	"github.com/tgienger/projman/internal/ui"
	"github.com/tgienger/projman/internal/ui/styles"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// flags holds command line overrides; empty values leave the config alone
type flags struct {
	configPath string
	theme      string
	logFile    string
	logLevel   string
	orphans    string
	ids        string
	noMarkdown bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:           "projman",
		Short:         "Keep track of projects and their tasks in the terminal",
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start with the default config
  projman

  # Pick a theme and write a debug log
  projman --theme nord --log-file /tmp/projman.log --log-level debug
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(f)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	cmd.SetVersionTemplate("projman {{.Version}}\n")

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "Path to config file (default $XDG_CONFIG_HOME/projman/config.yaml)")
	fl.StringVar(&f.theme, "theme", "", "Colour theme ("+strings.Join(styles.Names(), "|")+")")
	fl.StringVar(&f.logFile, "log-file", "", "Write logs to this file")
	fl.StringVar(&f.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	fl.StringVar(&f.orphans, "orphans", "", "Tasks of a deleted project (cascade|keep)")
	fl.StringVar(&f.ids, "ids", "", "Identifier generator (uuid|sequence)")
	fl.BoolVar(&f.noMarkdown, "no-markdown", false, "Show project descriptions as plain text")

	return cmd
}

// resolveConfig loads the config file and environment, then applies flags
func resolveConfig(f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if f.theme != "" {
		cfg.Theme = f.theme
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.orphans != "" {
		cfg.Orphans = f.orphans
	}
	if f.ids != "" {
		cfg.IDs = f.ids
	}
	if f.noMarkdown {
		cfg.Markdown = false
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newStore builds the state container described by cfg
func newStore(cfg *config.Config, opts ...state.Option) (*state.Store, error) {
	policy, err := state.ParseOrphanPolicy(cfg.Orphans)
	if err != nil {
		return nil, err
	}
	kind, err := ids.ParseKind(cfg.IDs)
	if err != nil {
		return nil, err
	}
	opts = append([]state.Option{
		state.WithOrphanPolicy(policy),
		state.WithIDGenerator(ids.New(kind)),
	}, opts...)
	return state.New(opts...), nil
}

func run(cfg *config.Config) error {
	if err := styles.Use(cfg.Theme); err != nil {
		return err
	}
	styles.ApplyColorProfile()

	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(cfg.Log.File, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := newStore(cfg, state.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("starting", "version", version, "theme", cfg.Theme, "orphans", cfg.Orphans, "ids", cfg.IDs)

	// Create and run the application
	app := ui.NewApp(store, ui.Options{
		Logger:        logger,
		Markdown:      cfg.Markdown,
		CascadeDelete: cfg.Orphans == string(state.OrphansCascade),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}
	return nil
}
