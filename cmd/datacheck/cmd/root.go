package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/datacheck/internal/tui"
	"github.com/dmitrymomot/datacheck/pkg/config"
	"github.com/dmitrymomot/datacheck/pkg/logger"
	"github.com/dmitrymomot/datacheck/pkg/ruleset"
	"github.com/dmitrymomot/datacheck/pkg/validator"
)

// settings are the environment-backed defaults for the flags. An
// explicit flag always wins over the environment.
type settings struct {
	RulesFile        string  `env:"DATACHECK_RULES_FILE"`
	NoColor          bool    `env:"DATACHECK_NO_COLOR" envDefault:"false"`
	MissingThreshold float64 `env:"DATACHECK_MISSING_THRESHOLD" envDefault:"0.1"`
	OutlierSigma     float64 `env:"DATACHECK_OUTLIER_SIGMA" envDefault:"3"`
}

var (
	rulesFile string
	noColor   bool
	verbose   bool

	// cfg holds the environment settings after setup has run.
	cfg settings

	// vdt is the validator shared by the interactive shell and the
	// one-shot commands: built-in rules plus any rules file. Every
	// invocation starts from a fresh one, so its error log holds only
	// the current run's entries.
	vdt *validator.Validator
)

var rootCmd = &cobra.Command{
	Use:   "datacheck",
	Short: "Validation toolbox for values and CSV tables",
	Long: `datacheck validates values against named full-match patterns, checks
numeric ranges and cross-field consistency, and runs quality checks
over CSV tables.

Run without arguments to open the interactive shell; use the
subcommands for one-shot checks in scripts.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(vdt)
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rulesFile, "rules-file", "", "YAML file with extra validation rules")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// setup loads the environment defaults, configures logging and builds
// the shared validator. It runs before every command.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("rules-file") && cfg.RulesFile != "" {
		rulesFile = cfg.RulesFile
	}
	if !flags.Changed("no-color") && cfg.NoColor {
		noColor = true
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger.SetAsDefault(logger.New(logger.WithLevel(level)))

	// lipgloss honors NO_COLOR when it first renders.
	if noColor {
		os.Setenv("NO_COLOR", "1")
	}

	vdt = validator.New()
	if rulesFile != "" {
		defs, err := ruleset.LoadFile(rulesFile)
		if err != nil {
			return err
		}
		if err := ruleset.Register(vdt, defs); err != nil {
			return err
		}
		slog.Debug("registered rules file", logger.File(rulesFile), slog.Int("rules", len(defs)))
	}

	return nil
}
