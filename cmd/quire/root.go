package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quirelabs/quire/internal/config"
	"github.com/quirelabs/quire/internal/engine"
	"github.com/quirelabs/quire/internal/rules"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "quire",
	Short: "Manuscript pagination engine",
	Long: `Quire splits large manuscripts into bounded, boundary-respecting
pages so an editor can render and edit huge documents incrementally.

Pages are sized by word and character budgets and cut at paragraph or
sentence boundaries wherever possible. Budgets come from a config file
(TOML, YAML, or JSON) and QUIRE_-prefixed environment variables.`,
	Version:       versionString(),
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (.toml, .yaml, or .json)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)",
	)

	rootCmd.AddCommand(paginateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig assembles configuration from defaults, --config, and env.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	return cfg, nil
}

// newLogger builds a slog logger honoring the configured level.
func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newEngine builds an engine for a document using the loaded config,
// wiring a Lua split rule when one is configured.
func newEngine(cfg config.Config, logger *slog.Logger, document string) (*engine.Engine, func(), error) {
	opts := []engine.Option{
		engine.WithConfig(cfg.Engine()),
		engine.WithLogger(logger),
		engine.WithContent(document),
	}

	cleanup := func() {}
	if cfg.Rules.Script != "" {
		rule, err := rules.LoadLuaRule(cfg.Rules.Script)
		if err != nil {
			return nil, nil, fmt.Errorf("loading split rule: %w", err)
		}
		opts = append(opts, engine.WithSplitRule(rule))
		cleanup = rule.Close
	}

	e, err := engine.New(opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return e, cleanup, nil
}

// readDocument loads the manuscript file named by args[0].
func readDocument(args []string) (string, error) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}
	return string(data), nil
}
