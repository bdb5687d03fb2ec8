// Package main provides the vecembed CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/viant/vecembed/internal/config"
	"github.com/viant/vecembed/internal/logging"
	"go.uber.org/zap"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		reportError(os.Stderr, a.humanOutput(), err)
		os.Exit(exitCodeFor(err))
	}
}

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	human      bool
	debug      bool
	width      int

	cfg    *config.Config
	logger *zap.Logger
}

func newApp() *app {
	return &app{logger: zap.NewNop()}
}

// humanOutput reports whether plain text output was requested by flag or
// config.
func (a *app) humanOutput() bool {
	if a.cfg != nil {
		return a.cfg.Human
	}
	return a.human
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "vecembed",
		Short: "Embedding vector toolkit",
		Long: `vecembed validates and compares embedding vectors.

Vectors are passed as JSON arrays, either inline ('[0.1, 0.2]'),
from a file (@vector.json) or from stdin (-).

All commands output JSON by default; use --human for plain text.
SQL sessions expose vec_cosine, vec_l2, vec_magnitude, vec_normalize,
vec_dim, vec_from_json, vec_to_json and vec_max_dim.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}
	root.Version = Version

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Path to YAML config (default $"+config.EnvConfigPath+")")
	flags.BoolVar(&a.human, "human", false, "Use human-readable output instead of JSON")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	flags.IntVar(&a.width, "width", 0, "Require every vector to have exactly this many components (0 = any)")

	root.AddCommand(
		newInfoCmd(a),
		newDimCmd(a),
		newMagnitudeCmd(a),
		newCosineCmd(a),
		newDistanceCmd(a),
		newNormalizeCmd(a),
		newSQLCmd(a),
	)
	return root
}

// setup loads .env and the config file, applies flag overrides and builds the
// logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return withExitCode(ExitConfigError, fmt.Errorf("loading config: %w", err))
	}
	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = a.width
	}
	if flags.Changed("human") {
		cfg.Human = a.human
	}
	if flags.Changed("debug") {
		cfg.Debug = a.debug
	}
	if err := cfg.Validate(); err != nil {
		return withExitCode(ExitConfigError, err)
	}
	a.cfg = cfg

	a.logger = logging.NewOrNop(cfg.Debug)
	a.logger.Debug("config loaded",
		zap.String("config_path", path),
		zap.Int("width", cfg.Width),
		zap.String("database_path", cfg.DatabasePath),
		zap.Bool("human", cfg.Human))
	return nil
}
