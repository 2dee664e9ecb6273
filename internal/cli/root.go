// Package cli implements the pyext command line.
//
// Packaging subcommands that need compiled code (build, install, wheel) run
// the native configure and build stages from PersistentPreRunE before their
// own handler. Metadata subcommands never touch the toolchain.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	pyext "github.com/contriboss/python-extension-go"
	"github.com/contriboss/python-extension-go/ctxlog"
	"github.com/contriboss/python-extension-go/internal/config"
)

var (
	buildVersion string

	configPath string
	verbose    bool
)

// session holds what PersistentPreRunE prepared for the running command.
type session struct {
	config *pyext.BuildConfig
	result *pyext.BuildResult
}

var current session

// newRunner is swapped in tests to avoid spawning the real toolchain.
var newRunner = func() pyext.Runner {
	return pyext.NewExecRunner()
}

var rootCmd = &cobra.Command{
	Use:   "pyext",
	Short: "Build and classify a Python package's native extension",
	Long: `pyext configures and compiles a package's CMake-based native extension
and marks the resulting distribution as platform-specific.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFile+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log toolchain commands")
}

// Execute runs the root command with the tool version injected via ldflags.
func Execute(version string) error {
	buildVersion = version
	return rootCmd.ExecuteContext(context.Background())
}

// prepare loads config, attaches a logger and, when the subcommand needs
// compiled code, runs the native build.
func prepare(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Verbose = true
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxlog.WithLogger(ctx, logger)
	cmd.SetContext(ctx)

	current = session{config: cfg}

	if !pyext.RequiresNativeBuild(cmd.Name()) {
		logger.Debug("skipping native build", "command", cmd.Name())
		return nil
	}

	result, err := pyext.NewOrchestrator(cfg, newRunner()).Run(ctx)
	if err != nil {
		return err
	}
	current.result = result
	return nil
}
