// Package cmd provides Cobra CLI commands for banger.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/cli"
	"github.com/bnema/banger/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info

	configFile string
	logLevel   string

	rootCmd = &cobra.Command{
		Use:   "banger",
		Short: "Bang-aware search redirect server",
		Long: `banger - a personal search redirector with DuckDuckGo-style bangs.

Point your browser's search engine at banger and prefix queries with a
bang to pick the engine:

  !g golang generics       Google
  !w Alan Turing           Wikipedia
  !crates serde            crates.io

Queries without a bang go to the default engine, chosen from the wireless
network you are on.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.CommandPath() {
			case "banger help", "banger completion", "banger gen-docs", "banger version",
				"banger config path", "banger config init", "banger config schema":
				return nil
			}
			if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile, LogLevel: logLevel})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/banger/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error, disabled)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
