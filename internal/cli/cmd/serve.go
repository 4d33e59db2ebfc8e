package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/banger/internal/cli"
	"github.com/bnema/banger/internal/infrastructure/config"
	"github.com/bnema/banger/internal/infrastructure/server"
	"github.com/bnema/banger/internal/logging"
)

var (
	serveListen    string
	serveStaticDir string
	serveNoWatch   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the redirect server",
	Long: `Serve /search, /suggest, /opensearch.xml and / until interrupted.

The config file is watched: engine and network changes apply to new
requests without a restart. Listener settings need a restart.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveListen, "listen", "l", "", "override server.listen_addr")
	serveCmd.Flags().StringVar(&serveStaticDir, "static-dir", "", "override server.static_dir")
	serveCmd.Flags().BoolVar(&serveNoWatch, "no-watch", false, "do not reload the config file on change")
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	opts := serverOptions(a.Config)
	if serveListen != "" {
		opts.ListenAddr = serveListen
	}
	if serveStaticDir != "" {
		opts.StaticDir = serveStaticDir
	}

	srv := server.New(a.Resolver, opts, a.Logger)

	if !serveNoWatch {
		a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			resolver, err := cli.NewResolver(cfg, cli.NetworkProvider(cfg))
			if err != nil {
				a.Logger.Warn().Err(err).Msg("config reloaded but resolver rebuild failed, keeping previous engines")
				return
			}
			srv.SetResolver(resolver)
			a.Logger.Info().Int("engines", resolver.Registry().Len()).Msg("engines reloaded")
		})
		if err := a.ConfigManager.Watch(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(logging.WithComponent(a.WithContext(cmd.Context()), "server"), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.Logger.Info().
		Str("config", a.ConfigManager.GetConfigFile()).
		Str("static_dir", opts.StaticDir).
		Msg("starting banger")

	return srv.Run(ctx)
}

func serverOptions(cfg *config.Config) server.Options {
	return server.Options{
		ListenAddr:        cfg.Server.ListenAddr,
		StaticDir:         cfg.Server.StaticDir,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		ShutdownTimeout:   time.Duration(cfg.Server.ShutdownTimeoutSec) * time.Second,
		RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
		Burst:             cfg.Server.RateLimit.Burst,
	}
}
