// Package cli wires configuration, logging and use cases for the commands.
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/banger/internal/application/port"
	"github.com/bnema/banger/internal/application/usecase"
	"github.com/bnema/banger/internal/cli/styles"
	"github.com/bnema/banger/internal/domain/build"
	"github.com/bnema/banger/internal/infrastructure/config"
	"github.com/bnema/banger/internal/infrastructure/network"
	"github.com/bnema/banger/internal/logging"
)

// Options controls how the App is built.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
	// LogLevel overrides logging.level when non-empty.
	LogLevel string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Logger        zerolog.Logger

	Network   port.NetworkContextProvider
	Resolver  *usecase.ResolveQueryUseCase
	Shortcuts *usecase.SearchShortcutsUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp loads configuration and builds the resolver.
func NewApp(opts Options) (*App, error) {
	var managerOpts []config.ManagerOption
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}

	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logger, logCleanup := newLogger(cfg, level)
	ctx := logging.WithContext(context.Background(), logger)

	provider := NetworkProvider(cfg)
	resolver, err := NewResolver(cfg, provider)
	if err != nil {
		logCleanup()
		return nil, err
	}

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Int("engines", resolver.Registry().Len()).
		Msg("app initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Logger:        logger,
		Network:       provider,
		Resolver:      resolver,
		Shortcuts:     usecase.NewSearchShortcutsUseCase(resolver.Registry()),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// newLogger builds the console logger, plus the rotating file when
// logging.enable_file_log is set. A file that cannot be opened is reported
// and logging continues on stderr.
func newLogger(cfg *config.Config, level string) (zerolog.Logger, func()) {
	logCfg := logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	if !cfg.Logging.EnableFileLog {
		return logging.New(logCfg), func() {}
	}

	dir, err := cfg.ResolveLogDir()
	if err != nil {
		logger := logging.New(logCfg)
		logger.Warn().Err(err).Msg("file logging disabled")
		return logger, func() {}
	}

	logger, cleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Dir:        dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, true)
	if err != nil {
		logger.Warn().Err(err).Str("dir", dir).Msg("file logging disabled")
	}
	return logger, cleanup
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// WithContext returns parent carrying the application logger.
func (a *App) WithContext(parent context.Context) context.Context {
	return logging.WithContext(parent, a.Logger)
}

// NetworkProvider picks the SSID source for cfg: a pinned SSID when
// network.ssid is set, the configured command otherwise.
func NetworkProvider(cfg *config.Config) port.NetworkContextProvider {
	if cfg.Network.SSID != "" {
		return network.StaticProvider{SSID: cfg.Network.SSID}
	}
	return network.NewCommandProvider(
		network.WithCommand(cfg.Network.SSIDCommand, cfg.Network.SSIDArgs...),
		network.WithTimeout(time.Duration(cfg.Network.SSIDTimeoutMs)*time.Millisecond),
	)
}

// NewResolver builds the registry and resolver described by cfg.
func NewResolver(cfg *config.Config, provider port.NetworkContextProvider) (*usecase.ResolveQueryUseCase, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, fmt.Errorf("build engine registry: %w", err)
	}

	resolver, err := usecase.NewResolveQueryUseCase(registry, provider, usecase.ResolverPolicy{
		PrivateEngine:  cfg.Search.DefaultEngine,
		TrustedEngine:  cfg.Search.TrustedEngine,
		TrustedMarkers: cfg.Network.TrustedMarkers,
		BangSuggester:  cfg.Search.BangSuggester,
	})
	if err != nil {
		return nil, fmt.Errorf("build resolver: %w", err)
	}
	return resolver, nil
}
