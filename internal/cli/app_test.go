package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/banger/internal/infrastructure/config"
	"github.com/bnema/banger/internal/infrastructure/network"
)

func TestNetworkProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	_, isCommand := NetworkProvider(cfg).(*network.CommandProvider)
	assert.True(t, isCommand)

	cfg.Network.SSID = "BVSD-Guest"
	provider := NetworkProvider(cfg)
	ssid, ok := provider.CurrentSSID(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "BVSD-Guest", ssid)
}

func TestNewResolver_FromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.DefaultEngine = "w"
	cfg.Network.TrustedMarkers = []string{"CORP"}

	resolver, err := NewResolver(cfg, network.StaticProvider{SSID: "home"})
	require.NoError(t, err)
	assert.Equal(t,
		"https://en.wikipedia.org/w/index.php?title=Special:Search&search=x",
		resolver.SearchURL(context.Background(), "x"))

	resolver, err = NewResolver(cfg, network.StaticProvider{SSID: "CORP-5G"})
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.com/search?hl=en&q=x", resolver.SearchURL(context.Background(), "x"))
}

func TestNewResolver_UnknownEngine(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Search.BangSuggester = "missing"

	_, err := NewResolver(cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestNewApp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("BANGER_SSID", "lab")

	app, err := NewApp(Options{ConfigFile: path, LogLevel: "disabled"})
	require.NoError(t, err)

	assert.Equal(t, path, app.ConfigManager.GetConfigFile())
	assert.Equal(t, "lab", app.Config.Network.SSID)
	assert.Equal(t, 7, app.Resolver.Registry().Len())
	assert.NotNil(t, app.Shortcuts)
	assert.NotNil(t, app.Ctx())
}

func TestNewApp_FileLogging(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := config.DefaultConfig()
	cfg.Logging.EnableFileLog = true
	cfg.Logging.LogDir = filepath.Join(dir, "logs")
	cfg.Logging.Format = "json"
	require.NoError(t, config.WriteConfig(cfg, path))

	app, err := NewApp(Options{ConfigFile: path, LogLevel: "info"})
	require.NoError(t, err)
	app.Logger.Info().Msg("hello from test")
	require.NoError(t, app.Close())

	assert.FileExists(t, filepath.Join(dir, "logs", "banger.log"))
}
