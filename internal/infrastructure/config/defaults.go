package config

import (
	"time"

	"github.com/bnema/banger/internal/domain/engine"
	"github.com/bnema/banger/internal/infrastructure/network"
)

// Default configuration constants
const (
	// Server defaults
	defaultListenAddr         = "127.0.0.1:8000"
	defaultStaticDir          = "static"
	defaultReadTimeoutSec     = 5
	defaultWriteTimeoutSec    = 10
	defaultShutdownTimeoutSec = 5

	// Network defaults
	defaultSSIDTimeoutMs = int(network.DefaultTimeout / time.Millisecond)
	defaultTrustedMarker = "BVSD"

	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 5
	defaultMaxAgeDays = 30
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:         defaultListenAddr,
			StaticDir:          defaultStaticDir,
			ReadTimeoutSec:     defaultReadTimeoutSec,
			WriteTimeoutSec:    defaultWriteTimeoutSec,
			ShutdownTimeoutSec: defaultShutdownTimeoutSec,
		},
		Search: SearchConfig{
			DefaultEngine: engine.KeyDuckDuckGo,
			TrustedEngine: engine.KeyGoogle,
			BangSuggester: engine.KeyDuckDuckGo,
			Engines:       GetDefaultEngines(),
		},
		Network: NetworkConfig{
			SSIDCommand:    network.DefaultCommand,
			SSIDArgs:       network.DefaultArgs(),
			SSIDTimeoutMs:  defaultSSIDTimeoutMs,
			TrustedMarkers: []string{defaultTrustedMarker},
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultMaxSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxAgeDays,
			Compress:   true,
		},
	}
}

// GetDefaultEngines returns the built-in bang catalog as config entries.
func GetDefaultEngines() map[string]EngineConfig {
	entries := engine.DefaultEntries()
	engines := make(map[string]EngineConfig, len(entries))
	for _, e := range entries {
		engines[e.Key] = EngineConfig{
			Name:       e.Name,
			SearchURL:  e.Engine.SearchURL,
			SuggestURL: e.Engine.SuggestURL,
		}
	}
	return engines
}
