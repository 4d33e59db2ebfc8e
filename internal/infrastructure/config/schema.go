package config

import (
	"sort"

	"github.com/bnema/banger/internal/domain/engine"
	"github.com/bnema/banger/internal/domain/entity"
)

// Config represents the complete configuration for banger.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" yaml:"server" toml:"server" json:"server"`
	Search  SearchConfig  `mapstructure:"search" yaml:"search" toml:"search" json:"search"`
	Network NetworkConfig `mapstructure:"network" yaml:"network" toml:"network" json:"network"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	// ListenAddr is the host:port the redirect server binds to.
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr" toml:"listen_addr" json:"listen_addr"`
	// StaticDir holds index.html and opensearch.xml.
	StaticDir          string          `mapstructure:"static_dir" yaml:"static_dir" toml:"static_dir" json:"static_dir"`
	ReadTimeoutSec     int             `mapstructure:"read_timeout_sec" yaml:"read_timeout_sec" toml:"read_timeout_sec" json:"read_timeout_sec"`
	WriteTimeoutSec    int             `mapstructure:"write_timeout_sec" yaml:"write_timeout_sec" toml:"write_timeout_sec" json:"write_timeout_sec"`
	ShutdownTimeoutSec int             `mapstructure:"shutdown_timeout_sec" yaml:"shutdown_timeout_sec" toml:"shutdown_timeout_sec" json:"shutdown_timeout_sec"`
	RateLimit          RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit" toml:"rate_limit" json:"rate_limit"`
}

// RateLimitConfig caps request throughput for the whole server.
// RequestsPerSecond of 0 disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" yaml:"requests_per_second" toml:"requests_per_second" json:"requests_per_second"`
	Burst             int     `mapstructure:"burst" yaml:"burst" toml:"burst" json:"burst"`
}

// SearchConfig holds the bang catalog and engine selection policy.
type SearchConfig struct {
	// DefaultEngine is the bang key used off trusted networks (or with no SSID).
	DefaultEngine string `mapstructure:"default_engine" yaml:"default_engine" toml:"default_engine" json:"default_engine"`
	// TrustedEngine is the bang key used when the SSID contains a trusted marker.
	TrustedEngine string `mapstructure:"trusted_engine" yaml:"trusted_engine" toml:"trusted_engine" json:"trusted_engine"`
	// BangSuggester is the bang key answering suggestions for banged queries. Empty disables it.
	BangSuggester string                  `mapstructure:"bang_suggester" yaml:"bang_suggester" toml:"bang_suggester" json:"bang_suggester"`
	Engines       map[string]EngineConfig `mapstructure:"engines" yaml:"engines" toml:"engines" json:"engines"`
}

// EngineConfig describes one bang target.
type EngineConfig struct {
	Name       string `mapstructure:"name" yaml:"name" toml:"name" json:"name"`
	SearchURL  string `mapstructure:"search_url" yaml:"search_url" toml:"search_url" json:"search_url"`
	SuggestURL string `mapstructure:"suggest_url" yaml:"suggest_url" toml:"suggest_url" json:"suggest_url,omitempty"`
}

// NetworkConfig controls SSID detection.
type NetworkConfig struct {
	// SSID pins the network name instead of asking the OS. Empty means detect.
	SSID           string   `mapstructure:"ssid" yaml:"ssid" toml:"ssid" json:"ssid"`
	SSIDCommand    string   `mapstructure:"ssid_command" yaml:"ssid_command" toml:"ssid_command" json:"ssid_command"`
	SSIDArgs       []string `mapstructure:"ssid_args" yaml:"ssid_args" toml:"ssid_args" json:"ssid_args"`
	SSIDTimeoutMs  int      `mapstructure:"ssid_timeout_ms" yaml:"ssid_timeout_ms" toml:"ssid_timeout_ms" json:"ssid_timeout_ms"`
	TrustedMarkers []string `mapstructure:"trusted_markers" yaml:"trusted_markers" toml:"trusted_markers" json:"trusted_markers"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`

	// EnableFileLog additionally writes JSON logs to LogDir/banger.log.
	EnableFileLog bool `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/banger.
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days" toml:"max_age_days" json:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// EngineEntries converts the configured engines into registry entries,
// sorted by key.
func (c *Config) EngineEntries() []engine.Entry {
	keys := make([]string, 0, len(c.Search.Engines))
	for key := range c.Search.Engines {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	entries := make([]engine.Entry, 0, len(keys))
	for _, key := range keys {
		e := c.Search.Engines[key]
		entries = append(entries, engine.Entry{
			Key:  key,
			Name: e.Name,
			Engine: entity.SearchEngine{
				SearchURL:  e.SearchURL,
				SuggestURL: e.SuggestURL,
			},
		})
	}
	return entries
}

// Registry builds an engine registry from the configured engines.
func (c *Config) Registry() (*engine.Registry, error) {
	return engine.NewRegistry(c.EngineEntries()...)
}
