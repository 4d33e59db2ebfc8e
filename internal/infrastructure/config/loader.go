package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/banger/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string // explicit path, empty means search the XDG dir
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigFile makes the manager read path instead of searching the
// default locations.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) {
		m.configFile = path
	}
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{
		viper:     viper.New(),
		callbacks: make([]func(*Config), 0),
	}
	for _, opt := range opts {
		opt(m)
	}

	v := m.viper
	v.SetConfigType("toml")

	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
	} else {
		v.SetConfigName("config") // Name without extension

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// BANGER_SERVER_LISTEN_ADDR, BANGER_LOGGING_LEVEL, ...
	v.SetEnvPrefix("BANGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short aliases for the settings most often overridden from the shell.
	bindings := map[string]string{
		"logging.level":      "BANGER_LOG_LEVEL",
		"logging.format":     "BANGER_LOG_FORMAT",
		"server.listen_addr": "BANGER_LISTEN_ADDR",
		"network.ssid":       "BANGER_SSID",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with default values.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if m.configFile != "" {
		if _, err := os.Stat(m.configFile); errors.Is(err, os.ErrNotExist) {
			if createErr := m.createDefaultConfig(m.configFile); createErr != nil {
				return fmt.Errorf("failed to create default config at %s: %w", m.configFile, createErr)
			}
		}
	}

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFileForErrors(), err)
		}

		configFile, pathErr := GetConfigFile()
		if pathErr != nil {
			return pathErr
		}
		if createErr := m.createDefaultConfig(configFile); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configFile,
				createErr,
			)
		}
		m.viper.SetConfigFile(configFile)
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) configFileForErrors() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	if m.configFile != "" {
		return m.configFile
	}
	if configFile, err := GetConfigFile(); err == nil {
		return configFile
	}
	return configFileName
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFileForErrors(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	config.Search.DefaultEngine = strings.TrimSpace(config.Search.DefaultEngine)
	config.Search.TrustedEngine = strings.TrimSpace(config.Search.TrustedEngine)
	config.Search.BangSuggester = strings.TrimSpace(config.Search.BangSuggester)

	for key, e := range config.Search.Engines {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			e.Name = key
		}
		e.SearchURL = strings.TrimSpace(e.SearchURL)
		e.SuggestURL = strings.TrimSpace(e.SuggestURL)
		if e.SuggestURL == "" {
			e.SuggestURL = entity.DefaultSuggestURL
		}
		config.Search.Engines[key] = e
	}

	markers := config.Network.TrustedMarkers[:0]
	for _, marker := range config.Network.TrustedMarkers {
		if marker = strings.TrimSpace(marker); marker != "" {
			markers = append(markers, marker)
		}
	}
	config.Network.TrustedMarkers = markers

	config.Logging.LogDir = strings.TrimSpace(config.Logging.LogDir)

	config.Network.SSID = strings.TrimSpace(config.Network.SSID)
	config.Network.SSIDCommand = strings.TrimSpace(config.Network.SSIDCommand)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return nil
	}
	// Return a copy to prevent external modification
	return m.config.clone()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the default configuration to path.
func (m *Manager) createDefaultConfig(path string) error {
	if _, err := CreateDefaultConfigFile(path, true); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", path)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setServerDefaults(defaults)
	m.setSearchDefaults(defaults)
	m.setNetworkDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setServerDefaults(defaults *Config) {
	m.viper.SetDefault("server.listen_addr", defaults.Server.ListenAddr)
	m.viper.SetDefault("server.static_dir", defaults.Server.StaticDir)
	m.viper.SetDefault("server.read_timeout_sec", defaults.Server.ReadTimeoutSec)
	m.viper.SetDefault("server.write_timeout_sec", defaults.Server.WriteTimeoutSec)
	m.viper.SetDefault("server.shutdown_timeout_sec", defaults.Server.ShutdownTimeoutSec)
	m.viper.SetDefault("server.rate_limit.requests_per_second", defaults.Server.RateLimit.RequestsPerSecond)
	m.viper.SetDefault("server.rate_limit.burst", defaults.Server.RateLimit.Burst)
}

func (m *Manager) setSearchDefaults(defaults *Config) {
	m.viper.SetDefault("search.default_engine", defaults.Search.DefaultEngine)
	m.viper.SetDefault("search.trusted_engine", defaults.Search.TrustedEngine)
	m.viper.SetDefault("search.bang_suggester", defaults.Search.BangSuggester)
	m.viper.SetDefault("search.engines", defaults.Search.Engines)
}

func (m *Manager) setNetworkDefaults(defaults *Config) {
	m.viper.SetDefault("network.ssid", defaults.Network.SSID)
	m.viper.SetDefault("network.ssid_command", defaults.Network.SSIDCommand)
	m.viper.SetDefault("network.ssid_args", defaults.Network.SSIDArgs)
	m.viper.SetDefault("network.ssid_timeout_ms", defaults.Network.SSIDTimeoutMs)
	m.viper.SetDefault("network.trusted_markers", defaults.Network.TrustedMarkers)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// clone returns a deep copy of the configuration.
func (c *Config) clone() *Config {
	out := *c
	out.Search.Engines = make(map[string]EngineConfig, len(c.Search.Engines))
	for k, v := range c.Search.Engines {
		out.Search.Engines[k] = v
	}
	out.Network.SSIDArgs = append([]string(nil), c.Network.SSIDArgs...)
	out.Network.TrustedMarkers = append([]string(nil), c.Network.TrustedMarkers...)
	return &out
}
