package config

import (
	"fmt"
	"net"
	"sort"
	"strings"

	domainvalidation "github.com/bnema/banger/internal/domain/validation"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateServer(config)...)
	validationErrors = append(validationErrors, validateEngines(config)...)
	validationErrors = append(validationErrors, validateEngineSelection(config)...)
	validationErrors = append(validationErrors, validateNetwork(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if _, _, err := net.SplitHostPort(config.Server.ListenAddr); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("server.listen_addr %q must be host:port", config.Server.ListenAddr))
	}
	if strings.TrimSpace(config.Server.StaticDir) == "" {
		validationErrors = append(validationErrors, "server.static_dir cannot be empty")
	}
	if config.Server.ReadTimeoutSec < 0 {
		validationErrors = append(validationErrors, "server.read_timeout_sec must be non-negative")
	}
	if config.Server.WriteTimeoutSec < 0 {
		validationErrors = append(validationErrors, "server.write_timeout_sec must be non-negative")
	}
	if config.Server.ShutdownTimeoutSec < 0 {
		validationErrors = append(validationErrors, "server.shutdown_timeout_sec must be non-negative")
	}
	if config.Server.RateLimit.RequestsPerSecond < 0 {
		validationErrors = append(validationErrors, "server.rate_limit.requests_per_second must be non-negative")
	}
	if config.Server.RateLimit.Burst < 0 {
		validationErrors = append(validationErrors, "server.rate_limit.burst must be non-negative")
	}
	return validationErrors
}

func validateEngines(config *Config) []string {
	if len(config.Search.Engines) == 0 {
		return []string{"search.engines must define at least one engine"}
	}

	keys := make([]string, 0, len(config.Search.Engines))
	for key := range config.Search.Engines {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var validationErrors []string
	for _, key := range keys {
		e := config.Search.Engines[key]
		prefix := fmt.Sprintf("search.engines.%s: ", key)
		for _, msg := range domainvalidation.ValidateBangKey(key) {
			validationErrors = append(validationErrors, prefix+msg)
		}
		for _, msg := range domainvalidation.ValidateEngineName(e.Name) {
			validationErrors = append(validationErrors, prefix+msg)
		}
		for _, msg := range domainvalidation.ValidateSearchTemplate(e.SearchURL) {
			validationErrors = append(validationErrors, prefix+msg)
		}
		for _, msg := range domainvalidation.ValidateSuggestTemplate(e.SuggestURL) {
			validationErrors = append(validationErrors, prefix+msg)
		}
	}
	return validationErrors
}

func validateEngineSelection(config *Config) []string {
	var validationErrors []string
	check := func(field, key string, allowEmpty bool) {
		if key == "" {
			if !allowEmpty {
				validationErrors = append(validationErrors, field+" cannot be empty")
			}
			return
		}
		if _, ok := config.Search.Engines[key]; !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %q is not a configured engine", field, key))
		}
	}

	check("search.default_engine", config.Search.DefaultEngine, false)
	check("search.trusted_engine", config.Search.TrustedEngine, false)
	check("search.bang_suggester", config.Search.BangSuggester, true)
	return validationErrors
}

func validateNetwork(config *Config) []string {
	var validationErrors []string
	if config.Network.SSID == "" && config.Network.SSIDCommand == "" {
		validationErrors = append(validationErrors, "network.ssid_command cannot be empty unless network.ssid is set")
	}
	if config.Network.SSIDTimeoutMs < 0 {
		validationErrors = append(validationErrors, "network.ssid_timeout_ms must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of: trace, debug, info, warn, error, disabled")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be one of: console, json")
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must be non-negative")
	}
	return validationErrors
}
