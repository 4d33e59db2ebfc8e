package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const fileHeader = `# banger configuration
# Bang keys are case-sensitive. Templates must contain {searchTerms}.
# Environment overrides use the BANGER_ prefix (e.g. BANGER_SERVER_LISTEN_ADDR).

`

// EncodeTOML renders the configuration as TOML. Fields keep their
// definition order; nested tables are indented.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfig writes cfg to path. The file is replaced atomically.
func WriteConfig(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(fileHeader); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move config file into place: %w", err)
	}
	return nil
}

// CreateDefaultConfigFile writes the default configuration to path,
// creating parent directories. An existing file is kept unless overwrite is
// set; written reports whether anything was written.
func CreateDefaultConfigFile(path string, overwrite bool) (written bool, err error) {
	if !overwrite {
		if _, statErr := os.Stat(path); statErr == nil {
			return false, nil
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfig(DefaultConfig(), path); err != nil {
		return false, err
	}
	return true, nil
}
