package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/dqskin/internal/logger"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	return LoadFile(ResolvePath())
}

// ResolvePath returns the config file Load reads: the --config path if given,
// else the first file found in the standard locations, else "".
func ResolvePath() string {
	// Explicit path takes priority
	if path := ConfigPath(); path != "" {
		return path
	}
	return findConfigFile()
}

// LoadFile loads defaults, merges the file at path (if non-empty), applies
// CLI flags and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	// Apply CLI flags (highest priority)
	if err := applyFlags(cfg); err != nil {
		return nil, err
	}
	cfg.keepStdoutForStream()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// keepStdoutForStream moves console logging to stderr when the constants
// stream is written to stdout.
func (c *Config) keepStdoutForStream() {
	if c.Graphics.Stream != "-" {
		return
	}
	if c.Logging.Console == logger.ConsoleStdout || c.Logging.Console == "" {
		c.Logging.Console = logger.ConsoleStderr
	}
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./dqskin.yaml",
		"./dqskin.toml",
		filepath.Join(ConfigDir(), "config.yaml"),
		filepath.Join(ConfigDir(), "config.toml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "DQSkin")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "DQSkin")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "dqskin")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "dqskin")
	}
}

// loadFromFile loads config from a YAML or TOML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return unmarshal(path, data, cfg)
}

func isTOML(path string) (bool, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return true, nil
	case ".yaml", ".yml":
		return false, nil
	default:
		return false, fmt.Errorf("unsupported config extension %q", ext)
	}
}

func unmarshal(path string, data []byte, cfg *Config) error {
	asTOML, err := isTOML(path)
	if err != nil {
		return err
	}
	if asTOML {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Marshal encodes cfg as YAML or TOML. Only the extension of path is used.
func Marshal(cfg *Config, path string) ([]byte, error) {
	asTOML, err := isTOML(path)
	if err != nil {
		return nil, err
	}
	if asTOML {
		return toml.Marshal(cfg)
	}
	return yaml.Marshal(cfg)
}
