// internal/config/config.go
//
// Runtime configuration for Cadence. Settings come from three layers, each
// overriding the one below: built-in defaults, an optional cadence.yaml, and
// CADENCE_* environment variables.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file Load falls back to when no path is given.
const DefaultFileName = "cadence.yaml"

const defaultLogPath = ".cadence/session.log"

// Config holds the runtime configuration for Cadence.
type Config struct {
	// ScriptPath points at a walkthrough script on disk. Empty means the
	// builtin site tour.
	ScriptPath string `yaml:"script"`

	// LogPath is where the session logbook is written.
	LogPath string `yaml:"log"`

	// Autostart skips the launch menu and begins the tour immediately.
	Autostart bool `yaml:"autostart"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{LogPath: defaultLogPath}
}

// Load reads the YAML file at path, layers CADENCE_* environment variables
// on top, and validates the result. A missing file is not an error; the
// defaults carry.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.normalize()
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("CADENCE_SCRIPT"); ok {
		c.ScriptPath = v
	}
	if v, ok := os.LookupEnv("CADENCE_LOG"); ok {
		c.LogPath = v
	}
	if v, ok := os.LookupEnv("CADENCE_AUTOSTART"); ok {
		if parsed, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Autostart = parsed
		}
	}
}

func (c *Config) normalize() {
	c.ScriptPath = strings.TrimSpace(c.ScriptPath)
	c.LogPath = strings.TrimSpace(c.LogPath)
	if c.LogPath == "" {
		c.LogPath = defaultLogPath
	}
}

func (c Config) validate() error {
	if c.LogPath == "" {
		return fmt.Errorf("log path is required")
	}
	return nil
}
