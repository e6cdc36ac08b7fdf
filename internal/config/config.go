package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds the tool-level settings. Everything is optional; the zero
// config with defaults applied works on a stock Thunderbird install.
type Config struct {
	// RulesFile overrides profile discovery with a fixed path to the
	// msgFilterRules.dat that should be edited.
	RulesFile string `yaml:"rules_file"`

	// Strict makes the parser reject malformed lines instead of skipping
	// them. Off by default so hand-edited files keep working.
	Strict bool `yaml:"strict"`

	// Backup controls the timestamped backup copy made before each edit.
	Backup bool `yaml:"backup"`
}

// Load tries an explicit path (if given), then ./filteradd.yaml, then
// $XDG_CONFIG_HOME/filteradd/config.yaml. If nothing is found, it falls
// back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFrom(path)
	}

	candidates := []string{
		"./filteradd.yaml",
		filepath.Join(xdg.ConfigHome, "filteradd", "config.yaml"),
	}

	for _, p := range candidates {
		cfg, err := loadFrom(p)
		if err == nil {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		// For other errors (permission, parse, etc.) return immediately.
		return nil, err
	}

	return defaults(), nil
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Backup: true,
	}
}
