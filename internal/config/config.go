// Package config loads the presenter's own settings: named typing-speed
// profiles and the predefined text table used by insert-text-by-key.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/alphapapa/demo-it/internal/demo"
)

// Speed is one typing-speed profile entry in the config file, milliseconds.
type Speed struct {
	Floor   int  `yaml:"floor"`
	Ceiling int  `yaml:"ceiling"`
	Instant bool `yaml:"instant"`
}

// Config is the presenter configuration file (~/.demo-it/config.yaml).
type Config struct {
	Speeds map[string]Speed  `yaml:"speeds"`
	Text   map[string]string `yaml:"text"`
}

// Dir returns the demo-it settings directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	dir := filepath.Join(home, ".demo-it")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create settings dir: %w", err)
	}
	return dir, nil
}

// Load reads the presenter config. A missing file is not an error; it yields
// an empty config whose Profiles() are the built-in defaults.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFile(filepath.Join(dir, "config.yaml"))
}

// LoadFile reads a specific config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// Profiles returns the built-in speed profiles overlaid with the config's
// entries. The instant profile stays defined no matter what the file says.
func (c *Config) Profiles() map[string]demo.SpeedProfile {
	profiles := demo.DefaultProfiles()
	for name, s := range c.Speeds {
		profiles[name] = demo.SpeedProfile{Floor: s.Floor, Ceiling: s.Ceiling, Instant: s.Instant}
	}
	profiles["instant"] = demo.SpeedProfile{Instant: true}
	return profiles
}

// TextFor looks up the predefined text bound to a single key.
func (c *Config) TextFor(key rune) (string, bool) {
	if c.Text == nil {
		return "", false
	}
	text, ok := c.Text[string(key)]
	return text, ok
}

// ValidateText rejects table keys that are not a single character, so a
// malformed table surfaces at load time instead of during a presentation.
func (c *Config) ValidateText() error {
	for k := range c.Text {
		if utf8.RuneCountInString(k) != 1 {
			return fmt.Errorf("text table key %q is not a single character", k)
		}
	}
	return nil
}
