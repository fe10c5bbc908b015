// Package config handles loading and saving user configuration for morph.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/morph/internal/glyph"
	"github.com/f3rmion/morph/internal/morph"
	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for morph.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Display   DisplayConfig   `yaml:"display"`
	History   HistoryConfig   `yaml:"history"`
	LogFile   string          `yaml:"log_file,omitempty"` // Empty disables logging
}

// AnimationConfig holds settings for morph transitions.
type AnimationConfig struct {
	Duration time.Duration `yaml:"duration"` // Length of one transition, e.g. "600ms"
	FPS      int           `yaml:"fps"`      // Frames per second
	Easing   string        `yaml:"easing"`   // linear, ease-out-quint, ease-in-out-cubic
	Units    string        `yaml:"units"`    // grapheme or rune
}

// DisplayConfig holds settings for how labels are drawn.
type DisplayConfig struct {
	BigGlyphs bool `yaml:"big_glyphs"` // Rasterize the label into block art in the TUI
	GlyphRows int  `yaml:"glyph_rows"` // Terminal rows per big glyph
}

// HistoryConfig holds settings for the morph history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"` // Defaults to history.db in the config directory
}

// ErrInvalid is wrapped by all Validate errors.
var ErrInvalid = errors.New("invalid config")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{
			Duration: 600 * time.Millisecond,
			FPS:      30,
			Easing:   morph.DefaultEasing,
			Units:    string(glyph.Graphemes),
		},
		Display: DisplayConfig{
			BigGlyphs: false,
			GlyphRows: 4,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Load loads configuration from a YAML file. Fields missing from the file keep their default values, and a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDir loads config.yaml from a config directory.
func LoadDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Save saves configuration to a YAML file.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Animation.Duration <= 0 {
		return fmt.Errorf("%w: animation.duration must be positive, got %s", ErrInvalid, c.Animation.Duration)
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > 240 {
		return fmt.Errorf("%w: animation.fps must be between 1 and 240, got %d", ErrInvalid, c.Animation.FPS)
	}
	if _, err := morph.ParseEasing(c.Animation.Easing); err != nil {
		return fmt.Errorf("%w: animation.easing: %v", ErrInvalid, err)
	}
	if _, err := glyph.ParseMode(c.Animation.Units); err != nil {
		return fmt.Errorf("%w: animation.units: %v", ErrInvalid, err)
	}
	if c.Display.GlyphRows < 1 {
		return fmt.Errorf("%w: display.glyph_rows must be at least 1, got %d", ErrInvalid, c.Display.GlyphRows)
	}
	return nil
}

// Easing returns the configured easing function. It assumes c has been validated.
func (c *Config) Easing() morph.Easing {
	e, err := morph.ParseEasing(c.Animation.Easing)
	if err != nil {
		return morph.EaseOutQuint
	}
	return e
}

// Units returns the configured unit mode. It assumes c has been validated.
func (c *Config) Units() glyph.Mode {
	m, err := glyph.ParseMode(c.Animation.Units)
	if err != nil {
		return glyph.Graphemes
	}
	return m
}

// FrameInterval is the time between two animation frames.
func (c *Config) FrameInterval() time.Duration {
	if c.Animation.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.Animation.FPS)
}

// HistoryPath returns the history database path, resolving the default against dir.
func (c *Config) HistoryPath(dir string) string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(dir, "history.db")
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "morph"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "morph"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
