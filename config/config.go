// Package config holds the settings for a validation run.
package config

import (
	"os"
	"path/filepath"

	"github.com/bodgit/spritelint/sheet"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultSpriteDir is where the toad sheets live, relative to the repo root.
var DefaultSpriteDir = filepath.Join("public", "lilypad-leap", "sprites", "toad", "sheets", "v1")

// DefaultFiles are the sheets every build must ship, in report order.
var DefaultFiles = []string{
	"toad_idle_right_v1.png",
	"toad_jump_right_v1.png",
	"toad_land_right_v1.png",
	"toad_cashout_right_v1.png",
	"toad_jackpot_right_v1.png",
	"toad_dead_right_v1.png",
}

// Config holds all configuration for spritelint.
type Config struct {
	SpriteDir string        `yaml:"sprite_dir"`
	Files     []string      `yaml:"files"`
	Sheet     sheet.Spec    `yaml:"sheet"`
	Logging   LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Defaults returns the hard-locked toad v1 configuration.
func Defaults() Config {
	return Config{
		SpriteDir: DefaultSpriteDir,
		Files:     append([]string(nil), DefaultFiles...),
		Sheet:     sheet.Default(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFrom reads config from path and merges it over the defaults. An empty
// path returns the defaults unchanged.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.validate(); err != nil {
		return Defaults(), errors.Wrap(err, "config validation")
	}

	return cfg, nil
}

func (c Config) validate() error {
	if err := c.Sheet.Validate(); err != nil {
		return err
	}

	if len(c.Files) == 0 {
		return errors.New("files must not be empty")
	}

	if filepath.IsAbs(c.SpriteDir) {
		return errors.Errorf("sprite_dir must be relative to the repo root, got %q", c.SpriteDir)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}

	return nil
}

// SpriteRoot returns the absolute sprite directory under repoRoot.
func (c Config) SpriteRoot(repoRoot string) string {
	return filepath.Join(repoRoot, c.SpriteDir)
}
