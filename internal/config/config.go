package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/sparkle/internal/sparkles"
)

// MaxCount caps the number of sparkles a terminal field is asked to draw.
const MaxCount = 200

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all sparkle configuration.
type Config struct {
	// Text is the label drawn over the sparkles.
	Text string `yaml:"text"`

	// Count is the number of visible sparkles. Default: 10.
	Count int `yaml:"count"`

	// Colors are the two sparkle tints.
	Colors sparkles.Colors `yaml:"colors"`

	// Class names a theme style applied to the label.
	Class string `yaml:"class"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig controls the debug log. The TUI owns stdout, so logs only
// go to a file.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns a Config with the stock label and palette.
func DefaultConfig() Config {
	return Config{
		Text:   "Magic UI",
		Count:  sparkles.DefaultCount,
		Colors: sparkles.DefaultColors(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/sparkle/config.yaml, falling back
// to the user config dir.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
	}
	return filepath.Join(dir, "sparkle", "config.yaml"), nil
}

// Load reads the YAML file at path over the defaults. A missing file is
// not an error; unknown keys and out-of-range values wrap ErrInvalid.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := checkSchema(data); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with SPARKLE_* environment variables.
func ApplyEnv(cfg Config) (Config, error) {
	if v, ok := os.LookupEnv("SPARKLE_TEXT"); ok {
		cfg.Text = v
	}
	if v := os.Getenv("SPARKLE_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%w: SPARKLE_COUNT %q is not a number", ErrInvalid, v)
		}
		cfg.Count = n
	}
	if v := os.Getenv("SPARKLE_FIRST_COLOR"); v != "" {
		cfg.Colors.First = v
	}
	if v := os.Getenv("SPARKLE_SECOND_COLOR"); v != "" {
		cfg.Colors.Second = v
	}
	if v := os.Getenv("SPARKLE_CLASS"); v != "" {
		cfg.Class = v
	}
	if v := os.Getenv("SPARKLE_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
	if v := os.Getenv("SPARKLE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return cfg, nil
}

// Validate checks count bounds and color syntax. An empty Text is allowed
// and renders an empty label.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalid, c.Count)
	}
	if c.Count > MaxCount {
		return fmt.Errorf("%w: count must be at most %d, got %d", ErrInvalid, MaxCount, c.Count)
	}
	if !ValidColor(c.Colors.First) {
		return fmt.Errorf("%w: first color %q is not a hex color", ErrInvalid, c.Colors.First)
	}
	if !ValidColor(c.Colors.Second) {
		return fmt.Errorf("%w: second color %q is not a hex color", ErrInvalid, c.Colors.Second)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// ValidColor reports whether s is a #rgb or #rrggbb color.
func ValidColor(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}

// Props converts the config into sparkle field props.
func (c Config) Props() sparkles.Props {
	return sparkles.Props{
		Text:      c.Text,
		Count:     c.Count,
		Colors:    c.Colors,
		ClassName: c.Class,
	}
}
