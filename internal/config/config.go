package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"reservoirs/internal/messages"
	"reservoirs/internal/reservoir"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = "reservoirs.yaml"

// Config holds all reservoirs configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Collection bounds
	Collection CollectionConfig `yaml:"collection"`

	// Console presentation
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// CollectionConfig bounds the in-memory collection.
type CollectionConfig struct {
	Capacity      int `yaml:"capacity"`        // <= 0 means unbounded
	MaxNameLength int `yaml:"max_name_length"` // runes, for name and kind
}

// UIConfig configures the console.
type UIConfig struct {
	Language string `yaml:"language"` // uk, en
	Theme    string `yaml:"theme"`    // auto, light, dark
	Plain    bool   `yaml:"plain"`    // disable styling
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "reservoirs",
		Version: "1.0.0",

		Collection: CollectionConfig{
			Capacity:      reservoir.DefaultCapacity,
			MaxNameLength: reservoir.DefaultMaxNameLength,
		},

		UI: UIConfig{
			Language: "uk",
			Theme:    "auto",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. A .env file next to the config is loaded first; variables
// already present in the environment win over it.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. Malformed
// numeric or boolean values are ignored.
func (c *Config) applyEnvOverrides() {
	if lang := os.Getenv("RESERVOIRS_LANG"); lang != "" {
		c.UI.Language = lang
	}
	if v := os.Getenv("RESERVOIRS_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Collection.Capacity = n
		}
	}
	if level := os.Getenv("RESERVOIRS_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if v := os.Getenv("RESERVOIRS_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = b
		}
	}
}

// Limits returns the record limits derived from the collection settings.
func (c *Config) Limits() reservoir.Limits {
	return reservoir.Limits{MaxNameLength: c.Collection.MaxNameLength}
}

var (
	// ValidThemes lists the accepted ui.theme values.
	ValidThemes = []string{"auto", "light", "dark"}
	// ValidLevels lists the accepted logging.level values.
	ValidLevels = []string{"debug", "info", "warn", "error"}
	// ValidFormats lists the accepted logging.format values.
	ValidFormats = []string{"text", "json"}
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Collection.MaxNameLength < 1 {
		return fmt.Errorf("collection.max_name_length must be >= 1, got %d", c.Collection.MaxNameLength)
	}
	if !messages.Supported(c.UI.Language) {
		return fmt.Errorf("unsupported ui.language: %q (valid: %v)", c.UI.Language, messages.Languages())
	}
	if !slices.Contains(ValidThemes, c.UI.Theme) {
		return fmt.Errorf("invalid ui.theme: %q (valid: %v)", c.UI.Theme, ValidThemes)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level: %q (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid logging.format: %q (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}
