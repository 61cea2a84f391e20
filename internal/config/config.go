// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/javiermolinar/dayplan/internal/activity"
	"github.com/javiermolinar/dayplan/internal/timeutil"
)

// Config holds the application configuration.
type Config struct {
	Display  DisplayConfig  `toml:"display"`
	Schedule ScheduleConfig `toml:"schedule"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// DisplayConfig holds time display settings.
type DisplayConfig struct {
	Use24Hour bool `toml:"use_24_hour"`
}

// ScheduleConfig holds the day layout and the starting schedule.
type ScheduleConfig struct {
	DayStart   string           `toml:"day_start"`            // e.g., "07:00"
	Categories []string         `toml:"categories,omitempty"` // replaces the default set when non-empty
	Activities []ActivityConfig `toml:"activities,omitempty"`
}

// ActivityConfig is one entry of a starting schedule or a schedule file.
type ActivityConfig struct {
	Time      string   `toml:"time" yaml:"time"`
	Duration  int      `toml:"duration" yaml:"duration"`
	Activity  string   `toml:"activity" yaml:"activity"`
	Category  []string `toml:"category,omitempty" yaml:"category,omitempty"`
	Important bool     `toml:"important,omitempty" yaml:"important,omitempty"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme       string `toml:"theme"`        // "mocha", "latte"
	HighlightMS int    `toml:"highlight_ms"` // how long modified rows stay highlighted
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // zerolog level name
	File  string `toml:"file"`  // empty means the default state file
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Use24Hour: true,
		},
		Schedule: ScheduleConfig{
			DayStart: "07:00",
		},
		UI: UIConfig{
			Theme:       "mocha",
			HighlightMS: 1000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "dayplan", "config.toml")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "dayplan.log"
	}
	return filepath.Join(home, ".local", "state", "dayplan", "dayplan.log")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Log.File = expandPath(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("DAYPLAN_USE_24_HOUR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DAYPLAN_USE_24_HOUR: %w", err)
		}
		cfg.Display.Use24Hour = b
	}
	if v := os.Getenv("DAYPLAN_DAY_START"); v != "" {
		cfg.Schedule.DayStart = v
	}
	if v := os.Getenv("DAYPLAN_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("DAYPLAN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DAYPLAN_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Schedule.DayStart, "day_start"); err != nil {
		return err
	}
	if c.UI.HighlightMS < 0 {
		return errors.New("highlight_ms cannot be negative")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}

	set, err := c.CategorySet()
	if err != nil {
		return err
	}
	for i, a := range c.Schedule.Activities {
		if _, err := a.Draft().Normalize(set); err != nil {
			return fmt.Errorf("schedule activity %d (%q): %w", i+1, a.Activity, err)
		}
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format.
func validateTime(t, field string) error {
	if !timeutil.Valid(t) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	return nil
}

// CategorySet returns the configured categories, or the default set when none are configured.
func (c *Config) CategorySet() (activity.CategorySet, error) {
	if len(c.Schedule.Categories) == 0 {
		return activity.DefaultCategorySet(), nil
	}
	set, err := activity.NewCategorySet(c.Schedule.Categories...)
	if err != nil {
		return activity.CategorySet{}, fmt.Errorf("categories: %w", err)
	}
	return set, nil
}

// Drafts returns the starting schedule as engine drafts.
func (c *Config) Drafts() []activity.Draft {
	return Drafts(c.Schedule.Activities)
}

// LogFile returns the configured log file, or the default path.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return DefaultLogPath()
}

// Draft converts the entry to an engine draft.
func (a ActivityConfig) Draft() activity.Draft {
	cats := make([]activity.Category, 0, len(a.Category))
	for _, c := range a.Category {
		cats = append(cats, activity.Category(c))
	}
	return activity.Draft{
		Time:       a.Time,
		Duration:   a.Duration,
		Label:      a.Activity,
		Categories: cats,
		Important:  a.Important,
	}
}

// Drafts converts entries to engine drafts.
func Drafts(entries []ActivityConfig) []activity.Draft {
	out := make([]activity.Draft, len(entries))
	for i, a := range entries {
		out[i] = a.Draft()
	}
	return out
}

// FromActivities converts engine activities to config entries.
func FromActivities(list []activity.Activity) []ActivityConfig {
	out := make([]ActivityConfig, len(list))
	for i, a := range list {
		cats := make([]string, len(a.Categories))
		for j, c := range a.Categories {
			cats[j] = string(c)
		}
		out[i] = ActivityConfig{
			Time:      a.Time,
			Duration:  a.Duration,
			Activity:  a.Label,
			Category:  cats,
			Important: a.Important,
		}
	}
	return out
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
