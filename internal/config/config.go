package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tgienger/projman/internal/ids"
	"github.com/tgienger/projman/internal/state"
	"github.com/tgienger/projman/internal/ui/styles"
)

// Config represents the full projman configuration
type Config struct {
	// Colour theme name
	Theme string `yaml:"theme" mapstructure:"theme"`

	// What happens to a project's tasks when it is deleted: cascade or keep
	Orphans string `yaml:"orphans" mapstructure:"orphans"`

	// Identifier generator: uuid or sequence
	IDs string `yaml:"ids" mapstructure:"ids"`

	// Render project descriptions as markdown
	Markdown bool `yaml:"markdown" mapstructure:"markdown"`

	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig configures the debug log. The terminal belongs to the UI, so
// logs only go to a file.
type LogConfig struct {
	File  string `yaml:"file" mapstructure:"file"`
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Theme:    styles.TokyoNight.Name,
		Orphans:  string(state.OrphansCascade),
		IDs:      string(ids.KindUUID),
		Markdown: true,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	if _, ok := styles.Lookup(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(styles.Names(), ", "))
	}
	if _, err := state.ParseOrphanPolicy(c.Orphans); err != nil {
		return err
	}
	if _, err := ids.ParseKind(c.IDs); err != nil {
		return err
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps debug/info/warn/error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}
