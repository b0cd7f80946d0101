package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/numfield/internal/numeric"
)

// StyleConfig defines a named style preset in the config file.
// Nil character-class fields default to permitted; nil bounds leave the
// range open on that side.
type StyleConfig struct {
	DecimalSeparator *bool    `toml:"decimal_separator,omitempty"`
	Negative         *bool    `toml:"negative,omitempty"`
	Exponent         *bool    `toml:"exponent,omitempty"`
	Min              *float64 `toml:"min,omitempty"`
	Max              *float64 `toml:"max,omitempty"`
}

// Style converts the preset into a numeric.Style.
func (s StyleConfig) Style() numeric.Style {
	style := numeric.DefaultStyle()
	if s.DecimalSeparator != nil {
		style.AllowDecimalSeparator = *s.DecimalSeparator
	}
	if s.Negative != nil {
		style.AllowNegative = *s.Negative
	}
	if s.Exponent != nil {
		style.AllowExponent = *s.Exponent
	}
	if s.Min != nil || s.Max != nil {
		style.Range = &numeric.Range{Min: s.Min, Max: s.Max}
	}
	return style
}

// ThemeConfig selects a theme family and optional per-color overrides.
type ThemeConfig struct {
	Name    string `toml:"name"`
	Variant string `toml:"variant,omitempty"` // "light", "dark", or "" (dark)

	Primary string `toml:"primary,omitempty"`
	Accent  string `toml:"accent,omitempty"`
	Success string `toml:"success,omitempty"`
	Error   string `toml:"error,omitempty"`
	Muted   string `toml:"muted,omitempty"`
	Normal  string `toml:"normal,omitempty"`
	Info    string `toml:"info,omitempty"`
	Warning string `toml:"warning,omitempty"`
}

// Config holds the numfield configuration.
type Config struct {
	LogFile string                 `toml:"log_file,omitempty"`
	Theme   ThemeConfig            `toml:"theme"`
	Styles  map[string]StyleConfig `toml:"styles"`
}

func boolPtr(b bool) *bool        { return &b }
func floatPtr(v float64) *float64 { return &v }

// builtinStyles is the preset set available without any config file.
func builtinStyles() map[string]StyleConfig {
	return map[string]StyleConfig{
		"any":      {},
		"int":      {DecimalSeparator: boolPtr(false), Exponent: boolPtr(false)},
		"decimal":  {Exponent: boolPtr(false)},
		"positive": {Negative: boolPtr(false), Exponent: boolPtr(false)},
		"percent": {
			Negative: boolPtr(false),
			Exponent: boolPtr(false),
			Min:      floatPtr(0),
			Max:      floatPtr(100),
		},
	}
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Theme:  ThemeConfig{Name: "default"},
		Styles: builtinStyles(),
	}
}

// StyleNames returns the configured preset names, sorted.
func (c *Config) StyleNames() []string {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveStyle looks up a preset by name.
func (c *Config) ResolveStyle(name string) (numeric.Style, error) {
	sc, ok := c.Styles[name]
	if !ok {
		return numeric.Style{}, fmt.Errorf("unknown style %q (configured: %v)", name, c.StyleNames())
	}
	return sc.Style(), nil
}

// ValidatePath checks that the path is absolute or starts with ~.
// Returns an error for relative paths like "." or "..".
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // not configured
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "numfield", "config.toml"), nil
}

// Load reads config from ~/.config/numfield/config.toml.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates raw TOML config bytes.
func Parse(data []byte) (Config, error) {
	var raw Config
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	cfg.LogFile = raw.LogFile
	cfg.Theme = raw.Theme
	if cfg.Theme.Name == "" {
		cfg.Theme.Name = "default"
	}
	// User presets shadow built-ins of the same name.
	for name, sc := range raw.Styles {
		cfg.Styles[name] = sc
	}

	if err := ValidatePath(cfg.LogFile, "log_file"); err != nil {
		return Default(), err
	}
	if cfg.LogFile != "" {
		expanded, err := expandPath(cfg.LogFile)
		if err != nil {
			return Default(), fmt.Errorf("expand log_file: %w", err)
		}
		cfg.LogFile = expanded
	}

	if v := cfg.Theme.Variant; v != "" && v != "light" && v != "dark" {
		return Default(), fmt.Errorf("invalid theme.variant %q: must be \"light\" or \"dark\"", v)
	}

	for name, sc := range cfg.Styles {
		if sc.Min != nil && sc.Max != nil && *sc.Min > *sc.Max {
			return Default(), fmt.Errorf("invalid style %q: min %v greater than max %v", name, *sc.Min, *sc.Max)
		}
	}

	return cfg, nil
}

const defaultConfig = `# numfield configuration

# Optional: file the interactive playground writes debug events to.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# log_file = "~/.cache/numfield/debug.log"

# Color theme for interactive output
# Families: default, dracula, nord, gruvbox, catppuccin, none
# variant: "light" or "dark" (default dark; only some families have both)
# Individual colors can be overridden with hex values.
#
# [theme]
# name = "default"
# variant = "dark"
# accent = "#ff79c6"

# Style presets - pick with --style NAME or in the playground
# Omitted keys default to: all character classes permitted, open range.
# Built-in presets: any, int, decimal, positive, percent
#
# [styles.quantity]
# decimal_separator = false
# negative = false
# min = 1.0
# max = 9999.0
`

// Init writes the default config file.
// Fails if the file already exists, unless force is set.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}

	return path, nil
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns the defaults if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	def := Default()
	return &def
}
