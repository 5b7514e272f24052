package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/texttable/internal/validate"
)

// Config represents the CLI configuration
type Config struct {
	// Default output format (text, json, ndjson, yaml)
	Output string `yaml:"output,omitempty"`

	// Default color mode (auto, always, never)
	Color string `yaml:"color,omitempty"`

	// Default cell alignment (left, right, center)
	Align string `yaml:"align,omitempty"`

	// Gap between side-by-side tables, in spaces
	Spacing *int `yaml:"spacing,omitempty"`

	// Blank row below the header row
	HeaderPadding *bool `yaml:"header_padding,omitempty"`

	// Print groups side by side by default
	Inline *bool `yaml:"inline,omitempty"`
}

// Keys lists the settable configuration keys in display order.
var Keys = []string{"output", "color", "align", "spacing", "header_padding", "inline"}

var (
	outputChoices = []string{"text", "json", "ndjson", "jsonl", "yaml"}
	colorChoices  = []string{"auto", "always", "never"}
	alignChoices  = []string{"left", "right", "center"}
)

// configPathFunc is the function used to get the default config path
// It can be overridden for testing
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/texttable/config.yaml
func defaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "texttable", "config.yaml"), nil
}

// DefaultConfigPath returns ~/.config/texttable/config.yaml
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save saves config to the default path
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath saves config to a specific path
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// GetOutput returns the configured output format or empty
func (c *Config) GetOutput() string {
	return c.Output
}

// GetColor returns the configured color mode or empty
func (c *Config) GetColor() string {
	return c.Color
}

// GetAlign returns the configured alignment or empty
func (c *Config) GetAlign() string {
	return c.Align
}

// GetSpacing returns the configured spacing, or def when unset.
func (c *Config) GetSpacing(def int) int {
	if c.Spacing == nil {
		return def
	}
	return *c.Spacing
}

// GetHeaderPadding returns the configured header padding, or def when unset.
func (c *Config) GetHeaderPadding(def bool) bool {
	if c.HeaderPadding == nil {
		return def
	}
	return *c.HeaderPadding
}

// GetInline returns the configured inline mode, or def when unset.
func (c *Config) GetInline(def bool) bool {
	if c.Inline == nil {
		return def
	}
	return *c.Inline
}

// Set validates value and stores it under key. It returns the normalized
// value that was stored.
func (c *Config) Set(key, value string) (string, error) {
	switch key {
	case "output":
		v, err := validate.OneOf(key, value, outputChoices)
		if err != nil {
			return "", err
		}
		if v == "jsonl" {
			v = "ndjson"
		}
		c.Output = v
		return v, nil
	case "color":
		v, err := validate.OneOf(key, value, colorChoices)
		if err != nil {
			return "", err
		}
		c.Color = v
		return v, nil
	case "align":
		v, err := validate.OneOf(key, value, alignChoices)
		if err != nil {
			return "", err
		}
		c.Align = v
		return v, nil
	case "spacing":
		n, err := validate.NonNegativeInt(key, value)
		if err != nil {
			return "", err
		}
		c.Spacing = &n
		return strconv.Itoa(n), nil
	case "header_padding", "inline":
		b, err := validate.Bool(key, value)
		if err != nil {
			return "", err
		}
		if key == "inline" {
			c.Inline = &b
		} else {
			c.HeaderPadding = &b
		}
		return strconv.FormatBool(b), nil
	default:
		return "", fmt.Errorf("unknown config key %q\n\nSupported keys: %s", key, strings.Join(Keys, ", "))
	}
}
