package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/gerunddev/composer/internal/format"
	"github.com/gerunddev/composer/internal/logger"
)

// Placeholders overrides the words inserted by toolbar commands
type Placeholders struct {
	Heading  string `json:"heading,omitempty"`
	Quote    string `json:"quote,omitempty"`
	ListItem string `json:"list_item,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
}

// Config represents the composer configuration
type Config struct {
	LogFile          string        `json:"log_file"`
	LogLevel         string        `json:"log_level,omitempty"`
	AutosaveInterval time.Duration `json:"-"` // Custom JSON handling below
	WrapWidth        int           `json:"wrap_width"`
	Placeholders     Placeholders  `json:"placeholders"`
}

// rawConfig mirrors Config with the autosave interval as a duration string
type rawConfig struct {
	LogFile          string       `json:"log_file"`
	LogLevel         string       `json:"log_level,omitempty"`
	AutosaveInterval string       `json:"autosave_interval"`
	WrapWidth        int          `json:"wrap_width"`
	Placeholders     Placeholders `json:"placeholders"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogFile:          filepath.Join(os.TempDir(), "composer.log"),
		LogLevel:         "info",
		AutosaveInterval: 5 * time.Second,
		WrapWidth:        80,
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "composer", "config.json")
	}
	return filepath.Join(home, ".config", "composer", "config.json")
}

// DraftsFilePath returns the path to the drafts store
// Uses platform-specific XDG data directory
// Can be overridden for testing
var DraftsFilePath = func() string {
	return filepath.Join(xdg.DataHome, "composer", "drafts.json")
}

// Load reads configuration from the config directory. A missing file
// yields the defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Missing keys keep their defaults
	def := DefaultConfig()
	raw := rawConfig{
		LogFile:          def.LogFile,
		LogLevel:         def.LogLevel,
		AutosaveInterval: def.AutosaveInterval.String(),
		WrapWidth:        def.WrapWidth,
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	interval, err := time.ParseDuration(raw.AutosaveInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid autosave_interval format '%s': %w", raw.AutosaveInterval, err)
	}

	cfg := &Config{
		LogFile:          raw.LogFile,
		LogLevel:         raw.LogLevel,
		AutosaveInterval: interval,
		WrapWidth:        raw.WrapWidth,
		Placeholders:     raw.Placeholders,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := rawConfig{
		LogFile:          c.LogFile,
		LogLevel:         c.LogLevel,
		AutosaveInterval: c.AutosaveInterval.String(),
		WrapWidth:        c.WrapWidth,
		Placeholders:     c.Placeholders,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.AutosaveInterval <= 0 {
		return fmt.Errorf("autosave_interval must be positive")
	}
	if c.WrapWidth < 0 {
		return fmt.Errorf("wrap_width cannot be negative")
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// Formatter builds a formatter using the configured placeholders
func (c *Config) Formatter() *format.Formatter {
	return format.New(format.Placeholders{
		Heading:  c.Placeholders.Heading,
		Quote:    c.Placeholders.Quote,
		ListItem: c.Placeholders.ListItem,
		LinkURL:  c.Placeholders.LinkURL,
	})
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
