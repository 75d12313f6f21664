package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	Catalog    string          `toml:"catalog"`     // path to the project catalog file
	RefTag     string          `toml:"ref_tag"`     // where project views are attributed to
	StartIndex int             `toml:"start_index"` // page shown on launch
	Analytics  AnalyticsConfig `toml:"analytics"`
	UISettings UISettings      `toml:"ui"`
}

// AnalyticsConfig controls the local analytics store.
type AnalyticsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Validate validates the analytics configuration.
func (c *AnalyticsConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowPageDots bool `toml:"show_page_dots"`
	WatchCatalog bool `toml:"watch_catalog"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Catalog, validation.Required),
		validation.Field(&c.RefTag, validation.Required),
		validation.Field(&c.StartIndex, validation.Min(0)),
	); err != nil {
		return err
	}
	return c.Analytics.Validate()
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	pagerDir := filepath.Join(configDir, "projectpager")
	os.MkdirAll(pagerDir, 0755)

	return &configService{
		filePath: filepath.Join(pagerDir, "config.toml"),
	}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Catalog:    "projects.toml",
		RefTag:     "discovery",
		StartIndex: 0,
		Analytics: AnalyticsConfig{
			Enabled: true,
			Path:    "projectpager.db",
		},
		UISettings: UISettings{
			ShowPageDots: true,
			WatchCatalog: true,
		},
	}
}
