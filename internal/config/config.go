package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"markview/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	Window  WindowConfig  `toml:"window"`
	Files   FilesConfig   `toml:"files"`
	Watcher WatcherConfig `toml:"watcher"`
	Scroll  ScrollConfig  `toml:"scroll"`
	Theme   ThemeConfig   `toml:"theme"`
}

// WindowConfig holds initial viewport geometry
type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Title  string  `toml:"title"`
}

// FilesConfig holds file-handling settings
type FilesConfig struct {
	DefaultFiles        []string `toml:"default_files"`
	SupportedExtensions []string `toml:"supported_extensions"`
}

// WatcherConfig holds file-watcher settings
type WatcherConfig struct {
	Enabled    bool `toml:"enabled"`
	DebounceMS int  `toml:"debounce_ms"`
}

// ScrollConfig holds scroll behavior ratios
type ScrollConfig struct {
	PagePercent    float64 `toml:"page_scroll_percentage"`
	ArrowIncrement float64 `toml:"arrow_key_increment"`
	SpacePercent   float64 `toml:"space_scroll_percentage"`
}

// ThemeConfig holds the estimation and styling knobs. BaseTextSize and
// LineHeightMultiplier drive the line-height estimate; ContentHeightBuffer
// is the structural padding added on top of the per-line estimate to cover
// headings, code blocks, tables and images.
type ThemeConfig struct {
	BaseTextSize         float64 `toml:"base_text_size"`
	LineHeightMultiplier float64 `toml:"line_height_multiplier"`
	ContentHeightBuffer  float64 `toml:"content_height_buffer"`
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
	bus      eventbus.EventBus
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

	markviewDir := filepath.Join(configDir, "markview")
	os.MkdirAll(markviewDir, 0755)

	return &configService{
		filePath: filepath.Join(markviewDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default location
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()

		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to the default location
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so absent keys keep sane values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
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

// Validate checks configuration values for sanity
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive")
	}
	if c.Scroll.PagePercent < 0 || c.Scroll.PagePercent > 1 {
		return fmt.Errorf("page scroll percentage must be between 0.0 and 1.0")
	}
	if c.Scroll.SpacePercent < 0 || c.Scroll.SpacePercent > 1 {
		return fmt.Errorf("space scroll percentage must be between 0.0 and 1.0")
	}
	if c.Scroll.ArrowIncrement <= 0 {
		return fmt.Errorf("arrow key increment must be positive")
	}
	if c.Theme.BaseTextSize <= 0 {
		return fmt.Errorf("base text size must be positive")
	}
	if c.Theme.LineHeightMultiplier <= 0 {
		return fmt.Errorf("line height multiplier must be positive")
	}
	if c.Theme.ContentHeightBuffer < 0 {
		return fmt.Errorf("content height buffer must not be negative")
	}
	if c.Watcher.DebounceMS < 0 {
		return fmt.Errorf("watcher debounce must not be negative")
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Window: WindowConfig{
			Width:  1024,
			Height: 768,
			Title:  "markview",
		},
		Files: FilesConfig{
			DefaultFiles:        []string{"README.md", "TODO.md"},
			SupportedExtensions: []string{"md", "markdown", "txt"},
		},
		Watcher: WatcherConfig{
			Enabled:    true,
			DebounceMS: 100,
		},
		Scroll: ScrollConfig{
			PagePercent:    0.8,
			ArrowIncrement: 20,
			SpacePercent:   0.2,
		},
		Theme: ThemeConfig{
			BaseTextSize:         16,
			LineHeightMultiplier: 1.5,
			ContentHeightBuffer:  400,
		},
	}
}
