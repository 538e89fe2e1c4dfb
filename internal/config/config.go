package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration. It is loaded once at startup
// and read-only afterwards.
type Config struct {
	Catalog CatalogConfig `mapstructure:"catalog"`
	Grid    GridConfig    `mapstructure:"grid"`
	Tile    TileConfig    `mapstructure:"tile"`
	Cache   CacheConfig   `mapstructure:"cache"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CatalogConfig holds the remote catalog endpoints
type CatalogConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	HomePath    string        `mapstructure:"home_path"`
	SetPath     string        `mapstructure:"set_path"`     // fmt template, one %s for the ref id
	AspectRatio string        `mapstructure:"aspect_ratio"` // key under image.tile
	Timeout     time.Duration `mapstructure:"timeout"`
}

// GridConfig holds the visible window dimensions (R×C)
type GridConfig struct {
	Rows    int `mapstructure:"rows"`
	Columns int `mapstructure:"columns"`
}

// TileConfig holds the tile footprint in surface pixels
type TileConfig struct {
	Width         int     `mapstructure:"width"`
	Height        int     `mapstructure:"height"`
	EnhanceFactor float64 `mapstructure:"enhance_factor"`
}

// CacheConfig holds the image payload cache location
type CacheConfig struct {
	Dir string `mapstructure:"dir"` // empty = memory only
}

// UIConfig holds UI configuration
type UIConfig struct {
	ShowHelp bool `mapstructure:"show_help"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:     "https://cd-static.bamgrid.com/dp-117731241344",
			HomePath:    "/home.json",
			SetPath:     "/sets/%s.json",
			AspectRatio: "1.78",
			Timeout:     30 * time.Second,
		},
		Grid: GridConfig{
			Rows:    4,
			Columns: 4,
		},
		Tile: TileConfig{
			Width:         20,
			Height:        10,
			EnhanceFactor: 1.033,
		},
		UI: UIConfig{
			ShowHelp: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "disneymagic", "disneymagic.log")
	default:
		return filepath.Join("~", ".local", "share", "disneymagic", "disneymagic.log")
	}
}

// DefaultConfigPath returns the default config directory for the current OS
func DefaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "disneymagic")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "disneymagic")
	}
}

// Load reads configuration from file and environment into a fresh viper
// instance. configFile overrides the search path when non-empty.
func Load(configFile string) (*Config, error) {
	return LoadWith(viper.New(), configFile)
}

// LoadWith is Load on a caller-provided viper instance, so flags bound by the
// CLI take part in resolution.
func LoadWith(v *viper.Viper, configFile string) (*Config, error) {
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigPath())
		v.AddConfigPath(".")
	}

	// Environment variable overrides: DISNEYMAGIC_GRID_ROWS etc.
	v.SetEnvPrefix("DISNEYMAGIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("catalog.base_url", cfg.Catalog.BaseURL)
	v.SetDefault("catalog.home_path", cfg.Catalog.HomePath)
	v.SetDefault("catalog.set_path", cfg.Catalog.SetPath)
	v.SetDefault("catalog.aspect_ratio", cfg.Catalog.AspectRatio)
	v.SetDefault("catalog.timeout", cfg.Catalog.Timeout)

	v.SetDefault("grid.rows", cfg.Grid.Rows)
	v.SetDefault("grid.columns", cfg.Grid.Columns)

	v.SetDefault("tile.width", cfg.Tile.Width)
	v.SetDefault("tile.height", cfg.Tile.Height)
	v.SetDefault("tile.enhance_factor", cfg.Tile.EnhanceFactor)

	v.SetDefault("cache.dir", cfg.Cache.Dir)
	v.SetDefault("ui.show_help", cfg.UI.ShowHelp)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
}

// Validate checks the values the browser relies on
func (c *Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("catalog.base_url is required")
	}
	if strings.Count(c.Catalog.SetPath, "%s") != 1 {
		return fmt.Errorf("catalog.set_path must contain exactly one %%s: %q", c.Catalog.SetPath)
	}
	if c.Catalog.AspectRatio == "" {
		return fmt.Errorf("catalog.aspect_ratio is required")
	}
	if c.Grid.Rows < 1 || c.Grid.Columns < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Rows, c.Grid.Columns)
	}
	if c.Tile.Width < 1 || c.Tile.Height < 1 {
		return fmt.Errorf("tile size must be positive, got %dx%d", c.Tile.Width, c.Tile.Height)
	}
	if c.Tile.EnhanceFactor < 1 {
		return fmt.Errorf("tile.enhance_factor must be >= 1, got %v", c.Tile.EnhanceFactor)
	}
	return nil
}

// HomeURL returns the full URL of the home document
func (c CatalogConfig) HomeURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.HomePath
}

// SetURL returns the full URL of a referenced set document
func (c CatalogConfig) SetURL(refID string) string {
	return strings.TrimRight(c.BaseURL, "/") + fmt.Sprintf(c.SetPath, refID)
}
