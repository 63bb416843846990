package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const appName = "crmview"

// Config holds all application configuration
type Config struct {
	General    GeneralConfig    `mapstructure:"general"`
	Data       DataConfig       `mapstructure:"data"`
	Database   DatabaseConfig   `mapstructure:"database"`
	SavedViews SavedViewsConfig `mapstructure:"saved_views"`
	UI         UIConfig         `mapstructure:"ui"`
}

type GeneralConfig struct {
	Locale   string `mapstructure:"locale"`
	LogLevel string `mapstructure:"log_level"`
}

type DataConfig struct {
	Source       string   `mapstructure:"source"` // "file" or "postgres"
	File         string   `mapstructure:"file"`
	SearchFields []string `mapstructure:"search_fields"`
	DefaultSort  string   `mapstructure:"default_sort"`
}

type DatabaseConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Name        string `mapstructure:"name"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	SSLMode     string `mapstructure:"ssl_mode"`
	KeyringUser string `mapstructure:"keyring_user"`
	Table       string `mapstructure:"table"`
}

type SavedViewsConfig struct {
	Backend string `mapstructure:"backend"` // "yaml", "json", "sqlite" or "memory"
	Path    string `mapstructure:"path"`
	Key     string `mapstructure:"key"`
}

type UIConfig struct {
	Theme        string `mapstructure:"theme"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		General: GeneralConfig{
			Locale:   "en",
			LogLevel: "info",
		},
		Data: DataConfig{
			Source:       "file",
			File:         "leads.json",
			SearchFields: []string{"ownerName", "propertyAddress", "taxId", "email"},
			DefaultSort:  "ownerName",
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			Name:    "crm",
			User:    "postgres",
			SSLMode: "prefer",
			Table:   "leads",
		},
		SavedViews: SavedViewsConfig{
			Backend: "yaml",
			Key:     "crm.savedFilters",
		},
		UI: UIConfig{
			Theme:        "default",
			MouseEnabled: true,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := GetDefaults()
	v.SetDefault("general.locale", d.General.Locale)
	v.SetDefault("general.log_level", d.General.LogLevel)
	v.SetDefault("data.source", d.Data.Source)
	v.SetDefault("data.file", d.Data.File)
	v.SetDefault("data.search_fields", d.Data.SearchFields)
	v.SetDefault("data.default_sort", d.Data.DefaultSort)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.name", d.Database.Name)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", "")
	v.SetDefault("database.ssl_mode", d.Database.SSLMode)
	v.SetDefault("database.keyring_user", "")
	v.SetDefault("database.table", d.Database.Table)
	v.SetDefault("saved_views.backend", d.SavedViews.Backend)
	v.SetDefault("saved_views.path", "")
	v.SetDefault("saved_views.key", d.SavedViews.Key)
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.mouse_enabled", d.UI.MouseEnabled)
}

// Load loads configuration from path, or from the standard locations when
// path is empty. A missing config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Add config paths in priority order
		if configDir, err := GetConfigPath(); err == nil {
			v.AddConfigPath(configDir)
		}
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Data.Source {
	case "file", "postgres":
	default:
		return fmt.Errorf("unknown data source %q (want file or postgres)", c.Data.Source)
	}
	switch c.SavedViews.Backend {
	case "yaml", "json", "sqlite", "memory":
	default:
		return fmt.Errorf("unknown saved views backend %q (want yaml, json, sqlite or memory)", c.SavedViews.Backend)
	}
	return nil
}

// SavedViewsPath returns the configured store path, or the backend's default
// file in the user config directory.
func (c *Config) SavedViewsPath() (string, error) {
	if c.SavedViews.Path != "" {
		return c.SavedViews.Path, nil
	}
	dir, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	switch c.SavedViews.Backend {
	case "json":
		return filepath.Join(dir, "store.json"), nil
	case "sqlite":
		return filepath.Join(dir, "store.db"), nil
	default:
		return filepath.Join(dir, "saved_views.yaml"), nil
	}
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appName), nil
}
