package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Manifest ManifestConfig
	Database DatabaseConfig
	History  HistoryConfig
	UI       UIConfig
}

// ManifestConfig names the manifest to load.
type ManifestConfig struct {
	Source string
}

// DatabaseConfig holds sqlite settings for the history store.
type DatabaseConfig struct {
	Path string
}

// HistoryConfig toggles session history. Resume is separate from Enabled:
// the view log can stay on while every session still opens on the newest
// entry.
type HistoryConfig struct {
	Enabled bool
	Resume  bool
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat   string `mapstructure:"date_format"`
	PreviewBytes int    `mapstructure:"preview_bytes"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// VITRINE_; VITRINE_CONFIG points at an explicit config file.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("manifest.source", "apps.json")
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "vitrine", "vitrine.db"))
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.resume", false)
	v.SetDefault("ui.date_format", "January 2, 2006")
	v.SetDefault("ui.preview_bytes", 4096)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VITRINE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "vitrine"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VITRINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
