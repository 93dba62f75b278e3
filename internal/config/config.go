package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	Log     LogConfig
	UI      UIConfig
}

// StorageConfig selects where the onboarding flag is persisted.
type StorageConfig struct {
	Backend string // "sqlite" or "file"
	Path    string
	Watch   bool // follow changes made by other processes
}

// LogConfig holds logger settings. The TUI owns the terminal, so logs go to a file.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings. A negative GracePeriod tears the
// onboarding subscription down as soon as the last screen stops listening.
type UIConfig struct {
	GracePeriod    time.Duration `mapstructure:"grace_period"`
	NoticeDuration time.Duration `mapstructure:"notice_duration"`
	Theme          string
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "storefront")
}

// Load reads configuration from file and env. Env var overrides use prefix STOREFRONT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("storage.backend", BackendSQLite)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.watch", true)
	v.SetDefault("log.path", filepath.Join(dataDir(), "storefront.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.grace_period", 5*time.Second)
	v.SetDefault("ui.notice_duration", 3*time.Second)
	v.SetDefault("ui.theme", "dark")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STOREFRONT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "storefront"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine unless one was asked for explicitly
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || cfgPath != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c.withDefaults()
}

func (c Config) withDefaults() (Config, error) {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	switch c.Storage.Backend {
	case BackendSQLite:
		if c.Storage.Path == "" {
			c.Storage.Path = filepath.Join(dataDir(), "storefront.db")
		}
	case BackendFile:
		if c.Storage.Path == "" {
			c.Storage.Path = filepath.Join(dataDir(), "preferences.json")
		}
	default:
		return Config{}, fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend)
	}
	return c, nil
}
