package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fluentribbon/Fluent.Ribbon-sub003/internal/platform"
)

// EnvPrefix prefixes environment overrides, e.g. RIBBON_LAYOUT_WHITESPACE
const EnvPrefix = "RIBBON"

// ConfigFileName is the file name looked up in the platform config directory
const ConfigFileName = "config"

// Config holds file and environment configuration shared by the CLI and the demo
type Config struct {
	Layout     LayoutConfig     `mapstructure:"layout"`
	Definition DefinitionConfig `mapstructure:"definition"`
	Log        LogConfig        `mapstructure:"log"`
}

// LayoutConfig holds tab strip defaults
type LayoutConfig struct {
	Whitespace float64 `mapstructure:"whitespace"`
	Width      float64 `mapstructure:"width"`
	Height     float64 `mapstructure:"height"`
}

// DefinitionConfig holds ribbon definition settings
type DefinitionConfig struct {
	Path     string        `mapstructure:"path"`
	Watch    bool          `mapstructure:"watch"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SlogLevel parses Level, falling back to Info
func (c LogConfig) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Load reads configuration from path, or from config.toml in the platform
// config directory when path is empty, then applies RIBBON_* environment
// overrides. A missing default config file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("layout.whitespace", DefaultTabWhitespace)
	v.SetDefault("layout.width", 800.0)
	v.SetDefault("layout.height", 24.0)
	v.SetDefault("definition.path", "")
	v.SetDefault("definition.watch", DefaultAutoReload)
	v.SetDefault("definition.debounce", DefaultDebounce)
	v.SetDefault("log.level", "info")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType("toml")
		if dir, err := platform.GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Layout.Whitespace = clampWhitespace(c.Layout.Whitespace)
	if c.Definition.Path != "" && !filepath.IsAbs(c.Definition.Path) && v.ConfigFileUsed() != "" {
		c.Definition.Path = filepath.Join(filepath.Dir(v.ConfigFileUsed()), c.Definition.Path)
	}
	return c, nil
}
