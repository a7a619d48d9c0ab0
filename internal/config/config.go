package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	JWT     JWTConfig
	Log     LogConfig
	Limits  LimitsConfig
	Service ServiceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// JWTConfig holds signing and expiry settings for admin tokens.
type JWTConfig struct {
	Secret       string        `mapstructure:"secret"`
	Issuer       string        `mapstructure:"issuer"`
	AccessExpiry time.Duration `mapstructure:"access_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LimitsConfig holds the default and maximum result limits per action.
type LimitsConfig struct {
	MaxSearchResults   int `mapstructure:"max_search_results"`
	DefaultPopularSize int `mapstructure:"default_popular_size"`
	DefaultBrowseSize  int `mapstructure:"default_browse_size"`
}

// ServiceConfig identifies the service in status reports.
type ServiceConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// Load reads configuration from environment variables with the FTZOPS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FTZOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "ftzops")
	v.SetDefault("jwt.access_expiry", "12h")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Limit defaults
	v.SetDefault("limits.max_search_results", 100)
	v.SetDefault("limits.default_popular_size", 20)
	v.SetDefault("limits.default_browse_size", 50)

	// Service identity
	v.SetDefault("service.name", "hts-lookup")
	v.SetDefault("service.version", "1.2.0")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
