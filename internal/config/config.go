// Package config holds the CLI configuration. Values come from defaults,
// an optional config file and DARKSKY_* environment variables, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Token     string  `mapstructure:"token"`
	BaseURL   string  `mapstructure:"base_url"`
	Units     string  `mapstructure:"units"`
	Language  string  `mapstructure:"language"`
	Timeout   int     `mapstructure:"timeout"`
	RateRPS   float64 `mapstructure:"rate_rps"`
	RateBurst int     `mapstructure:"rate_burst"`
	Debug     bool    `mapstructure:"debug"`
}

func NewDefaultConfig() *Config {
	return &Config{
		BaseURL:   "https://api.darksky.net",
		Units:     "auto",
		Timeout:   10,
		RateBurst: 1,
	}
}

// Load reads the configuration. A missing config file is not an error;
// environment variables and defaults still apply.
func Load(configPath string) (*Config, error) {
	cfg := NewDefaultConfig()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("darksky")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("DARKSKY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("token", cfg.Token)
	v.SetDefault("base_url", cfg.BaseURL)
	v.SetDefault("units", cfg.Units)
	v.SetDefault("language", cfg.Language)
	v.SetDefault("timeout", cfg.Timeout)
	v.SetDefault("rate_rps", cfg.RateRPS)
	v.SetDefault("rate_burst", cfg.RateBurst)
	v.SetDefault("debug", cfg.Debug)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return cfg, nil
}
