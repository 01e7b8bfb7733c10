// Package config loads bootstrap configuration for Whoswho demos and CLIs.
// The library itself takes credentials as explicit constructor parameters;
// this package is the single place where the environment (and an optional
// yaml file) is consulted to source them.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries everything the bootstrap layer needs to assemble a registry.
type Config struct {
	Provider        string    `mapstructure:"provider"`
	Model           string    `mapstructure:"model"`
	OpenAIAPIKey    string    `mapstructure:"openai_api_key"`
	AnthropicAPIKey string    `mapstructure:"anthropic_api_key"`
	Log             LogConfig `mapstructure:"log"`
}

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// APIKey returns the credential matching the configured provider.
func (c *Config) APIKey() string {
	if c.Provider == "anthropic" {
		return c.AnthropicAPIKey
	}
	return c.OpenAIAPIKey
}

// Load reads configuration from WHOSWHO_* environment variables layered over
// an optional whoswho.yaml in the working directory and built-in defaults.
// The conventional OPENAI_API_KEY / ANTHROPIC_API_KEY variables are honored
// as fallbacks for the credential fields. A missing config file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("WHOSWHO")
	v.AutomaticEnv()

	// Credential fallbacks under their conventional unprefixed names.
	_ = v.BindEnv("openai_api_key", "WHOSWHO_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("anthropic_api_key", "WHOSWHO_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("log.level", "WHOSWHO_LOG_LEVEL")
	_ = v.BindEnv("log.format", "WHOSWHO_LOG_FORMAT")

	v.SetConfigName("whoswho")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "openai")
	v.SetDefault("model", "")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("anthropic_api_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
