// Package config loads the fieldwork tool configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the fieldwork configuration
type Config struct {
	SchemaDir string       `mapstructure:"schema_dir"`
	Server    ServerConfig `mapstructure:"server"`
}

// ServerConfig represents explorer server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Address returns the explorer listen address
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load loads the configuration from fieldwork.yml or fieldwork.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("schema_dir", "schemas")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 4000)

	// Set config name and paths
	v.SetConfigName("fieldwork")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("FIELDWORK")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.SchemaDir == "" {
		return fmt.Errorf("schema_dir must not be empty")
	}
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", config.Server.Port)
	}
	return nil
}
