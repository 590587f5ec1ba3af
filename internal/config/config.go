package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Session configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	SessionTTLMin int    `mapstructure:"SESSION_TTL_MIN"`

	// Mock data layer configuration
	MockPassword  string `mapstructure:"MOCK_PASSWORD"`
	MockLatencyMS int    `mapstructure:"MOCK_LATENCY_MS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Remote backing configuration (network-backed client)
	RemoteBaseURL    string `mapstructure:"REMOTE_BASE_URL"`
	RemoteTimeoutSec int    `mapstructure:"REMOTE_TIMEOUT_SEC"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Session defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("SESSION_TTL_MIN", 60)

	// Mock data layer defaults
	viper.SetDefault("MOCK_PASSWORD", "password")
	viper.SetDefault("MOCK_LATENCY_MS", 0)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Remote backing defaults
	viper.SetDefault("REMOTE_BASE_URL", "")
	viper.SetDefault("REMOTE_TIMEOUT_SEC", 10)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.SessionTTLMin <= 0 {
		return fmt.Errorf("SESSION_TTL_MIN must be positive")
	}
	if config.MockLatencyMS < 0 {
		return fmt.Errorf("MOCK_LATENCY_MS must not be negative")
	}
	if config.RemoteTimeoutSec <= 0 {
		return fmt.Errorf("REMOTE_TIMEOUT_SEC must be positive")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
