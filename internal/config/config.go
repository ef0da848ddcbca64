package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Larek       LarekConfig
	LogLevel    string
}

// LarekConfig points at the storefront backend
type LarekConfig struct {
	APIURL  string
	CDNURL  string
	Timeout time.Duration
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("env")
	v.SetConfigName(".env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	v.AddConfigPath("../..")

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", "30s")

	// Read from environment variables
	v.AutomaticEnv()

	// Try to read .env file (optional)
	if err := v.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	origin := strings.TrimSuffix(getEnvOrViper(v, "API_ORIGIN", ""), "/")

	timeout, err := time.ParseDuration(getEnvOrViper(v, "HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	apiURL := getEnvOrViper(v, "LAREK_API_URL", "")
	cdnURL := getEnvOrViper(v, "LAREK_CDN_URL", "")

	// Validate required fields
	if origin == "" && (apiURL == "" || cdnURL == "") {
		return nil, fmt.Errorf("API_ORIGIN is required")
	}
	if apiURL == "" {
		apiURL = origin + "/api/weblarek"
	}
	if cdnURL == "" {
		cdnURL = origin + "/content/weblarek"
	}

	cfg := &Config{
		Port:        getEnvOrViper(v, "PORT", "8080"),
		Environment: getEnvOrViper(v, "ENVIRONMENT", "development"),
		Larek: LarekConfig{
			APIURL:  strings.TrimSuffix(apiURL, "/"),
			CDNURL:  strings.TrimSuffix(cdnURL, "/"),
			Timeout: timeout,
		},
		LogLevel: getEnvOrViper(v, "LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnvOrViper(v *viper.Viper, key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return defaultValue
}
