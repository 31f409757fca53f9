package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults used when the corresponding environment variable is absent
const (
	DefaultPort        = 8000
	DefaultEnvironment = "development"
)

// Config holds the service configuration, populated once at startup
type Config struct {
	Port        int
	Environment string
}

// Load reads configuration from environment variables via getenv,
// substituting defaults for absent values
func Load(getenv func(string) string) (*Config, error) {
	config := &Config{
		Port:        DefaultPort,
		Environment: DefaultEnvironment,
	}

	if port := getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", port, err)
		}
		config.Port = p
	}

	if env := getenv("ENV"); env != "" {
		config.Environment = env
	}

	return config, nil
}

// LoadFromEnv loads configuration from the process environment
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv)
}

// Addr returns the TCP listen address for the configured port
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
