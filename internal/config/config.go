package config

import (
	"fmt"

	"pizzeria/internal/model"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	Logger LoggerConfig
	Demo   DemoConfig
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string `env:"PIZZERIA_LOG_LEVEL" envDefault:"info"`
	Format string `env:"PIZZERIA_LOG_FORMAT" envDefault:"json"` // "json" or "console"
}

// AllCelebrities makes the demo introduce every celebrity the factory knows.
const AllCelebrities = "all"

// DemoConfig controls what the demo runner orders.
type DemoConfig struct {
	Regions   []string `env:"PIZZERIA_REGIONS" envSeparator:"," envDefault:"new-york,chicago,california"`
	Toppings  []string `env:"PIZZERIA_TOPPINGS" envSeparator:"," envDefault:"cheese,pepperoni"`
	Dough     string   `env:"PIZZERIA_DOUGH"` // optional; replaces each store's default dough after ordering
	Celebrity string   `env:"PIZZERIA_CELEBRITY" envDefault:"all"`
}

// DoughOverride returns the dough demo pizzas are switched to, if one is configured.
func (c DemoConfig) DoughOverride() (model.DoughType, bool, error) {
	if c.Dough == "" {
		return model.DoughNone, false, nil
	}

	d, err := model.ParseDoughType(c.Dough)
	if err != nil {
		return model.DoughNone, false, fmt.Errorf("invalid dough: %w", err)
	}
	return d, true, nil
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom loads configuration from environ, or from the process environment when environ is nil.
func LoadFrom(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if len(c.Demo.Regions) == 0 {
		return fmt.Errorf("at least one region is required")
	}

	for i, region := range c.Demo.Regions {
		if region == "" {
			return fmt.Errorf("region %d is empty", i)
		}
	}

	if _, _, err := c.Demo.DoughOverride(); err != nil {
		return err
	}

	return nil
}
