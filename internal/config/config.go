package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	API struct {
		BaseURL  string   `yaml:"base_url"`
		APIKey   string   `yaml:"api_key"`
		Coins    []string `yaml:"coins"`
		Currency string   `yaml:"currency"`
	} `yaml:"api"`
	Database struct {
		Host       string `yaml:"host"`
		Port       int    `yaml:"port"`
		User       string `yaml:"user"`
		Password   string `yaml:"password"`
		Name       string `yaml:"name"`
		Schema     string `yaml:"schema"`
		Table      string `yaml:"table"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("COINGECKO_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.API.APIKey = v
	}
	if v := os.Getenv("COINS"); v != "" {
		cfg.API.Coins = splitCSV(v)
	}
	if v := os.Getenv("CURRENCY"); v != "" {
		cfg.API.Currency = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.API.Coins) == 0 {
		cfg.API.Coins = []string{"bitcoin", "ethereum"}
	}
	if cfg.API.Currency == "" {
		cfg.API.Currency = "usd"
	}
	if cfg.Schedule.Cron == "" {
		cfg.Schedule.Cron = "0 0 * * * *"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.Schema == "" {
		cfg.Database.Schema = "crypto"
	}
	if cfg.Database.Table == "" {
		cfg.Database.Table = "prices"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.API.Coins) == 0 {
		return fmt.Errorf("api.coins is required")
	}
	if c.API.Currency == "" {
		return fmt.Errorf("api.currency is required")
	}
	if c.Database.Host != "" {
		if c.Database.User == "" {
			return fmt.Errorf("database.user is required when database.host is set")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("database.name is required when database.host is set")
		}
	}
	return nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
