package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/adminvv/inventory-lookup-api/config"
)

// Config represents the server configuration
type Config struct {
	Server   ServerConfig          `toml:"server"`
	Database config.DatabaseConfig `toml:"database"`
	Logging  config.LoggingConfig  `toml:"logging"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Port        int    `toml:"port"`
	BindAddress string `toml:"bind_address"` // default: 0.0.0.0 for all interfaces
	HistoryOff  bool   `toml:"history_off"`  // disable lookup history recording
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        5000,
			BindAddress: "0.0.0.0",
		},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			Path:   "", // Empty = platform default data directory
		},
		Logging: config.LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// LoadConfig loads configuration from a TOML file with environment variable
// overrides. configPath may be empty, in which case the platform search
// paths are consulted for server.toml.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath == "" {
		if found, _, err := config.FindConfigFile("server.toml"); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		if err := config.LoadTOML(configPath, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides. PORT matches common hosting environments.
	if val := os.Getenv("PORT"); val != "" {
		var port int
		if _, err := fmt.Sscanf(val, "%d", &port); err == nil {
			cfg.Server.Port = port
		}
	}
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		cfg.Server.BindAddress = val
	}
	if val := os.Getenv("HISTORY_OFF"); val != "" {
		cfg.Server.HistoryOff = val == "true" || val == "1"
	}
	if val := os.Getenv("DATABASE_DRIVER"); val != "" {
		cfg.Database.Driver = strings.ToLower(val)
	}
	if val := os.Getenv("DATABASE_PATH"); val != "" {
		cfg.Database.Path = val
	}
	if val := os.Getenv("DATABASE_DSN"); val != "" {
		cfg.Database.DSN = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("LOG_DIRECTORY"); val != "" {
		cfg.Logging.Directory = val
	}

	return cfg, nil
}

// WriteDefaultConfig writes a commented default configuration file.
// Fails if the file already exists.
func WriteDefaultConfig(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists at %s", configPath)
	}

	content := `# Device Lookup Server configuration

[server]
port = 5000
bind_address = "0.0.0.0"
# history_off = true

[database]
# driver = "sqlite"    # or "postgres"
# path = ""            # sqlite file path, empty = platform default
# dsn = ""             # postgres connection string

[logging]
level = "info"
# directory = ""       # empty = platform default
console = true
`
	return os.WriteFile(configPath, []byte(content), 0644)
}
