package storage

import (
	"path/filepath"

	"github.com/adminvv/inventory-lookup-api/config"
)

// DriverConfig contains a normalized driver name and DSN for opening a DB
// connection.
type DriverConfig struct {
	Name string // driver name to pass to database/sql ("sqlite" or "pgx")
	DSN  string // file path or connection string
}

// ChooseDriver maps the database section of the config into a DriverConfig.
// Defaults to SQLite for single-node installs.
func ChooseDriver(cfg config.DatabaseConfig) DriverConfig {
	switch cfg.Driver {
	case "postgres", "pgx":
		return DriverConfig{Name: "pgx", DSN: cfg.DSN}
	default:
		path := cfg.Path
		if path == "" {
			path = GetDefaultDBPath()
		}
		return DriverConfig{Name: "sqlite", DSN: path}
	}
}

// GetDefaultDBPath returns the platform-appropriate history database path.
func GetDefaultDBPath() string {
	dataDir, err := config.GetDataDirectory(false)
	if err != nil {
		// Fall back to the working directory when no home is available
		// (containers, stripped-down service accounts).
		return "devicelookup.db"
	}
	return filepath.Join(dataDir, "devicelookup.db")
}
