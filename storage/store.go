// Package storage persists the lookup history. Resolution itself never reads
// from here; the history is a write-only audit trail plus a small API for the
// inventory UI's "recent lookups" view.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// LookupRecord is one resolution attempt as persisted to the history table.
type LookupRecord struct {
	ID         int64     `json:"id"`
	Vendor     string    `json:"vendor"`
	Tag        string    `json:"tag"`
	ModelName  string    `json:"model_name,omitempty"`
	Matched    bool      `json:"matched"`
	Failure    string    `json:"failure,omitempty"`
	Diagnostic string    `json:"diagnostic"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store is the persistence interface used by the HTTP layer.
type Store interface {
	RecordLookup(ctx context.Context, rec *LookupRecord) error
	ListRecentLookups(ctx context.Context, limit int) ([]*LookupRecord, error)
	Close() error
}

// Open connects to the configured backend and ensures the schema exists.
func Open(driver DriverConfig) (Store, error) {
	var dialect Dialect
	switch driver.Name {
	case "pgx":
		dialect = PostgresDialect{}
	case "sqlite":
		dialect = SQLiteDialect{}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver.Name)
	}

	dsn := driver.DSN
	if driver.Name == "sqlite" && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create db directory: %w", err)
		}
		dsn += "?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON"
	}

	db, err := sql.Open(driver.Name, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver.Name == "sqlite" {
		// One writer; an in-memory SQLite database exists per connection.
		db.SetMaxOpenConns(1)
	}

	store := &SQLStore{db: db, dialect: dialect}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}
