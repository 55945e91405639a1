package storage

import (
	"fmt"
	"strings"
)

// Dialect abstracts the SQL syntax differences between SQLite and PostgreSQL.
// Queries are written with SQLite-style ? placeholders and converted at
// runtime for PostgreSQL, so the store has a single set of query strings.
type Dialect interface {
	// Name returns "sqlite" or "postgres".
	Name() string

	// CreateLookupTable returns the DDL for the lookup history table.
	CreateLookupTable() string
}

// SQLiteDialect implements Dialect for modernc.org/sqlite.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string { return "sqlite" }

func (SQLiteDialect) CreateLookupTable() string {
	return `
		CREATE TABLE IF NOT EXISTS lookup_history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			vendor TEXT NOT NULL,
			tag TEXT NOT NULL,
			model_name TEXT NOT NULL DEFAULT '',
			matched INTEGER NOT NULL DEFAULT 0,
			failure TEXT NOT NULL DEFAULT '',
			diagnostic TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMP NOT NULL
		)`
}

// PostgresDialect implements Dialect for pgx via database/sql.
type PostgresDialect struct{}

func (PostgresDialect) Name() string { return "postgres" }

func (PostgresDialect) CreateLookupTable() string {
	return `
		CREATE TABLE IF NOT EXISTS lookup_history (
			id BIGSERIAL PRIMARY KEY,
			vendor TEXT NOT NULL,
			tag TEXT NOT NULL,
			model_name TEXT NOT NULL DEFAULT '',
			matched BOOLEAN NOT NULL DEFAULT FALSE,
			failure TEXT NOT NULL DEFAULT '',
			diagnostic TEXT NOT NULL DEFAULT '',
			duration_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		)`
}

// ConvertPlaceholders rewrites SQLite-style ? placeholders into PostgreSQL's
// numbered $1, $2, ... form. Question marks inside string literals are not
// handled; the store's queries never embed literals.
func ConvertPlaceholders(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
