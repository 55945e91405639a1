package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLStore implements Store over database/sql for both SQLite and PostgreSQL.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// DB returns the underlying database connection.
func (s *SQLStore) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// query converts SQLite-style ? placeholders to the dialect's format.
func (s *SQLStore) query(q string) string {
	if s.dialect.Name() == "postgres" {
		return ConvertPlaceholders(q)
	}
	return q
}

func (s *SQLStore) initSchema() error {
	if _, err := s.db.Exec(s.dialect.CreateLookupTable()); err != nil {
		return fmt.Errorf("create lookup_history: %w", err)
	}
	// Query pattern is always "most recent first"
	if _, err := s.db.Exec(`CREATE INDEX IF NOT EXISTS idx_lookup_history_created_at ON lookup_history (created_at)`); err != nil {
		return fmt.Errorf("create lookup_history index: %w", err)
	}
	return nil
}

// RecordLookup appends one resolution attempt to the history.
func (s *SQLStore) RecordLookup(ctx context.Context, rec *LookupRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO lookup_history (vendor, tag, model_name, matched, failure, diagnostic, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, s.query(query),
		rec.Vendor, rec.Tag, rec.ModelName, rec.Matched, rec.Failure,
		rec.Diagnostic, rec.DurationMs, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert lookup record: %w", err)
	}
	return nil
}

// ListRecentLookups returns up to limit history records, newest first.
func (s *SQLStore) ListRecentLookups(ctx context.Context, limit int) ([]*LookupRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, vendor, tag, model_name, matched, failure, diagnostic, duration_ms, created_at
		FROM lookup_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, s.query(query), limit)
	if err != nil {
		return nil, fmt.Errorf("query lookup history: %w", err)
	}
	defer rows.Close()

	var records []*LookupRecord
	for rows.Next() {
		rec := &LookupRecord{}
		if err := rows.Scan(&rec.ID, &rec.Vendor, &rec.Tag, &rec.ModelName,
			&rec.Matched, &rec.Failure, &rec.Diagnostic, &rec.DurationMs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lookup record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
