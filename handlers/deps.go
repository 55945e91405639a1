// Package handlers provides the HTTP API for the lookup server. Each API type
// owns its routes and takes its dependencies explicitly so tests can inject
// fakes.
package handlers

import (
	"context"

	"github.com/adminvv/inventory-lookup-api/storage"
)

// HistoryStore is the slice of the storage layer the HTTP handlers need.
type HistoryStore interface {
	RecordLookup(ctx context.Context, rec *storage.LookupRecord) error
	ListRecentLookups(ctx context.Context, limit int) ([]*storage.LookupRecord, error)
}
