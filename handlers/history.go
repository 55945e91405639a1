package handlers

import (
	"net/http"
	"strconv"

	"github.com/adminvv/inventory-lookup-api/storage"
)

const maxHistoryLimit = 500

// HistoryAPI exposes the recent lookup history.
type HistoryAPI struct {
	history HistoryStore
}

// NewHistoryAPI creates a new history API instance.
func NewHistoryAPI(history HistoryStore) *HistoryAPI {
	return &HistoryAPI{history: history}
}

// RegisterRoutes registers the history endpoints on the provided mux.
func (api *HistoryAPI) RegisterRoutes(mux *http.ServeMux) {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	mux.HandleFunc("/api/history", api.HandleHistory)
}

// HandleHistory handles GET /api/history?limit=<n> - returns the most recent
// lookups, newest first. limit defaults to 50 and is capped at 500.
func (api *HistoryAPI) HandleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if api.history == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"error": "Lookup history is not enabled.",
		})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error": "Invalid limit parameter.",
			})
			return
		}
		limit = n
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := api.history.ListRecentLookups(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": "Failed to load lookup history.",
		})
		return
	}
	if records == nil {
		records = []*storage.LookupRecord{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(records),
		"lookups": records,
	})
}
