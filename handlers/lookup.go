package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/adminvv/inventory-lookup-api/logger"
	"github.com/adminvv/inventory-lookup-api/resolver"
	"github.com/adminvv/inventory-lookup-api/storage"
)

// LookupAPI provides the /lookup/{vendor} endpoints. History recording is
// best-effort: a storage failure never affects the lookup response.
type LookupAPI struct {
	history HistoryStore
}

// NewLookupAPI creates a new lookup API instance. history may be nil, in
// which case lookups are not recorded.
func NewLookupAPI(history HistoryStore) *LookupAPI {
	return &LookupAPI{history: history}
}

// RegisterRoutes registers the lookup endpoints on the provided mux.
func (api *LookupAPI) RegisterRoutes(mux *http.ServeMux) {
	if mux == nil {
		mux = http.DefaultServeMux
	}
	mux.HandleFunc("/lookup/", api.HandleLookup)
}

// HandleLookup handles GET /lookup/{vendor}?tag=<identifier>.
//
// Responses:
//   - 200 {"success": true, "<tag_field>": ..., "model_name": ..., "message": ...}
//   - 400 {"error": ...} for missing, malformed, or unsupported input
//   - 404 {"success": false, "<tag_field>": ..., "error": ...} when the
//     identifier is well-formed but no model could be determined
//   - 502 same body as 404, when the vendor site could not be reached
func (api *LookupAPI) HandleLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vendorID := strings.ToLower(strings.TrimPrefix(r.URL.Path, "/lookup/"))
	if vendorID == "" || strings.Contains(vendorID, "/") {
		http.NotFound(w, r)
		return
	}

	tag := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("tag")))

	start := time.Now()
	out := resolver.Resolve(r.Context(), vendorID, tag)
	elapsed := time.Since(start)

	if out.Failure.BadInput() {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": out.Diagnostic,
		})
		return
	}

	module, _ := resolver.Lookup(vendorID)
	api.recordLookup(r, vendorID, tag, out, elapsed)

	if out.Matched {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":          true,
			module.TagField(): tag,
			"model_name":       out.ModelName,
			"message":          out.Diagnostic,
		})
		return
	}

	status := http.StatusNotFound
	if out.Failure.Transport() {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, map[string]interface{}{
		"success":          false,
		module.TagField(): tag,
		"error":            out.Diagnostic,
	})
}

func (api *LookupAPI) recordLookup(r *http.Request, vendorID, tag string, out resolver.Outcome, elapsed time.Duration) {
	if api.history == nil {
		return
	}
	rec := &storage.LookupRecord{
		Vendor:     vendorID,
		Tag:        tag,
		ModelName:  out.ModelName,
		Matched:    out.Matched,
		Failure:    out.Failure.String(),
		Diagnostic: out.Diagnostic,
		DurationMs: elapsed.Milliseconds(),
	}
	if err := api.history.RecordLookup(r.Context(), rec); err != nil && logger.Global != nil {
		logger.Global.Warn("Failed to record lookup history", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
