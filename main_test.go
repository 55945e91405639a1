package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adminvv/inventory-lookup-api/storage"
)

// setupTestServer creates a test server with in-memory history storage
func setupTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := storage.Open(storage.DriverConfig{Name: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}

	mux := http.NewServeMux()
	setupRoutes(mux, store)

	server := httptest.NewServer(corsMiddleware(mux))
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func TestHealthEndpoint(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected status=healthy, got %v", body["status"])
	}
}

func TestIndexListsEndpoints(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("index request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	data, _ := io.ReadAll(resp.Body)
	text := string(data)
	if !strings.Contains(text, "Inventory Lookup API is running") {
		t.Errorf("unexpected index body: %s", text)
	}
	for _, vendor := range []string{"dell", "hp", "apple", "tcl"} {
		if !strings.Contains(text, "/lookup/"+vendor) {
			t.Errorf("index missing endpoint for %s", vendor)
		}
	}
}

func TestIndexUnknownPath(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/nope")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	server := setupTestServer(t)

	req, _ := http.NewRequest(http.MethodOptions, server.URL+"/lookup/dell", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected status 204, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", got)
	}
}

func TestLookupEndToEnd(t *testing.T) {
	server := setupTestServer(t)

	resp, err := http.Get(server.URL + "/lookup/apple?tag=C02XL0GTJGH5")
	if err != nil {
		t.Fatalf("lookup request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["success"] != true || body["model_name"] != "MacBook Pro (Inferred)" {
		t.Errorf("unexpected lookup response: %v", body)
	}

	// The lookup should appear in history
	resp2, err := http.Get(server.URL + "/api/history")
	if err != nil {
		t.Fatalf("history request failed: %v", err)
	}
	defer resp2.Body.Close()

	var hist struct {
		Count   int `json:"count"`
		Lookups []struct {
			Vendor    string `json:"vendor"`
			ModelName string `json:"model_name"`
		} `json:"lookups"`
	}
	if err := json.NewDecoder(resp2.Body).Decode(&hist); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if hist.Count != 1 || len(hist.Lookups) != 1 {
		t.Fatalf("expected 1 history entry, got %d", hist.Count)
	}
	if hist.Lookups[0].Vendor != "apple" {
		t.Errorf("unexpected history entry: %+v", hist.Lookups[0])
	}
}
