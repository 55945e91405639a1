package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/adminvv/inventory-lookup-api/resolver"
)

// corsMiddleware allows browser clients on other origins to call the lookup
// API. The API is read-only, so a permissive policy is acceptable.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// handleIndex lists the available lookup endpoints.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	vendors := resolver.Vendors()
	endpoints := make([]string, 0, len(vendors))
	for _, v := range vendors {
		endpoints = append(endpoints, fmt.Sprintf("/lookup/%s?tag=<%s_SERIAL>", v, strings.ToUpper(v)))
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "Inventory Lookup API is running. Endpoints: %s\n", strings.Join(endpoints, ", "))
}
