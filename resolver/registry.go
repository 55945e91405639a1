// Package resolver turns a (vendor, serial number) pair into a best-effort
// product model name. Each supported vendor registers a VendorModule that
// validates the identifier's lexical format and resolves a model name either
// by scraping the vendor's public support page or by inferring from a static
// prefix table. All registry state is built in init() functions and is
// read-only afterwards, so concurrent lookups need no coordination.
package resolver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/adminvv/inventory-lookup-api/logger"
)

// VendorModule defines the per-vendor resolution contract.
// Each vendor (Dell, HP, Apple, etc.) implements this interface to provide
// its identifier format rule and its resolution strategy.
type VendorModule interface {
	// ID returns the vendor key used in lookup routes (e.g. "dell").
	ID() string

	// TagField returns the JSON field name for the identifier in responses:
	// "service_tag" for Dell, "serial_number" for everyone else.
	TagField() string

	// Validate checks the lexical format of an upper-cased, trimmed identifier.
	// Pure function, no I/O; invalid identifiers never reach Resolve.
	Validate(serial string) bool

	// FormatHint returns the full user-facing message for a failed Validate.
	FormatHint() string

	// Resolve produces the model name for a validated identifier. Scrape
	// vendors perform one bounded network fetch; inference vendors are pure.
	// Resolve never returns an error; every path ends in an Outcome.
	Resolve(ctx context.Context, serial string) Outcome
}

// vendorModules holds registered vendor modules keyed by ID.
// Populated by init() functions in each vendor file (dell.go, hp.go, ...).
var vendorModules = make(map[string]VendorModule)

// RegisterVendor adds a vendor module to the registry.
// Called by init() in each vendor file.
func RegisterVendor(module VendorModule) {
	vendorModules[module.ID()] = module
}

// Vendors returns the sorted list of supported vendor ids.
func Vendors() []string {
	ids := make([]string, 0, len(vendorModules))
	for id := range vendorModules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Lookup returns the registered module for a vendor id.
func Lookup(vendorID string) (VendorModule, bool) {
	module, ok := vendorModules[strings.ToLower(vendorID)]
	return module, ok
}

// Resolve is the sole entry point for external callers. It normalizes the raw
// identifier, rejects missing or malformed input before any resolver runs
// (no network calls are made for invalid input), routes to the vendor's
// resolver, and returns that resolver's outcome unchanged.
func Resolve(ctx context.Context, vendorID, rawIdentifier string) Outcome {
	module, ok := Lookup(vendorID)
	if !ok {
		return failed(FailureUnsupportedVendor, fmt.Sprintf("Unsupported vendor '%s'.", vendorID))
	}

	serial := strings.ToUpper(strings.TrimSpace(rawIdentifier))
	if serial == "" {
		return failed(FailureMissingInput, missingMessage(module))
	}

	if !module.Validate(serial) {
		return failed(FailureInvalidFormat, module.FormatHint())
	}

	out := module.Resolve(ctx, serial)

	// Matched must track ModelName exactly; resolvers are not trusted to
	// keep the pair consistent on every path.
	out.Matched = out.ModelName != ""
	if out.Matched {
		out.Failure = FailureNone
	}

	if logger.Global != nil {
		logger.Global.Debug("Lookup resolved",
			"vendor", module.ID(),
			"matched", out.Matched,
			"failure", out.Failure.String())
	}

	return out
}

func missingMessage(module VendorModule) string {
	if module.TagField() == "service_tag" {
		return "Missing service tag parameter."
	}
	return "Missing serial number parameter."
}
