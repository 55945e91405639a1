package resolver

import (
	"context"
	"strings"
	"testing"
)

func TestResolveMissingInput(t *testing.T) {
	// Dell is a scrape vendor; an empty tag must be rejected before any
	// network call is attempted.
	out := Resolve(context.Background(), "dell", "")
	if out.Matched {
		t.Fatalf("expected failure, got model %q", out.ModelName)
	}
	if out.Failure != FailureMissingInput {
		t.Errorf("Failure = %v, want missing_input", out.Failure)
	}
	if out.Diagnostic != "Missing service tag parameter." {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}

	out = Resolve(context.Background(), "hp", "   ")
	if out.Failure != FailureMissingInput {
		t.Errorf("whitespace-only input: Failure = %v, want missing_input", out.Failure)
	}
	if out.Diagnostic != "Missing serial number parameter." {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestResolveUnsupportedVendor(t *testing.T) {
	out := Resolve(context.Background(), "commodore", "ABC1234")
	if out.Matched {
		t.Fatalf("expected failure, got model %q", out.ModelName)
	}
	if out.Failure != FailureUnsupportedVendor {
		t.Errorf("Failure = %v, want unsupported_vendor", out.Failure)
	}
}

func TestResolveInvalidFormat(t *testing.T) {
	tests := []struct {
		vendor string
		serial string
	}{
		{"dell", "ABC12"},
		{"cisco", "fox1234567"},
		{"apple", "TOOSHORT"},
	}

	for _, tt := range tests {
		t.Run(tt.vendor, func(t *testing.T) {
			out := Resolve(context.Background(), tt.vendor, tt.serial)
			if out.Matched {
				t.Fatalf("expected failure, got model %q", out.ModelName)
			}
			if out.Failure != FailureInvalidFormat {
				t.Errorf("Failure = %v, want invalid_format", out.Failure)
			}
			if !strings.HasPrefix(out.Diagnostic, "Invalid ") {
				t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
			}
		})
	}
}

func TestResolveNormalizesCase(t *testing.T) {
	// Lower-case input must be upper-cased before validation and lookup
	out := Resolve(context.Background(), "cisco", "fox12345678")
	if !out.Matched {
		t.Fatalf("expected match for lower-case input, got: %s", out.Diagnostic)
	}
	if out.ModelName != "Cisco Product (Foxconn - Common for Switches/Routers)" {
		t.Errorf("unexpected model: %q", out.ModelName)
	}

	out = Resolve(context.Background(), "apple", "  c02xl0gtjgh5  ")
	if !out.Matched || out.ModelName != "MacBook Pro (Inferred)" {
		t.Errorf("expected trimmed+uppercased match, got %q (%s)", out.ModelName, out.Diagnostic)
	}
}

func TestOutcomeInvariant(t *testing.T) {
	// Every outcome must keep Matched consistent with ModelName, and always
	// carry a diagnostic.
	cases := []struct {
		vendor string
		serial string
	}{
		{"apple", "C02XL0GTJGH5"},
		{"apple", "ZZZXL0GTJGH5"},
		{"cisco", "ZZZ12345678"},
		{"juniper", "ZZ0000000000"},
		{"dell", ""},
		{"dell", "BAD"},
		{"nosuch", "X"},
	}

	for _, tc := range cases {
		out := Resolve(context.Background(), tc.vendor, tc.serial)
		if out.Matched != (out.ModelName != "") {
			t.Errorf("%s/%q: Matched=%v inconsistent with ModelName=%q",
				tc.vendor, tc.serial, out.Matched, out.ModelName)
		}
		if out.Diagnostic == "" {
			t.Errorf("%s/%q: empty diagnostic", tc.vendor, tc.serial)
		}
		if out.Matched && out.Failure != FailureNone {
			t.Errorf("%s/%q: matched outcome carries failure %v", tc.vendor, tc.serial, out.Failure)
		}
		if !out.Matched && out.Failure == FailureNone {
			t.Errorf("%s/%q: unmatched outcome has no failure kind", tc.vendor, tc.serial)
		}
	}
}

func TestFailureKindClassification(t *testing.T) {
	for _, k := range []FailureKind{FailureMissingInput, FailureUnsupportedVendor, FailureInvalidFormat} {
		if !k.BadInput() {
			t.Errorf("%v should classify as bad input", k)
		}
		if k.Transport() {
			t.Errorf("%v should not classify as transport", k)
		}
	}
	for _, k := range []FailureKind{FailureTimeout, FailureConnection, FailureHTTPOther, FailureNetworkOther} {
		if !k.Transport() {
			t.Errorf("%v should classify as transport", k)
		}
	}
	for _, k := range []FailureKind{FailureHTTPNotFound, FailureParseNotFound, FailureNoInferenceMatch} {
		if k.BadInput() || k.Transport() {
			t.Errorf("%v should be a plain not-found", k)
		}
	}
}
