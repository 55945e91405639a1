package resolver

import (
	"context"
	"regexp"
)

// Juniper serial numbers are 12 alphanumeric characters.
var juniperSerialPattern = regexp.MustCompile(`^[A-Z0-9]{12}$`)

// juniperInference covers EX-series prefixes observed in stock. Highly
// speculative without official docs; an unknown prefix is reported as a
// miss rather than guessed at.
var juniperInference = inferenceTable{
	prefixLengths: []int{2},
	entries: map[string]string{
		// EX4100 Series
		"AA": "EX4100-24P",
		"AB": "EX4100-48P",
		"AC": "EX4100-24T",
		"AD": "EX4100-48T",
		// EX4300 Series
		"BA": "EX4300-24P",
		"BB": "EX4300-48P",
		// EX2300 Series
		"CA": "EX2300-24P",
		"CB": "EX2300-48P",
	},
	prefixNoun:     "prefix",
	missDiagnostic: "Could not infer Juniper model from serial number prefix.",
}

// JuniperVendor infers Juniper EX-series models from serial number prefixes.
type JuniperVendor struct{}

func init() {
	RegisterVendor(&JuniperVendor{})
}

func (v *JuniperVendor) ID() string {
	return "juniper"
}

func (v *JuniperVendor) TagField() string {
	return "serial_number"
}

func (v *JuniperVendor) Validate(serial string) bool {
	return juniperSerialPattern.MatchString(serial)
}

func (v *JuniperVendor) FormatHint() string {
	return "Invalid Juniper Serial Number format (must be 12 alphanumeric characters)."
}

func (v *JuniperVendor) Resolve(ctx context.Context, serial string) Outcome {
	return juniperInference.resolve(serial)
}
