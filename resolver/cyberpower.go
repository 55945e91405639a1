package resolver

import (
	"context"
	"regexp"
)

// CyberPower serial numbers are 12 or 16 alphanumeric characters.
var cyberpowerSerialPattern = regexp.MustCompile(`^[A-Z0-9]{12}$|^[A-Z0-9]{16}$`)

// cyberpowerInference mixes 3-character model-specific prefixes with
// 2-character series prefixes; the longer prefix is tried first so "CP1"
// beats "CP".
var cyberpowerInference = inferenceTable{
	prefixLengths: []int{3, 2},
	entries: map[string]string{
		// Common UPS series
		"CP": "CyberPower CP Series UPS",
		"PR": "CyberPower PR Series UPS",
		"OR": "CyberPower OR Series UPS",
		"BP": "CyberPower Battery Pack",
		// Specific models seen in stock
		"CP1": "CyberPower CP1500PFCLCD",
		"CP2": "CyberPower CP1000PFCLCD",
	},
	prefixNoun:     "prefix",
	missDiagnostic: "Could not infer CyberPower model from serial number prefix.",
}

// CyberPowerVendor infers CyberPower models from serial number prefixes.
type CyberPowerVendor struct{}

func init() {
	RegisterVendor(&CyberPowerVendor{})
}

func (v *CyberPowerVendor) ID() string {
	return "cyberpower"
}

func (v *CyberPowerVendor) TagField() string {
	return "serial_number"
}

func (v *CyberPowerVendor) Validate(serial string) bool {
	return cyberpowerSerialPattern.MatchString(serial)
}

func (v *CyberPowerVendor) FormatHint() string {
	return "Invalid CyberPower Serial Number format (must be 12 or 16 alphanumeric characters)."
}

func (v *CyberPowerVendor) Resolve(ctx context.Context, serial string) Outcome {
	return cyberpowerInference.resolve(serial)
}
