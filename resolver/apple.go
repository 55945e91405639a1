package resolver

import (
	"context"
	"regexp"
)

// Apple serial numbers are 12 characters (Macs) or 17 (iOS devices).
var appleSerialPattern = regexp.MustCompile(`^[A-Z0-9]{12}$|^[A-Z0-9]{17}$`)

// appleInference is based on community knowledge of Apple's serial number
// structure. A strong suggestion, not a definitive answer.
var appleInference = inferenceTable{
	prefixLengths: []int{3},
	entries: map[string]string{
		// MacBooks (12-character serials)
		"C02": "MacBook Pro (Inferred)",
		"C03": "MacBook Air (Inferred)",
		"C1M": "iMac (Inferred)",
		"DCP": "Mac Mini (Inferred)",
		// iPads/iPhones (17-character serials)
		"F4H": "iPad Pro (Inferred)",
		"F5K": "iPad Air (Inferred)",
		"F9F": "iPhone (Inferred)",
		"F9G": "iPhone (Inferred)",
		"G0C": "Apple Watch (Inferred)",
		"FTY": "iPod Touch (Inferred)",
	},
	prefixNoun:     "prefix",
	missDiagnostic: "Could not infer Apple model from serial number prefix.",
}

// AppleVendor infers Apple model families from serial number prefixes.
type AppleVendor struct{}

func init() {
	RegisterVendor(&AppleVendor{})
}

func (v *AppleVendor) ID() string {
	return "apple"
}

func (v *AppleVendor) TagField() string {
	return "serial_number"
}

func (v *AppleVendor) Validate(serial string) bool {
	return appleSerialPattern.MatchString(serial)
}

func (v *AppleVendor) FormatHint() string {
	return "Invalid Apple Serial Number format (must be 12 or 17 alphanumeric characters)."
}

func (v *AppleVendor) Resolve(ctx context.Context, serial string) Outcome {
	return appleInference.resolve(serial)
}
