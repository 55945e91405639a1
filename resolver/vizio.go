package resolver

import (
	"context"
	"regexp"
)

// Vizio serial numbers are 14 uppercase alphanumerics. The first four
// characters code the product line/factory.
var vizioSerialPattern = regexp.MustCompile(`^[A-Z0-9]{14}$`)

var vizioInference = inferenceTable{
	prefixLengths: []int{4},
	entries: map[string]string{
		"LTMA": "Vizio M-Series TV (Inferred)",
		"LTAS": "Vizio E-Series TV (Inferred)",
		"LTJZ": "Vizio V-Series TV (Inferred)",
		"LTJA": "Vizio D-Series TV (Inferred)",
	},
	prefixNoun:    "prefix",
	fallbackModel: "Vizio Display/TV (Inferred)",
}

// VizioVendor infers Vizio product lines from serial number prefixes.
type VizioVendor struct{}

func init() {
	RegisterVendor(&VizioVendor{})
}

func (v *VizioVendor) ID() string {
	return "vizio"
}

func (v *VizioVendor) TagField() string {
	return "serial_number"
}

func (v *VizioVendor) Validate(serial string) bool {
	return vizioSerialPattern.MatchString(serial)
}

func (v *VizioVendor) FormatHint() string {
	return "Invalid Vizio Serial Number format (must be 14 alphanumeric characters)."
}

func (v *VizioVendor) Resolve(ctx context.Context, serial string) Outcome {
	return vizioInference.resolve(serial)
}
