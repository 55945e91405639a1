package resolver

import (
	"context"
	"regexp"
)

// Brother serial numbers are 15 alphanumeric characters.
var brotherSerialPattern = regexp.MustCompile(`^[A-Z0-9]{15}$`)

// brotherInference maps the leading two characters to the product line.
// Brother offers no public lookup API, so this is an educated guess.
var brotherInference = inferenceTable{
	prefixLengths: []int{2},
	entries: map[string]string{
		// Laser series
		"U6": "Brother HL-L Series Laser Printer",
		"E6": "Brother MFC-L Series All-in-One",
		"K6": "Brother DCP-L Series All-in-One",
		// Inkjet series
		"D6": "Brother MFC-J Series Inkjet",
		"J6": "Brother DCP-J Series Inkjet",
	},
	prefixNoun:     "prefix",
	missDiagnostic: "Could not infer Brother model from serial number prefix.",
}

// BrotherVendor infers Brother product lines from serial number prefixes.
type BrotherVendor struct{}

func init() {
	RegisterVendor(&BrotherVendor{})
}

func (v *BrotherVendor) ID() string {
	return "brother"
}

func (v *BrotherVendor) TagField() string {
	return "serial_number"
}

func (v *BrotherVendor) Validate(serial string) bool {
	return brotherSerialPattern.MatchString(serial)
}

func (v *BrotherVendor) FormatHint() string {
	return "Invalid Brother Serial Number format (must be 15 alphanumeric characters)."
}

func (v *BrotherVendor) Resolve(ctx context.Context, serial string) Outcome {
	return brotherInference.resolve(serial)
}
