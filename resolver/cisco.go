package resolver

import (
	"context"
	"regexp"
)

// Cisco serial numbers are LLLYYWWXXXX: a 3-letter manufacturing location
// code, year, week, and a sequential suffix.
var ciscoSerialPattern = regexp.MustCompile(`^[A-Z]{3}\d{8}$`)

// ciscoInference keys on the location code, which is only a very rough hint
// of the product line. An accurate mapping would need Cisco's proprietary
// database; for inventory purposes the family is enough.
var ciscoInference = inferenceTable{
	prefixLengths: []int{3},
	entries: map[string]string{
		"FOX": "Cisco Product (Foxconn - Common for Switches/Routers)",
		"FOC": "Cisco Product (China - Common for Switches/Routers)",
		"JAE": "Cisco Product (Japan - Older/Specialized Gear)",
		"JAB": "Cisco Product (Japan - Older/Specialized Gear)",
		"KWC": "Cisco Product (Common for Access Points/Smaller Devices)",
	},
	prefixNoun:    "location code",
	fallbackModel: "Cisco Network Device (Inferred)",
}

// CiscoVendor infers Cisco product families from serial number location codes.
type CiscoVendor struct{}

func init() {
	RegisterVendor(&CiscoVendor{})
}

func (v *CiscoVendor) ID() string {
	return "cisco"
}

func (v *CiscoVendor) TagField() string {
	return "serial_number"
}

func (v *CiscoVendor) Validate(serial string) bool {
	return ciscoSerialPattern.MatchString(serial)
}

func (v *CiscoVendor) FormatHint() string {
	return "Invalid Cisco Serial Number format (must be 11 characters: LLLYYWWXXXX)."
}

func (v *CiscoVendor) Resolve(ctx context.Context, serial string) Outcome {
	return ciscoInference.resolve(serial)
}
