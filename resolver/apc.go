package resolver

import (
	"context"
	"regexp"
)

// APC serial numbers are 12 uppercase alphanumeric characters.
var apcSerialPattern = regexp.MustCompile(`^[A-Z0-9]{12}$`)

// apcInference maps the leading two characters to common APC product lines.
var apcInference = inferenceTable{
	prefixLengths: []int{2},
	entries: map[string]string{
		"AS": "APC Smart-UPS (Rack/Tower)",
		"AP": "APC Power Distribution Unit (PDU)",
		"BB": "APC Back-UPS (Basic Battery Backup)",
		"BK": "APC Back-UPS (Basic Battery Backup)",
		"SM": "APC Smart-UPS (Older Models)",
		"SU": "APC Smart-UPS (Older Models)",
		"SY": "APC Symmetra (Modular UPS)",
	},
	prefixNoun:    "prefix",
	fallbackModel: "APC UPS/Power Device (Inferred)",
}

// APCVendor infers APC product lines from serial number prefixes.
type APCVendor struct{}

func init() {
	RegisterVendor(&APCVendor{})
}

func (v *APCVendor) ID() string {
	return "apc"
}

func (v *APCVendor) TagField() string {
	return "serial_number"
}

func (v *APCVendor) Validate(serial string) bool {
	return apcSerialPattern.MatchString(serial)
}

func (v *APCVendor) FormatHint() string {
	return "Invalid APC Serial Number format (must be 12 alphanumeric characters)."
}

func (v *APCVendor) Resolve(ctx context.Context, serial string) Outcome {
	return apcInference.resolve(serial)
}
