package resolver

import (
	"context"
	"regexp"
)

// Samsung serial numbers are 11 or 15 uppercase alphanumerics.
var samsungSerialPattern = regexp.MustCompile(`^[A-Z0-9]{11}$|^[A-Z0-9]{15}$`)

// Samsung's public warranty check is bot-protected and needs a model code
// anyway, so there is nothing to scrape; valid serials get the generic label.
var samsungInference = inferenceTable{
	fallbackModel: "Samsung Device (Inferred)",
}

// SamsungVendor labels Samsung serials with a generic inferred model.
type SamsungVendor struct{}

func init() {
	RegisterVendor(&SamsungVendor{})
}

func (v *SamsungVendor) ID() string {
	return "samsung"
}

func (v *SamsungVendor) TagField() string {
	return "serial_number"
}

func (v *SamsungVendor) Validate(serial string) bool {
	return samsungSerialPattern.MatchString(serial)
}

func (v *SamsungVendor) FormatHint() string {
	return "Invalid Samsung Serial Number format (must be 11 or 15 alphanumeric characters)."
}

func (v *SamsungVendor) Resolve(ctx context.Context, serial string) Outcome {
	return samsungInference.resolve(serial)
}
