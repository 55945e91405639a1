package resolver

import (
	"context"
	"regexp"
)

// TCL serial numbers run 12-14 uppercase alphanumerics and are too variable
// to decode without an internal warranty tool; valid serials get the generic
// label.
var tclSerialPattern = regexp.MustCompile(`^[A-Z0-9]{12,14}$`)

var tclInference = inferenceTable{
	fallbackModel: "TCL TV/Display (Inferred)",
}

// TCLVendor labels TCL serials with a generic inferred model.
type TCLVendor struct{}

func init() {
	RegisterVendor(&TCLVendor{})
}

func (v *TCLVendor) ID() string {
	return "tcl"
}

func (v *TCLVendor) TagField() string {
	return "serial_number"
}

func (v *TCLVendor) Validate(serial string) bool {
	return tclSerialPattern.MatchString(serial)
}

func (v *TCLVendor) FormatHint() string {
	return "Invalid TCL Serial Number format (must be 12-14 alphanumeric characters)."
}

func (v *TCLVendor) Resolve(ctx context.Context, serial string) Outcome {
	return tclInference.resolve(serial)
}
