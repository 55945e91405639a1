package resolver

import (
	"context"
	"regexp"
)

// Microsoft Surface serials are 12 digits, 16 digits, or 12 uppercase
// alphanumerics.
var microsoftSerialPattern = regexp.MustCompile(`^[0-9]{12}$|^[0-9]{16}$|^[A-Z0-9]{12}$`)

// Surface serials are mostly opaque: the model is not encoded in the number,
// and the warranty checker loads its data via JavaScript, so there is no
// table or scrape worth maintaining. Every valid serial gets the generic
// label.
var microsoftInference = inferenceTable{
	fallbackModel: "Microsoft Surface Device (Inferred)",
}

// MicrosoftVendor labels Microsoft Surface serials with a generic inferred
// model.
type MicrosoftVendor struct{}

func init() {
	RegisterVendor(&MicrosoftVendor{})
}

func (v *MicrosoftVendor) ID() string {
	return "microsoft"
}

func (v *MicrosoftVendor) TagField() string {
	return "serial_number"
}

func (v *MicrosoftVendor) Validate(serial string) bool {
	return microsoftSerialPattern.MatchString(serial)
}

func (v *MicrosoftVendor) FormatHint() string {
	return "Invalid Microsoft Serial Number format (must be 12 or 16 digits/letters)."
}

func (v *MicrosoftVendor) Resolve(ctx context.Context, serial string) Outcome {
	return microsoftInference.resolve(serial)
}
