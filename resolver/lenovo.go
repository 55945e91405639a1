package resolver

import (
	"context"
	"regexp"
)

// Lenovo serial numbers run 8-12 alphanumeric characters.
var lenovoSerialPattern = regexp.MustCompile(`^[A-Z0-9]{8,12}$`)

// lenovoBaseURL can be overridden in tests to point at a local server.
var lenovoBaseURL = "https://pcsupport.lenovo.com"

// Lenovo's warranty page titles carry no extractable model text, so there is
// no title-regex stage for this vendor.
var lenovoScrape = scrapeSpec{
	lookupURL: func(serial string) string {
		return lenovoBaseURL + "/us/en/warranty-lookup?key=" + serial
	},
	stages: []extractStage{
		selectorStage("span.product-name", "Model found via web scraping."),
		selectorStage("h2.product-name", "Model found via web scraping."),
	},
	pageMissingDiagnostic: "Serial Number found, but product page not found (404). It might be too old or invalid.",
	notFoundDiagnostic:    "Model name element not found on Lenovo support page.",
}

// LenovoVendor resolves Lenovo serial numbers by scraping the Lenovo
// warranty lookup page.
type LenovoVendor struct{}

func init() {
	RegisterVendor(&LenovoVendor{})
}

func (v *LenovoVendor) ID() string {
	return "lenovo"
}

func (v *LenovoVendor) TagField() string {
	return "serial_number"
}

func (v *LenovoVendor) Validate(serial string) bool {
	return lenovoSerialPattern.MatchString(serial)
}

func (v *LenovoVendor) FormatHint() string {
	return "Invalid Lenovo Serial Number format (must be 8-12 alphanumeric characters)."
}

func (v *LenovoVendor) Resolve(ctx context.Context, serial string) Outcome {
	return lenovoScrape.resolve(ctx, serial)
}
