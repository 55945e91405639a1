package resolver

import (
	"context"
	"regexp"
)

// ViewSonic serial numbers run 10-12 alphanumeric characters.
var viewsonicSerialPattern = regexp.MustCompile(`^[A-Z0-9]{10,12}$`)

// viewsonicBaseURL can be overridden in tests to point at a local server.
var viewsonicBaseURL = "https://www.viewsonic.com"

var viewsonicTitlePattern = regexp.MustCompile(`ViewSonic\s+([A-Z0-9]+)\s+Product`)

var viewsonicScrape = scrapeSpec{
	lookupURL: func(serial string) string {
		return viewsonicBaseURL + "/us/viewsonic-warranty-lookup?serial_number=" + serial
	},
	stages: []extractStage{
		selectorStage("h1.product-name", "Model name scraped successfully."),
		selectorStage("span.model-name", "Model name scraped successfully."),
		titleStage(viewsonicTitlePattern, "ViewSonic", "Model name scraped from page title (fallback)."),
	},
	pageMissingDiagnostic: "Serial Number found, but product page not found (404). It might be too old or invalid.",
	notFoundDiagnostic:    "Could not find the product model name on the page.",
}

// ViewSonicVendor resolves ViewSonic serial numbers by scraping the
// ViewSonic warranty lookup page.
type ViewSonicVendor struct{}

func init() {
	RegisterVendor(&ViewSonicVendor{})
}

func (v *ViewSonicVendor) ID() string {
	return "viewsonic"
}

func (v *ViewSonicVendor) TagField() string {
	return "serial_number"
}

func (v *ViewSonicVendor) Validate(serial string) bool {
	return viewsonicSerialPattern.MatchString(serial)
}

func (v *ViewSonicVendor) FormatHint() string {
	return "Invalid ViewSonic Serial Number format (must be 10-12 alphanumeric characters)."
}

func (v *ViewSonicVendor) Resolve(ctx context.Context, serial string) Outcome {
	return viewsonicScrape.resolve(ctx, serial)
}
