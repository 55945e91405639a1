package resolver

import (
	"context"
	"regexp"
)

// HP serial numbers run 10-12 alphanumeric characters.
var hpSerialPattern = regexp.MustCompile(`^[A-Z0-9]{10,12}$`)

// hpBaseURL can be overridden in tests to point at a local server.
var hpBaseURL = "https://support.hp.com"

var hpTitlePattern = regexp.MustCompile(`(.+?)\s+\|\s+HP Product Information`)

var hpScrape = scrapeSpec{
	lookupURL: func(serial string) string {
		return hpBaseURL + "/us-en/product/lookup/" + serial
	},
	stages: []extractStage{
		selectorStage("h1.product-title", "Model name scraped successfully."),
		selectorStage("span.product-name", "Model name scraped successfully."),
		titleStage(hpTitlePattern, "HP Product Information", "Model name scraped from page title (fallback)."),
	},
	clean: func(s string) string {
		// The vendor name is redundant in a lookup keyed by vendor
		return stripPrefixFold(s, "HP ")
	},
	pageMissingDiagnostic: "Serial Number found, but product page not found (404). It might be too old or invalid.",
	notFoundDiagnostic:    "Could not find the product model name on the page.",
}

// HPVendor resolves HP serial numbers by scraping the HP product lookup page.
type HPVendor struct{}

func init() {
	RegisterVendor(&HPVendor{})
}

func (v *HPVendor) ID() string {
	return "hp"
}

func (v *HPVendor) TagField() string {
	return "serial_number"
}

func (v *HPVendor) Validate(serial string) bool {
	return hpSerialPattern.MatchString(serial)
}

func (v *HPVendor) FormatHint() string {
	return "Invalid HP Serial Number format (must be 10-12 alphanumeric characters)."
}

func (v *HPVendor) Resolve(ctx context.Context, serial string) Outcome {
	return hpScrape.resolve(ctx, serial)
}
