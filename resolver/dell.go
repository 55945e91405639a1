package resolver

import (
	"context"
	"regexp"
)

// Dell service tags are exactly 7 alphanumeric characters.
var dellTagPattern = regexp.MustCompile(`^[A-Z0-9]{7}$`)

// dellBaseURL can be overridden in tests to point at a local server.
var dellBaseURL = "https://www.dell.com"

var dellTitlePattern = regexp.MustCompile(`Support for (.+?) \| Dell US`)

var dellScrape = scrapeSpec{
	lookupURL: func(serial string) string {
		return dellBaseURL + "/support/home/en-us/product-support/servicetag/" + serial + "/overview"
	},
	stages: []extractStage{
		selectorStage("h1.product-name", "Model name scraped successfully."),
		selectorStage("span#modelName", "Model name scraped successfully."),
		titleStage(dellTitlePattern, "Support for", "Model name scraped from page title (fallback)."),
	},
	clean: func(s string) string {
		// The overview heading sometimes repeats the title text
		return stripPrefixFold(s, "Support for ")
	},
	pageMissingDiagnostic: "Service Tag found, but product page not found (404). It might be too old or invalid.",
	notFoundDiagnostic:    "Could not find the product model name on the page.",
}

// DellVendor resolves Dell service tags by scraping the Dell support
// overview page.
type DellVendor struct{}

func init() {
	RegisterVendor(&DellVendor{})
}

func (v *DellVendor) ID() string {
	return "dell"
}

func (v *DellVendor) TagField() string {
	return "service_tag"
}

func (v *DellVendor) Validate(serial string) bool {
	return dellTagPattern.MatchString(serial)
}

func (v *DellVendor) FormatHint() string {
	return "Invalid Dell Service Tag format (must be 7 alphanumeric characters)."
}

func (v *DellVendor) Resolve(ctx context.Context, serial string) Outcome {
	return dellScrape.resolve(ctx, serial)
}
