package resolver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// withBaseURL redirects a vendor's base URL at a test server for the duration
// of one test. Scrape tests must not run in parallel because of this.
func withBaseURL(t *testing.T, target *string, url string) {
	t.Helper()
	old := *target
	*target = url
	t.Cleanup(func() { *target = old })
}

// withShortTimeout swaps the shared client for one that gives up quickly so
// timeout paths can be exercised without waiting the full production timeout.
func withShortTimeout(t *testing.T) {
	t.Helper()
	old := httpClient
	httpClient = &http.Client{Timeout: 100 * time.Millisecond}
	t.Cleanup(func() { httpClient = old })
}

func htmlServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDellScrapePrimarySelector(t *testing.T) {
	srv := htmlServer(t, `<html><head><title>ignored</title></head>
		<body><h1 class="product-name">Latitude 7420</h1></body></html>`)
	withBaseURL(t, &dellBaseURL, srv.URL)

	out := Resolve(context.Background(), "dell", "A1B2C3D")
	if !out.Matched {
		t.Fatalf("expected match, got: %s", out.Diagnostic)
	}
	if out.ModelName != "Latitude 7420" {
		t.Errorf("ModelName = %q, want Latitude 7420", out.ModelName)
	}
	if out.Diagnostic != "Model name scraped successfully." {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestDellScrapeTitleFallback(t *testing.T) {
	// No selector matches; the title regex must kick in and the
	// "Support for " prefix must not leak into the model name.
	srv := htmlServer(t, `<html><head><title>Support for ThinkPad X1 | Dell US</title></head>
		<body><p>nothing useful</p></body></html>`)
	withBaseURL(t, &dellBaseURL, srv.URL)

	out := Resolve(context.Background(), "dell", "A1B2C3D")
	if !out.Matched {
		t.Fatalf("expected match, got: %s", out.Diagnostic)
	}
	if out.ModelName != "ThinkPad X1" {
		t.Errorf("ModelName = %q, want ThinkPad X1", out.ModelName)
	}
	if !strings.Contains(out.Diagnostic, "fallback") {
		t.Errorf("title extraction should report the fallback, got: %s", out.Diagnostic)
	}
}

func TestDellScrapeSecondarySelector(t *testing.T) {
	srv := htmlServer(t, `<html><body><span id="modelName">OptiPlex 7090</span></body></html>`)
	withBaseURL(t, &dellBaseURL, srv.URL)

	out := Resolve(context.Background(), "dell", "A1B2C3D")
	if !out.Matched || out.ModelName != "OptiPlex 7090" {
		t.Errorf("expected OptiPlex 7090, got %q (%s)", out.ModelName, out.Diagnostic)
	}
}

func TestDellScrapeHTTPNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(srv.Close)
	withBaseURL(t, &dellBaseURL, srv.URL)

	out := Resolve(context.Background(), "dell", "A1B2C3D")
	if out.Matched {
		t.Fatalf("expected failure, got model %q", out.ModelName)
	}
	if out.Failure != FailureHTTPNotFound {
		t.Errorf("Failure = %v, want http_not_found", out.Failure)
	}
	if !strings.Contains(out.Diagnostic, "404") {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestDellScrapeHTTPOtherError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	withBaseURL(t, &dellBaseURL, srv.URL)

	out := Resolve(context.Background(), "dell", "A1B2C3D")
	if out.Failure != FailureHTTPOther {
		t.Errorf("Failure = %v, want http_error", out.Failure)
	}
	if !strings.HasPrefix(out.Diagnostic, "HTTP Error:") {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestDellScrapeEmptyParse(t *testing.T) {
	srv := htmlServer(t, `<html><head><title>Unrelated page</title></head><body></body></html>`)
	withBaseURL(t, &dellBaseURL, srv.URL)

	out := Resolve(context.Background(), "dell", "A1B2C3D")
	if out.Matched {
		t.Fatalf("expected failure, got model %q", out.ModelName)
	}
	if out.Failure != FailureParseNotFound {
		t.Errorf("Failure = %v, want parse_not_found", out.Failure)
	}
}

func TestHPScrapeStripsVendorPrefix(t *testing.T) {
	srv := htmlServer(t, `<html><body><h1 class="product-title">HP EliteBook 840 G8</h1></body></html>`)
	withBaseURL(t, &hpBaseURL, srv.URL)

	out := Resolve(context.Background(), "hp", "5CD1234XYZ")
	if !out.Matched {
		t.Fatalf("expected match, got: %s", out.Diagnostic)
	}
	if out.ModelName != "EliteBook 840 G8" {
		t.Errorf("ModelName = %q, want EliteBook 840 G8 (HP prefix stripped)", out.ModelName)
	}
}

func TestHPScrapeTitleFallback(t *testing.T) {
	srv := htmlServer(t, `<html><head><title>HP LaserJet Pro M404dn | HP Product Information</title></head><body></body></html>`)
	withBaseURL(t, &hpBaseURL, srv.URL)

	out := Resolve(context.Background(), "hp", "5CD1234XYZ")
	if !out.Matched {
		t.Fatalf("expected match, got: %s", out.Diagnostic)
	}
	if out.ModelName != "LaserJet Pro M404dn" {
		t.Errorf("ModelName = %q, want LaserJet Pro M404dn", out.ModelName)
	}
}

func TestLenovoScrapeSelector(t *testing.T) {
	srv := htmlServer(t, `<html><body><span class="product-name">ThinkPad X1 Carbon Gen 9</span></body></html>`)
	withBaseURL(t, &lenovoBaseURL, srv.URL)

	out := Resolve(context.Background(), "lenovo", "PF0ABCDE")
	if !out.Matched || out.ModelName != "ThinkPad X1 Carbon Gen 9" {
		t.Errorf("expected ThinkPad X1 Carbon Gen 9, got %q (%s)", out.ModelName, out.Diagnostic)
	}
	if out.Diagnostic != "Model found via web scraping." {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestLenovoScrapeNoTitleFallback(t *testing.T) {
	// Lenovo deliberately has no title-regex stage
	srv := htmlServer(t, `<html><head><title>Support for ThinkPad X1 | Dell US</title></head><body></body></html>`)
	withBaseURL(t, &lenovoBaseURL, srv.URL)

	out := Resolve(context.Background(), "lenovo", "PF0ABCDE")
	if out.Matched {
		t.Fatalf("expected failure, got model %q", out.ModelName)
	}
	if out.Failure != FailureParseNotFound {
		t.Errorf("Failure = %v, want parse_not_found", out.Failure)
	}
	if out.Diagnostic != "Model name element not found on Lenovo support page." {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestViewSonicScrapeTitleRegex(t *testing.T) {
	srv := htmlServer(t, `<html><head><title>ViewSonic IFP6550 Product Support</title></head><body></body></html>`)
	withBaseURL(t, &viewsonicBaseURL, srv.URL)

	out := Resolve(context.Background(), "viewsonic", "VS123456789")
	if !out.Matched || out.ModelName != "IFP6550" {
		t.Errorf("expected IFP6550, got %q (%s)", out.ModelName, out.Diagnostic)
	}
}

func TestAcerTimeoutFallback(t *testing.T) {
	// A 22-character serial still yields a usable label when the fetch
	// times out.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	withBaseURL(t, &acerBaseURL, srv.URL)
	withShortTimeout(t)

	out := Resolve(context.Background(), "acer", "NXHSEAA0010234ABCD5678")
	if !out.Matched {
		t.Fatalf("expected fallback match, got: %s", out.Diagnostic)
	}
	if out.ModelName != "Acer Product (Serial: NXHSE...)" {
		t.Errorf("ModelName = %q, want sliced serial label", out.ModelName)
	}
	if !strings.Contains(out.Diagnostic, "Web scraping failed") {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestAcerConnectionFallbackSNID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening anymore
	withBaseURL(t, &acerBaseURL, url)

	out := Resolve(context.Background(), "acer", "123456789012")
	if !out.Matched {
		t.Fatalf("expected SNID fallback match, got: %s", out.Diagnostic)
	}
	if out.ModelName != "Acer Product (SNID: 123456789012)" {
		t.Errorf("ModelName = %q, want SNID label", out.ModelName)
	}
}

func TestAcerEmptyParseIsNotAFallback(t *testing.T) {
	// Same 22-character serial, but the fetch succeeds and the page has no
	// model element: that is a parse miss, not a fallback case.
	srv := htmlServer(t, `<html><body><p>no product here</p></body></html>`)
	withBaseURL(t, &acerBaseURL, srv.URL)

	out := Resolve(context.Background(), "acer", "NXHSEAA0010234ABCD5678")
	if out.Matched {
		t.Fatalf("expected failure, got model %q", out.ModelName)
	}
	if out.Failure != FailureParseNotFound {
		t.Errorf("Failure = %v, want parse_not_found", out.Failure)
	}
	if out.Diagnostic != "Model name element not found on Acer support page." {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestScrapeConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()
	withBaseURL(t, &dellBaseURL, url)

	out := Resolve(context.Background(), "dell", "A1B2C3D")
	if out.Matched {
		t.Fatalf("expected failure, got model %q", out.ModelName)
	}
	if out.Failure != FailureConnection {
		t.Errorf("Failure = %v, want network_connection", out.Failure)
	}
	if !strings.HasPrefix(out.Diagnostic, "Error Connecting:") {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestScrapeTimeoutClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	withBaseURL(t, &dellBaseURL, srv.URL)
	withShortTimeout(t)

	out := Resolve(context.Background(), "dell", "A1B2C3D")
	if out.Failure != FailureTimeout {
		t.Errorf("Failure = %v, want network_timeout", out.Failure)
	}
	if !strings.HasPrefix(out.Diagnostic, "Timeout Error:") {
		t.Errorf("unexpected diagnostic: %s", out.Diagnostic)
	}
}

func TestScrapeSendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`<html><body><h1 class="product-name">X</h1></body></html>`))
	}))
	t.Cleanup(srv.Close)
	withBaseURL(t, &dellBaseURL, srv.URL)

	Resolve(context.Background(), "dell", "A1B2C3D")
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("expected browser user-agent, got %q", gotUA)
	}
}
