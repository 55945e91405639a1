package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Vendor support sites block obvious bots, so the fetch presents a desktop
// browser user-agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const fetchTimeout = 10 * time.Second

// httpClient is shared by all scrape vendors. Configured once at startup and
// never mutated afterwards; the transport's pool is safe for concurrent
// lookups. Tests swap it for a short-timeout client.
var httpClient = &http.Client{
	Timeout: fetchTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        8,
		MaxIdleConnsPerHost: 4,
		IdleConnTimeout:     30 * time.Second,
	},
}

// extractStage is one attempt at pulling a model name out of a parsed page.
// Stages run in order; the first non-empty result wins and its diagnostic
// becomes the outcome's message.
type extractStage struct {
	extract    func(doc *goquery.Document) string
	diagnostic string
}

// selectorStage extracts the trimmed text of the first element matching a
// CSS selector.
func selectorStage(selector, diagnostic string) extractStage {
	return extractStage{
		extract: func(doc *goquery.Document) string {
			return strings.TrimSpace(doc.Find(selector).First().Text())
		},
		diagnostic: diagnostic,
	}
}

// titleStage extracts the first capture group of pattern from the page title.
// When contains is non-empty the title must contain it for the stage to apply.
func titleStage(pattern *regexp.Regexp, contains, diagnostic string) extractStage {
	return extractStage{
		extract: func(doc *goquery.Document) string {
			title := doc.Find("title").First().Text()
			if contains != "" && !strings.Contains(title, contains) {
				return ""
			}
			m := pattern.FindStringSubmatch(title)
			if len(m) < 2 {
				return ""
			}
			return strings.TrimSpace(m[1])
		},
		diagnostic: diagnostic,
	}
}

// scrapeSpec describes one vendor's support-page lookup: how to build the
// URL, the ordered extraction stages, and the vendor's failure texts.
type scrapeSpec struct {
	lookupURL func(serial string) string
	stages    []extractStage

	// clean post-processes extracted text (e.g. strip a redundant "HP "
	// prefix). Nil means trim only.
	clean func(string) string

	// pageMissingDiagnostic is used for an upstream HTTP 404.
	pageMissingDiagnostic string

	// notFoundDiagnostic is used when the page fetched fine but no stage
	// produced text.
	notFoundDiagnostic string

	// networkFallback, when set, may derive a low-confidence label from the
	// identifier itself if the network call fails. Not consulted when the
	// fetch succeeds but the parse comes up empty.
	networkFallback func(serial string) (model, diagnostic string)
}

// resolve fetches the vendor page and runs the extraction stages.
// Single attempt, no retries.
func (s *scrapeSpec) resolve(ctx context.Context, serial string) Outcome {
	url := s.lookupURL(serial)

	doc, failKind, fetchErr := fetchDocument(ctx, url)
	if failKind != FailureNone {
		if s.networkFallback != nil {
			if model, diagnostic := s.networkFallback(serial); model != "" {
				return matched(model, diagnostic)
			}
		}
		return failed(failKind, transportDiagnostic(s, failKind, fetchErr))
	}

	for _, stage := range s.stages {
		text := stage.extract(doc)
		if text == "" {
			continue
		}
		if s.clean != nil {
			text = s.clean(text)
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		return matched(text, stage.diagnostic)
	}

	return failed(FailureParseNotFound, s.notFoundDiagnostic)
}

func transportDiagnostic(s *scrapeSpec, kind FailureKind, err error) string {
	switch kind {
	case FailureHTTPNotFound:
		return s.pageMissingDiagnostic
	case FailureHTTPOther:
		return fmt.Sprintf("HTTP Error: %v", err)
	case FailureConnection:
		return fmt.Sprintf("Error Connecting: %v", err)
	case FailureTimeout:
		return fmt.Sprintf("Timeout Error: %v", err)
	default:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	}
}

// httpStatusError carries a non-2xx status for transportDiagnostic.
type httpStatusError struct {
	status int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("%d %s", e.status, http.StatusText(e.status))
}

// fetchDocument issues a single GET and parses the body. A non-zero FailureKind
// classifies the transport failure: timeout, connection error, HTTP status
// (not-found vs other), or anything else.
func fetchDocument(ctx context.Context, url string) (*goquery.Document, FailureKind, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, FailureNetworkOther, err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, classifyFetchError(err), err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, FailureHTTPNotFound, &httpStatusError{status: resp.StatusCode}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, FailureHTTPOther, &httpStatusError{status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, FailureNetworkOther, err
	}

	return doc, FailureNone, nil
}

func classifyFetchError(err error) FailureKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return FailureConnection
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return FailureConnection
	}

	if errors.Is(err, context.Canceled) {
		return FailureNetworkOther
	}

	return FailureNetworkOther
}

// stripPrefixFold removes prefix from the start of s, ignoring case, and
// trims the remainder.
func stripPrefixFold(s, prefix string) string {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return strings.TrimSpace(s[len(prefix):])
	}
	return s
}
