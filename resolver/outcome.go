package resolver

// FailureKind classifies why a resolution attempt did not produce a model name.
// Callers use it to pick an HTTP status; the Diagnostic string carries the
// human-readable explanation.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureMissingInput
	FailureUnsupportedVendor
	FailureInvalidFormat
	FailureTimeout
	FailureConnection
	FailureHTTPNotFound
	FailureHTTPOther
	FailureNetworkOther
	FailureParseNotFound
	FailureNoInferenceMatch
)

var failureNames = map[FailureKind]string{
	FailureNone:              "none",
	FailureMissingInput:      "missing_input",
	FailureUnsupportedVendor: "unsupported_vendor",
	FailureInvalidFormat:     "invalid_format",
	FailureTimeout:           "network_timeout",
	FailureConnection:        "network_connection",
	FailureHTTPNotFound:      "http_not_found",
	FailureHTTPOther:         "http_error",
	FailureNetworkOther:      "network_other",
	FailureParseNotFound:     "parse_not_found",
	FailureNoInferenceMatch:  "no_inference_match",
}

func (k FailureKind) String() string {
	if name, ok := failureNames[k]; ok {
		return name
	}
	return "unknown"
}

// BadInput reports whether the failure was caused by the caller's input
// rather than by the lookup itself.
func (k FailureKind) BadInput() bool {
	switch k {
	case FailureMissingInput, FailureUnsupportedVendor, FailureInvalidFormat:
		return true
	}
	return false
}

// Transport reports whether the failure happened while talking to the vendor
// site, as opposed to the page being fetched but yielding nothing.
func (k FailureKind) Transport() bool {
	switch k {
	case FailureTimeout, FailureConnection, FailureHTTPOther, FailureNetworkOther:
		return true
	}
	return false
}

// Outcome is the uniform result of one resolution attempt. Every attempt
// terminates in exactly one Outcome; Matched is true iff ModelName is
// non-empty, and Diagnostic is always set (a confidence caveat on a match,
// a failure explanation otherwise).
type Outcome struct {
	ModelName  string
	Diagnostic string
	Matched    bool
	Failure    FailureKind
}

func matched(model, diagnostic string) Outcome {
	return Outcome{
		ModelName:  model,
		Diagnostic: diagnostic,
		Matched:    true,
		Failure:    FailureNone,
	}
}

func failed(kind FailureKind, diagnostic string) Outcome {
	return Outcome{
		Diagnostic: diagnostic,
		Failure:    kind,
	}
}
