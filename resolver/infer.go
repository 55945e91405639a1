package resolver

import "fmt"

// inferenceTable maps identifier prefixes to model labels for vendors that
// publish no usable lookup endpoint. The mappings are community-sourced
// guesses carried over from the inventory team's spreadsheets; do not expand
// them without evidence from actual stock.
type inferenceTable struct {
	// prefixLengths are tried in order; put the most specific (longest)
	// first so e.g. "CP1" wins over "CP".
	prefixLengths []int

	entries map[string]string

	// prefixNoun names the prefix in the success diagnostic, usually
	// "prefix" ("location code" for Cisco).
	prefixNoun string

	// fallbackModel, when non-empty, is returned as a match for unknown
	// prefixes. Vendors without one fail with missDiagnostic instead.
	fallbackModel  string
	missDiagnostic string
}

// resolve looks the identifier up in the table. Purely local, deterministic,
// no I/O.
func (t *inferenceTable) resolve(serial string) Outcome {
	for _, n := range t.prefixLengths {
		if len(serial) < n {
			continue
		}
		prefix := serial[:n]
		if model, ok := t.entries[prefix]; ok {
			return matched(model, fmt.Sprintf(
				"Model inferred from serial number %s '%s'. Please verify.", t.prefixNoun, prefix))
		}
	}

	if t.fallbackModel != "" {
		return matched(t.fallbackModel, "Model inferred from serial number structure. Please verify.")
	}

	return failed(FailureNoInferenceMatch, t.missDiagnostic)
}
