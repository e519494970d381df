// Package intent converts free-text lookup queries into structured intents
// via a language model. The model only parses; it never generates answers —
// results always come from the record store.
package intent

import (
	"strings"
)

// LookupKind selects which record store operation an intent maps to
type LookupKind string

const (
	// ByUniqueID looks up one specific instance, e.g. "MC000001.00001"
	ByUniqueID LookupKind = "by_unique_id"

	// ByReferenceID looks up all instances of a logical entity, e.g. "MC000001"
	ByReferenceID LookupKind = "by_reference_id"

	// ByXPath reverse-looks-up records by their location in the document schema
	ByXPath LookupKind = "by_xpath"
)

// Valid reports whether the kind is one of the known lookup kinds
func (k LookupKind) Valid() bool {
	switch k {
	case ByUniqueID, ByReferenceID, ByXPath:
		return true
	}
	return false
}

// Intent is the structured payload the model produces from a free-text
// query: which lookup to run and with what value.
type Intent struct {
	Kind  LookupKind `json:"lookup_type"`
	Value string     `json:"value"`
}

// ExtractPayload locates the outermost braced region in model output.
// Models wrap the requested JSON in explanation text often enough that
// parsing the raw response directly is not reliable. Returns "" when no
// braced region exists.
func ExtractPayload(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return s[start : end+1]
}
