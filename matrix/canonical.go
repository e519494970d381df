// Package matrix implements the MISMO UniqueID Matrix record store: the
// normalized record schema, the workbook importer that builds it, and the
// exact-match lookups that query it.
package matrix

import "strings"

// CanonicalizeIdentifier returns the comparison key for a unique or
// reference identifier. Stored values keep their original casing; only
// comparisons are case-folded.
func CanonicalizeIdentifier(s string) string {
	return strings.ToLower(s)
}

// CanonicalizePath returns the comparison key for an xpath. Surrounding
// whitespace, a leading "//" or "/", and trailing "/" are stripped before
// case-folding, so "//MESSAGE/DEAL", "/MESSAGE/DEAL" and "MESSAGE/DEAL"
// all compare equal to the stored form "MESSAGE/DEAL".
//
// Idempotent: a canonicalized path passes through unchanged.
func CanonicalizePath(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "//")
	s = strings.Trim(s, "/")
	return strings.ToLower(s)
}
