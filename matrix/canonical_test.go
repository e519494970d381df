package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeIdentifier(t *testing.T) {
	assert.Equal(t, "mc000001.00001", CanonicalizeIdentifier("MC000001.00001"))
	assert.Equal(t, "mc000001.00001", CanonicalizeIdentifier("mc000001.00001"))
	assert.Equal(t, "", CanonicalizeIdentifier(""))
}

func TestCanonicalizePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare path", "MESSAGE/DEAL_SETS/DEAL_SET", "message/deal_sets/deal_set"},
		{"single leading slash", "/MESSAGE/DEAL_SETS/DEAL_SET", "message/deal_sets/deal_set"},
		{"double leading slash", "//MESSAGE/DEAL_SETS/DEAL_SET", "message/deal_sets/deal_set"},
		{"trailing slash", "MESSAGE/DEAL_SETS/DEAL_SET/", "message/deal_sets/deal_set"},
		{"surrounding whitespace", "  //MESSAGE/DEAL_SETS  ", "message/deal_sets"},
		{"mixed case", "//Message/Deal_Sets", "message/deal_sets"},
		{"empty", "", ""},
		{"only slashes", "///", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalizePath(tt.input))
		})
	}
}

// Canonicalizing an already-canonical path must be a no-op, otherwise
// stored and queried forms can drift apart.
func TestCanonicalizePathIdempotent(t *testing.T) {
	inputs := []string{
		"//MESSAGE/DEAL_SETS/DEAL_SET",
		"/MESSAGE/DEAL_SETS/DEAL_SET/",
		"  MESSAGE  ",
		"///A",
		"",
	}
	for _, input := range inputs {
		once := CanonicalizePath(input)
		assert.Equal(t, once, CanonicalizePath(once), "input %q", input)
	}
}

// The three accepted spellings of the same path must share one comparison key
func TestCanonicalizePathEquivalentForms(t *testing.T) {
	forms := []string{
		"MESSAGE/DEAL_SETS/DEAL_SET",
		"/MESSAGE/DEAL_SETS/DEAL_SET",
		"//MESSAGE/DEAL_SETS/DEAL_SET",
	}
	want := CanonicalizePath(forms[0])
	for _, form := range forms[1:] {
		assert.Equal(t, want, CanonicalizePath(form))
	}
}
