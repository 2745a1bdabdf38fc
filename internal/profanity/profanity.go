// Package profanity provides the default content filter consulted before
// a password edit is committed.
//
// The engine itself never depends on this package; it sees only the
// engine.Filter interface. That keeps the core free of content-policy
// concerns and lets tests inject trivial stubs.
package profanity

import (
	_ "embed"
	"strings"

	"golang.org/x/text/unicode/norm"
)

//go:embed words.txt
var wordsFile string

// Denylist flags any candidate text containing a listed word.
//
// Candidates are NFC-normalized and lower-cased before matching, so case
// tricks and decomposed code points do not slip past the list. Matching is
// substring-based: the password is a single unsegmented blob, so token
// matching would miss words embedded mid-text.
type Denylist struct {
	words []string
}

// NewDenylist builds the filter from the embedded word list.
func NewDenylist() *Denylist {
	return NewDenylistFromWords(parseWords(wordsFile))
}

// NewDenylistFromWords builds a filter over an explicit word list.
// Words are normalized the same way candidates are.
func NewDenylistFromWords(words []string) *Denylist {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = canonical(w)
		if w != "" {
			normalized = append(normalized, w)
		}
	}
	return &Denylist{words: normalized}
}

// Disallowed reports whether candidate contains a listed word.
func (d *Denylist) Disallowed(candidate string) bool {
	c := canonical(candidate)
	for _, w := range d.words {
		if strings.Contains(c, w) {
			return true
		}
	}
	return false
}

// Words returns the normalized word list. Used for diagnostics and tests.
func (d *Denylist) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// canonical maps text to the form matching is performed in.
func canonical(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// parseWords reads one word per line, skipping blanks and # comments.
func parseWords(raw string) []string {
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words
}
