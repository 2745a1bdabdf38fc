package profanity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDenylist_EmbeddedListLoads(t *testing.T) {
	d := NewDenylist()
	require.NotEmpty(t, d.Words())
}

func TestDenylist_Disallowed(t *testing.T) {
	d := NewDenylistFromWords([]string{"grawlix", "Zounds"})

	assert.True(t, d.Disallowed("xxgrawlixyy"), "substring match")
	assert.True(t, d.Disallowed("GRAWLIX"), "case-insensitive")
	assert.True(t, d.Disallowed("zounds123"), "list entries are normalized too")
	assert.False(t, d.Disallowed("perfectly fine"))
	assert.False(t, d.Disallowed(""))
}

func TestDenylist_NormalizesCandidates(t *testing.T) {
	// List entry uses the precomposed e-acute; the candidate decomposes it
	// into e + combining acute. NFC normalization must line them up.
	d := NewDenylistFromWords([]string{"caf\u00e9"})
	assert.True(t, d.Disallowed("one cafe\u0301 please"))
}

func TestDenylist_SkipsCommentsAndBlanks(t *testing.T) {
	words := parseWords("# comment\n\nalpha\n  beta  \n# trailing\n")
	assert.Equal(t, []string{"alpha", "beta"}, words)
}
