package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olincollege/passwordgame/internal/seq"
)

// fixedPuzzle pins the look-and-say pair to (1211, 111221).
var fixedPuzzle = seq.NewPuzzle(seq.FixedSource(3))

func TestEval_MinLength(t *testing.T) {
	assert.False(t, Eval(KindMinLength, "", seq.Puzzle{}))
	assert.False(t, Eval(KindMinLength, "abcd", seq.Puzzle{}))
	assert.True(t, Eval(KindMinLength, "abcde", seq.Puzzle{}))
	// Rune count, not byte count.
	assert.True(t, Eval(KindMinLength, "héllo", seq.Puzzle{}))
}

func TestEval_Digit(t *testing.T) {
	assert.False(t, Eval(KindDigit, "abcde", seq.Puzzle{}))
	assert.True(t, Eval(KindDigit, "abc1", seq.Puzzle{}))
}

func TestEval_Uppercase(t *testing.T) {
	assert.False(t, Eval(KindUppercase, "abc1!", seq.Puzzle{}))
	assert.True(t, Eval(KindUppercase, "abC", seq.Puzzle{}))
}

func TestEval_Special(t *testing.T) {
	assert.False(t, Eval(KindSpecial, "abc123", seq.Puzzle{}))
	assert.True(t, Eval(KindSpecial, "abc!", seq.Puzzle{}))
	assert.True(t, Eval(KindSpecial, "a b", seq.Puzzle{}), "space is neither letter nor digit")
}

func TestEval_Fibonacci(t *testing.T) {
	assert.False(t, Eval(KindFibonacci, "abc", seq.Puzzle{}))
	assert.True(t, Eval(KindFibonacci, "abc13", seq.Puzzle{}))
	assert.True(t, Eval(KindFibonacci, "has a 1 somewhere", seq.Puzzle{}),
		"substring match on \"1\" succeeds on any text containing the digit")
	assert.True(t, Eval(KindFibonacci, "x987y", seq.Puzzle{}))
	// 4 and 6 are not Fibonacci numbers, but 46 contains no term either way.
	assert.False(t, Eval(KindFibonacci, "abc46", seq.Puzzle{}))
}

func TestEval_Morse(t *testing.T) {
	assert.False(t, Eval(KindMorse, "abc", seq.Puzzle{}))
	assert.True(t, Eval(KindMorse, "a.b", seq.Puzzle{}))
	assert.True(t, Eval(KindMorse, "a-b", seq.Puzzle{}))
}

func TestEval_Month(t *testing.T) {
	assert.False(t, Eval(KindMonth, "abc", seq.Puzzle{}))
	assert.True(t, Eval(KindMonth, "xmayz", seq.Puzzle{}))
	assert.True(t, Eval(KindMonth, "DECEMBERfest", seq.Puzzle{}), "matching is case-insensitive")
	assert.False(t, Eval(KindMonth, "jan", seq.Puzzle{}), "abbreviations do not count")
}

func TestEval_LookAndSay(t *testing.T) {
	assert.True(t, Eval(KindLookAndSay, "x111221y", fixedPuzzle))
	assert.False(t, Eval(KindLookAndSay, "x1211y", fixedPuzzle), "Last is not the answer")
	assert.False(t, Eval(KindLookAndSay, "anything", seq.Puzzle{}),
		"an unseeded puzzle never matches")
	assert.False(t, Eval(KindLookAndSay, "", seq.Puzzle{}))
}

func TestEval_Roman(t *testing.T) {
	assert.False(t, Eval(KindRoman, "abc", seq.Puzzle{}))
	assert.False(t, Eval(KindRoman, "xvi", seq.Puzzle{}), "matching is case-sensitive")
	for _, letter := range []string{"I", "V", "X", "L", "C", "D", "M"} {
		assert.True(t, Eval(KindRoman, "ab"+letter, seq.Puzzle{}), "letter %s", letter)
	}
}

func TestEval_DigitSumPrime(t *testing.T) {
	assert.False(t, Eval(KindDigitSumPrime, "abc", seq.Puzzle{}), "no digits sums to zero, which is not prime")
	assert.False(t, Eval(KindDigitSumPrime, "a1", seq.Puzzle{}), "one is not prime")
	assert.True(t, Eval(KindDigitSumPrime, "a2", seq.Puzzle{}))
	// 9+7+8+9+7+7 = 47, prime.
	assert.True(t, Eval(KindDigitSumPrime, "abc978977", seq.Puzzle{}))
	// 1+2+3 = 6, not prime.
	assert.False(t, Eval(KindDigitSumPrime, "123", seq.Puzzle{}))
}

func TestEval_Sicilian(t *testing.T) {
	assert.False(t, Eval(KindSicilian, "e4", seq.Puzzle{}))
	assert.False(t, Eval(KindSicilian, "C5", seq.Puzzle{}), "matching is case-sensitive")
	assert.True(t, Eval(KindSicilian, "xc5y", seq.Puzzle{}))
}

func TestEval_UnknownKindIsFalse(t *testing.T) {
	assert.False(t, Eval(Kind("bogus"), "anything at all", fixedPuzzle))
}

func TestEval_TotalOverArbitraryText(t *testing.T) {
	// Every kind must evaluate without panicking on hostile inputs.
	inputs := []string{"", "\x00", "héllo wörld", "日本語テキスト", "🙂🙃", "a\nb\tc"}
	for kind := range ValidKinds {
		for _, in := range inputs {
			assert.NotPanics(t, func() { Eval(kind, in, fixedPuzzle) }, "kind=%s input=%q", kind, in)
		}
	}
}

func TestRenderMessage(t *testing.T) {
	las := Rule{ID: "look-and-say", Kind: KindLookAndSay, Message: "Enter the next sequence in Look-and-Say after {last}."}
	assert.Equal(t, "Enter the next sequence in Look-and-Say after 1211.", RenderMessage(las, fixedPuzzle))

	static := Rule{ID: "digit", Kind: KindDigit, Message: "Password must include a number."}
	assert.Equal(t, static.Message, RenderMessage(static, fixedPuzzle),
		"static messages pass through untouched")
}

func validRules() []Rule {
	return []Rule{
		{ID: "min-length", Kind: KindMinLength, Message: "at least 5"},
		{ID: "look-and-say", Kind: KindLookAndSay, Message: "next after {last}"},
		{ID: "sicilian", Kind: KindSicilian, Message: "respond to e4"},
	}
}

func TestNewCatalog_PreservesOrder(t *testing.T) {
	c, err := NewCatalog(validRules())
	require.NoError(t, err)
	require.Equal(t, 3, c.Len())
	assert.Equal(t, "min-length", c.Rule(0).ID)
	assert.Equal(t, "look-and-say", c.Rule(1).ID)
	assert.Equal(t, "sicilian", c.Rule(2).ID)
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	list := validRules()
	c, err := NewCatalog(list)
	require.NoError(t, err)

	list[0].ID = "mutated"
	assert.Equal(t, "min-length", c.Rule(0).ID, "catalog must not share the caller's slice")

	got := c.Rules()
	got[0].ID = "mutated again"
	assert.Equal(t, "min-length", c.Rule(0).ID, "Rules must return a copy")
}

func TestNewCatalog_Rejections(t *testing.T) {
	testCases := []struct {
		name string
		list []Rule
	}{
		{"empty catalog", nil},
		{"missing id", []Rule{{Kind: KindLookAndSay, Message: "m"}}},
		{"duplicate id", []Rule{
			{ID: "a", Kind: KindLookAndSay, Message: "m"},
			{ID: "a", Kind: KindDigit, Message: "m"},
		}},
		{"unknown kind", []Rule{
			{ID: "a", Kind: KindLookAndSay, Message: "m"},
			{ID: "b", Kind: Kind("bogus"), Message: "m"},
		}},
		{"empty message", []Rule{
			{ID: "a", Kind: KindLookAndSay, Message: ""},
		}},
		{"no look-and-say rule", []Rule{
			{ID: "a", Kind: KindDigit, Message: "m"},
		}},
		{"two look-and-say rules", []Rule{
			{ID: "a", Kind: KindLookAndSay, Message: "m"},
			{ID: "b", Kind: KindLookAndSay, Message: "m"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.list)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_Messages(t *testing.T) {
	c, err := NewCatalog(validRules())
	require.NoError(t, err)

	msgs := c.Messages(fixedPuzzle)
	require.Len(t, msgs, 3)
	assert.Equal(t, "at least 5", msgs[0])
	assert.Equal(t, "next after 1211", msgs[1])
	assert.Equal(t, "respond to e4", msgs[2])
}
