// Package rules defines the password rule catalog: the rule kinds, their
// predicates, and the ordered catalog the engine gates against.
//
// Rules are plain data (ID, Kind, Message) rather than closures. The one
// rule that depends on session state, look_and_say, receives the puzzle
// seed explicitly through Eval, which keeps every predicate a pure function
// of its arguments and lets tests inject a known seed.
//
// Every predicate is total over arbitrary Unicode text, including the empty
// string. Predicates never mutate shared state and never fail.
package rules

import (
	"strings"
	"unicode"

	"github.com/olincollege/passwordgame/internal/prime"
	"github.com/olincollege/passwordgame/internal/seq"
)

// Kind identifies a rule predicate. Kinds are the vocabulary catalog
// declarations are written in.
type Kind string

// The eleven rule kinds, listed in the default gating order.
const (
	KindMinLength     Kind = "min_length"      // text is at least MinLength runes
	KindDigit         Kind = "digit"           // contains a decimal digit
	KindUppercase     Kind = "uppercase"       // contains an uppercase letter
	KindSpecial       Kind = "special"         // contains a non-letter, non-digit rune
	KindFibonacci     Kind = "fibonacci"       // contains a Fibonacci number as a substring
	KindMorse         Kind = "morse"           // contains '.' or '-'
	KindMonth         Kind = "month"           // contains an English month name, case-insensitive
	KindLookAndSay    Kind = "look_and_say"    // contains the session's next look-and-say term
	KindRoman         Kind = "roman"           // contains an uppercase Roman numeral letter
	KindDigitSumPrime Kind = "digit_sum_prime" // digit sum is prime
	KindSicilian      Kind = "sicilian"        // contains the literal "c5"
)

// ValidKinds is the set of kinds a catalog declaration may use.
var ValidKinds = map[Kind]bool{
	KindMinLength:     true,
	KindDigit:         true,
	KindUppercase:     true,
	KindSpecial:       true,
	KindFibonacci:     true,
	KindMorse:         true,
	KindMonth:         true,
	KindLookAndSay:    true,
	KindRoman:         true,
	KindDigitSumPrime: true,
	KindSicilian:      true,
}

// MinLength is the rune count required by the min_length rule.
const MinLength = 5

// Rule pairs a predicate kind with the message shown to the player.
// Rules are immutable once compiled into a Catalog.
type Rule struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// MessagePlaceholder is the token in a look_and_say rule message that is
// replaced with the session's last look-and-say term at render time.
const MessagePlaceholder = "{last}"

// RenderMessage returns the display message for r. For the look_and_say
// rule the placeholder is interpolated with the puzzle's Last term so the
// player can compute the expected answer; all other messages are fixed.
func RenderMessage(r Rule, p seq.Puzzle) string {
	if r.Kind == KindLookAndSay {
		return strings.ReplaceAll(r.Message, MessagePlaceholder, p.Last)
	}
	return r.Message
}

// fibonacciTerms holds the decimal forms matched by the fibonacci rule.
// 1 appears once despite being a double Fibonacci term; a substring match
// on "1" already succeeds on any text containing that digit.
var fibonacciTerms = []string{
	"0", "1", "2", "3", "5", "8", "13", "21", "34", "55",
	"89", "144", "233", "377", "610", "987",
}

// monthNames are the full English month names, matched case-insensitively.
var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// romanLetters are the uppercase Roman numeral letters. Matching is
// case-sensitive: "x" does not count.
const romanLetters = "IVXLCDM"

// sicilianReply is the chess reply to e4 matched by the sicilian rule.
const sicilianReply = "c5"

// Eval reports whether text satisfies the predicate for kind.
//
// The puzzle seed is only consulted by look_and_say; passing the zero
// Puzzle to any other kind is fine. Unknown kinds evaluate to false so a
// miscompiled catalog can never be won by accident.
func Eval(kind Kind, text string, puzzle seq.Puzzle) bool {
	switch kind {
	case KindMinLength:
		return runeCount(text) >= MinLength

	case KindDigit:
		return strings.ContainsFunc(text, unicode.IsDigit)

	case KindUppercase:
		return strings.ContainsFunc(text, unicode.IsUpper)

	case KindSpecial:
		return strings.ContainsFunc(text, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})

	case KindFibonacci:
		for _, term := range fibonacciTerms {
			if strings.Contains(text, term) {
				return true
			}
		}
		return false

	case KindMorse:
		return strings.ContainsAny(text, ".-")

	case KindMonth:
		lower := strings.ToLower(text)
		for _, month := range monthNames {
			if strings.Contains(lower, month) {
				return true
			}
		}
		return false

	case KindLookAndSay:
		// Contains on the empty string is vacuously true, so an unseeded
		// puzzle must never pass.
		return puzzle.Seeded() && strings.Contains(text, puzzle.Next)

	case KindRoman:
		return strings.ContainsAny(text, romanLetters)

	case KindDigitSumPrime:
		// Zero and one are not prime, so a text with no digits fails.
		sum := 0
		for _, r := range text {
			if r >= '0' && r <= '9' {
				sum += int(r - '0')
			}
		}
		return prime.IsPrime(sum)

	case KindSicilian:
		return strings.Contains(text, sicilianReply)

	default:
		return false
	}
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
