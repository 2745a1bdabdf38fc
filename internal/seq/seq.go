// Package seq implements the look-and-say sequence and the per-session
// puzzle seed derived from it.
//
// Each session generates a puzzle pair once at startup: a term of the
// look-and-say sequence reached after a random number of steps (Last), and
// the term one step further (Next). The look-and-say rule asks the player
// to type Next, showing them Last. The pair is fixed for the lifetime of
// the session; only Step is exercised per evaluation, and Step itself is
// deterministic, so randomness affects puzzle variety, never correctness.
package seq

import (
	"math/rand"
	"strconv"
	"strings"
)

// Iteration bounds for the session seed. Fewer than three steps makes the
// answer guessable from the prompt; more than six makes it tedious to
// compute by hand.
const (
	MinIterations = 3
	MaxIterations = 6
)

// Step returns the next term of the look-and-say sequence.
//
// The input is scanned left to right, grouping maximal runs of identical
// characters; each run is emitted as its length in decimal digits followed
// by the run's character.
//
//	Step("1")    == "11"
//	Step("11")   == "21"
//	Step("21")   == "1211"
//	Step("1211") == "111221"
//
// Deterministic and total over any non-empty digit string. The generator
// is only ever invoked starting from "1", so terms are always ASCII digits
// and byte indexing is safe.
func Step(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		j := i
		for j < len(s) && s[j] == s[i] {
			j++
		}
		b.WriteString(strconv.Itoa(j - i))
		b.WriteByte(s[i])
		i = j
	}
	return b.String()
}

// Puzzle is the session-specific look-and-say pair.
//
// Last is shown to the player in the rule message; Next is the answer the
// rule matches as a substring. Next is always Step(Last).
type Puzzle struct {
	Last string `json:"last"`
	Next string `json:"next"`
}

// Seeded reports whether the puzzle carries a generated pair.
// The zero Puzzle is unseeded and must never satisfy the look-and-say rule.
func (p Puzzle) Seeded() bool {
	return p.Next != ""
}

// IterationSource supplies the number of look-and-say steps for a session.
// Implemented by RandSource (production) and FixedSource (tests).
type IterationSource interface {
	Iterations() int
}

// RandSource draws an iteration count uniformly from
// [MinIterations, MaxIterations].
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource creates a source backed by its own rand.Rand so sessions
// with the same seed produce the same puzzle.
func NewRandSource(seed int64) RandSource {
	return RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Iterations returns a uniform draw from [MinIterations, MaxIterations].
func (s RandSource) Iterations() int {
	return MinIterations + s.rng.Intn(MaxIterations-MinIterations+1)
}

// FixedSource always returns the same iteration count.
//
// Tests use it to pin the puzzle pair and assert exact Last/Next values.
type FixedSource int

// Iterations returns the fixed count.
func (s FixedSource) Iterations() int {
	return int(s)
}

// NewPuzzle derives the session puzzle: Step applied src.Iterations() times
// starting from "1" yields Last, one further application yields Next.
//
// Counts outside [MinIterations, MaxIterations] are clamped so an
// out-of-range source cannot produce a degenerate puzzle.
func NewPuzzle(src IterationSource) Puzzle {
	n := src.Iterations()
	if n < MinIterations {
		n = MinIterations
	}
	if n > MaxIterations {
		n = MaxIterations
	}

	last := "1"
	for i := 0; i < n; i++ {
		last = Step(last)
	}
	return Puzzle{Last: last, Next: Step(last)}
}
