package engine

import (
	"errors"
	"log/slog"

	"github.com/olincollege/passwordgame/internal/rules"
	"github.com/olincollege/passwordgame/internal/seq"
)

// ErrSessionTerminated is returned by Append when the content filter flags
// the prospective text, or by any mutation after termination. Termination
// ends the game; the flagged edit is never committed.
var ErrSessionTerminated = errors.New("session terminated")

// State is the engine's evaluation state.
//
// Satisfied is always exactly the contiguous prefix [0, GateIndex) of
// catalog indices - never a sparse subset. Complete is true iff GateIndex
// equals the catalog length.
type State struct {
	GateIndex int   `json:"gate_index"`
	Satisfied []int `json:"satisfied"`
	Complete  bool  `json:"complete"`
}

// Filter vets a prospective password before an edit is committed.
//
// Implemented by profanity.Denylist in production; tests inject stubs.
// A nil filter allows everything.
type Filter interface {
	Disallowed(candidate string) bool
}

// Edit is one accepted mutation, as recorded in a session transcript.
type Edit struct {
	Seq       int64  `json:"seq"`
	Op        string `json:"op"`   // OpAppend or OpBackspace
	Char      string `json:"char"` // appended rune; empty for backspace
	GateIndex int    `json:"gate_index"`
	Satisfied int    `json:"satisfied"`
	Complete  bool   `json:"complete"`
}

// Edit operations.
const (
	OpAppend    = "append"
	OpBackspace = "backspace"
)

// Recorder receives accepted edits for transcript recording.
// Implemented by the SQLite transcript store.
type Recorder interface {
	RecordEdit(e Edit) error
}

// Session holds one game: the mutable password text, the fixed catalog and
// puzzle seed, and the evaluation state recomputed after every edit.
//
// INVARIANTS:
//   - catalog and puzzle never change after construction
//   - state is always the result of evaluating the current text
//   - a terminated session accepts no further edits
type Session struct {
	catalog *rules.Catalog
	puzzle  seq.Puzzle
	token   string
	clock   *Clock

	filter   Filter
	recorder Recorder

	text       []rune
	state      State
	terminated bool
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithFilter installs a content filter consulted before each append.
func WithFilter(f Filter) SessionOption {
	return func(s *Session) {
		s.filter = f
	}
}

// WithRecorder installs a transcript recorder for accepted edits.
func WithRecorder(r Recorder) SessionOption {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithTokenGenerator overrides the session token source.
// Tests use FixedGenerator for deterministic transcripts.
func WithTokenGenerator(g TokenGenerator) SessionOption {
	return func(s *Session) {
		s.token = g.Generate()
	}
}

// NewSession creates a session over a compiled catalog and puzzle seed.
//
// The initial state is the evaluation of the empty text: gate index 0,
// empty satisfied set, not complete.
func NewSession(catalog *rules.Catalog, puzzle seq.Puzzle, opts ...SessionOption) *Session {
	s := &Session{
		catalog: catalog,
		puzzle:  puzzle,
		token:   UUIDv7Generator{}.Generate(),
		clock:   NewClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = EvaluateText(catalog, puzzle, "")

	slog.Debug("session started",
		"session", s.token,
		"rules", catalog.Len(),
		"last_sequence", puzzle.Last,
	)
	return s
}

// EvaluateText walks the catalog in gating order against text and returns
// the resulting state.
//
// The walk stops at the first rule whose predicate fails; that rule's index
// becomes the gate index. If every predicate holds the gate index equals
// the catalog length. Pure function of (catalog, puzzle, text): no hidden
// state, fully re-derivable, safe to call on every keystroke.
func EvaluateText(catalog *rules.Catalog, puzzle seq.Puzzle, text string) State {
	st := State{Satisfied: []int{}}
	for i := 0; i < catalog.Len(); i++ {
		if !rules.Eval(catalog.Rule(i).Kind, text, puzzle) {
			break
		}
		st.Satisfied = append(st.Satisfied, i)
	}
	st.GateIndex = len(st.Satisfied)
	st.Complete = st.GateIndex == catalog.Len()
	return st
}

// Evaluate recomputes the session state from scratch against the current
// text and returns it. Idempotent: evaluating twice without an intervening
// edit yields identical state.
func (s *Session) Evaluate() State {
	s.state = EvaluateText(s.catalog, s.puzzle, string(s.text))
	return s.snapshotState()
}

// Allowed reports whether r may be typed into the password: letters,
// digits, and the printable ASCII punctuation characters. Space and
// control characters are excluded.
func Allowed(r rune) bool {
	return r >= '!' && r <= '~'
}

// Append commits r to the password if it is an allowed character.
//
// Runes outside the allowed set are silently ignored (returns false, nil).
// Before committing, the prospective text is shown to the content filter;
// a flagged edit terminates the session and is not committed. On success
// the state is recomputed and the edit lands in the transcript.
func (s *Session) Append(r rune) (bool, error) {
	if s.terminated {
		return false, ErrSessionTerminated
	}
	if !Allowed(r) {
		return false, nil
	}

	candidate := string(s.text) + string(r)
	if s.filter != nil && s.filter.Disallowed(candidate) {
		s.terminated = true
		slog.Info("content filter flagged edit, session over",
			"session", s.token,
			"seq", s.clock.Current(),
		)
		return false, ErrSessionTerminated
	}

	s.text = append(s.text, r)
	s.commit(OpAppend, string(r))
	return true, nil
}

// RemoveLast removes the final character of the password.
// No-op on an empty password or a terminated session.
func (s *Session) RemoveLast() bool {
	if s.terminated || len(s.text) == 0 {
		return false
	}
	s.text = s.text[:len(s.text)-1]
	s.commit(OpBackspace, "")
	return true
}

// commit stamps an accepted edit, recomputes the state, and records the
// edit. Recorder failures are logged and swallowed: a transcript gap must
// not interrupt play.
func (s *Session) commit(op, char string) {
	seqNum := s.clock.Next()
	st := s.Evaluate()

	slog.Debug("edit accepted",
		"session", s.token,
		"seq", seqNum,
		"op", op,
		"gate_index", st.GateIndex,
		"complete", st.Complete,
	)
	if st.Complete {
		slog.Info("all rules satisfied",
			"session", s.token,
			"seq", seqNum,
		)
	}

	if s.recorder != nil {
		edit := Edit{
			Seq:       seqNum,
			Op:        op,
			Char:      char,
			GateIndex: st.GateIndex,
			Satisfied: len(st.Satisfied),
			Complete:  st.Complete,
		}
		if err := s.recorder.RecordEdit(edit); err != nil {
			slog.Error("transcript write failed",
				"session", s.token,
				"seq", seqNum,
				"error", err,
			)
		}
	}
}

// Text returns the current password text.
func (s *Session) Text() string {
	return string(s.text)
}

// State returns a copy of the current evaluation state.
func (s *Session) State() State {
	return s.snapshotState()
}

// IsComplete reports whether every rule in the catalog is satisfied.
// Equivalent to State().Complete by invariant.
func (s *Session) IsComplete() bool {
	return s.state.GateIndex >= s.catalog.Len()
}

// Terminated reports whether the content filter ended the session.
func (s *Session) Terminated() bool {
	return s.terminated
}

// Messages returns the catalog messages in gating order, with the
// look-and-say message interpolated against the session puzzle.
func (s *Session) Messages() []string {
	return s.catalog.Messages(s.puzzle)
}

// Catalog returns the session's rule catalog.
func (s *Session) Catalog() *rules.Catalog {
	return s.catalog
}

// Puzzle returns the session's look-and-say seed pair.
func (s *Session) Puzzle() seq.Puzzle {
	return s.puzzle
}

// Token returns the session token.
func (s *Session) Token() string {
	return s.token
}

// Seq returns the number of accepted edits so far.
func (s *Session) Seq() int64 {
	return s.clock.Current()
}

// snapshotState copies the satisfied slice so callers cannot mutate the
// session's own state through the returned value.
func (s *Session) snapshotState() State {
	out := s.state
	out.Satisfied = make([]int, len(s.state.Satisfied))
	copy(out.Satisfied, s.state.Satisfied)
	return out
}
