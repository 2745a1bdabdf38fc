package store

import (
	"context"
	"fmt"

	"github.com/olincollege/passwordgame/internal/engine"
	"github.com/olincollege/passwordgame/internal/seq"
)

// WriteSession records a session row: its token and puzzle pair.
// Must be called before the session's edits are recorded.
func (s *Store) WriteSession(ctx context.Context, token string, puzzle seq.Puzzle) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (token, last_sequence, next_sequence) VALUES (?, ?, ?)`,
		token, puzzle.Last, puzzle.Next,
	)
	if err != nil {
		return fmt.Errorf("write session %s: %w", token, err)
	}
	return nil
}

// WriteEdit records one accepted edit for a session.
// The (token, seq) pair is the primary key; writing the same seq twice
// for a session is an error, since the logical clock never repeats.
func (s *Store) WriteEdit(ctx context.Context, token string, e engine.Edit) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO edits (session_token, seq, op, char, gate_index, satisfied, complete)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		token, e.Seq, e.Op, e.Char, e.GateIndex, e.Satisfied, e.Complete,
	)
	if err != nil {
		return fmt.Errorf("write edit %s/%d: %w", token, e.Seq, err)
	}
	return nil
}

// SessionRecorder adapts a Store to the engine.Recorder interface for one
// session. The context is captured at construction because the engine's
// edit path is synchronous and has no context of its own.
type SessionRecorder struct {
	ctx   context.Context
	store *Store
	token string
}

// Recorder returns a recorder bound to the given session token.
func (s *Store) Recorder(ctx context.Context, token string) *SessionRecorder {
	return &SessionRecorder{ctx: ctx, store: s, token: token}
}

// RecordEdit implements engine.Recorder.
func (r *SessionRecorder) RecordEdit(e engine.Edit) error {
	return r.store.WriteEdit(r.ctx, r.token, e)
}
