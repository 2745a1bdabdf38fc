package store

import (
	"context"
	"fmt"

	"github.com/olincollege/passwordgame/internal/engine"
)

// SessionRow summarizes one recorded session.
type SessionRow struct {
	Token        string `json:"token"`
	LastSequence string `json:"last_sequence"`
	NextSequence string `json:"next_sequence"`
	CreatedAt    string `json:"created_at"`
	Edits        int    `json:"edits"`
}

// ListSessions returns recorded sessions ordered by creation time, each
// with its edit count.
func (s *Store) ListSessions(ctx context.Context) ([]SessionRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT se.token, se.last_sequence, se.next_sequence, se.created_at,
		       COUNT(e.seq)
		FROM sessions se
		LEFT JOIN edits e ON e.session_token = se.token
		GROUP BY se.token
		ORDER BY se.created_at, se.token`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var r SessionRow
		if err := rows.Scan(&r.Token, &r.LastSequence, &r.NextSequence, &r.CreatedAt, &r.Edits); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ReadTranscript returns a session's edits in logical clock order.
func (s *Store) ReadTranscript(ctx context.Context, token string) ([]engine.Edit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, op, char, gate_index, satisfied, complete
		FROM edits
		WHERE session_token = ?
		ORDER BY seq`, token)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", token, err)
	}
	defer rows.Close()

	var out []engine.Edit
	for rows.Next() {
		var e engine.Edit
		if err := rows.Scan(&e.Seq, &e.Op, &e.Char, &e.GateIndex, &e.Satisfied, &e.Complete); err != nil {
			return nil, fmt.Errorf("scan edit row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
