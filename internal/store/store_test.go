package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olincollege/passwordgame/internal/engine"
	"github.com/olincollege/passwordgame/internal/seq"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Reopening an existing file must be idempotent.
	s, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}

func TestWriteAndReadTranscript(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	puzzle := seq.NewPuzzle(seq.FixedSource(3))

	require.NoError(t, s.WriteSession(ctx, "session-1", puzzle))

	edits := []engine.Edit{
		{Seq: 1, Op: engine.OpAppend, Char: "a", GateIndex: 0, Satisfied: 0},
		{Seq: 2, Op: engine.OpAppend, Char: "b", GateIndex: 0, Satisfied: 0},
		{Seq: 3, Op: engine.OpBackspace, Char: "", GateIndex: 0, Satisfied: 0},
	}
	for _, e := range edits {
		require.NoError(t, s.WriteEdit(ctx, "session-1", e))
	}

	got, err := s.ReadTranscript(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, edits, got)
}

func TestWriteEdit_DuplicateSeqRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.WriteSession(ctx, "session-1", seq.NewPuzzle(seq.FixedSource(3))))
	require.NoError(t, s.WriteEdit(ctx, "session-1", engine.Edit{Seq: 1, Op: engine.OpAppend, Char: "a"}))

	err := s.WriteEdit(ctx, "session-1", engine.Edit{Seq: 1, Op: engine.OpAppend, Char: "b"})
	assert.Error(t, err, "the logical clock never repeats, so a duplicate seq is a defect")
}

func TestListSessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	puzzle := seq.NewPuzzle(seq.FixedSource(4))

	require.NoError(t, s.WriteSession(ctx, "session-1", puzzle))
	require.NoError(t, s.WriteSession(ctx, "session-2", puzzle))
	require.NoError(t, s.WriteEdit(ctx, "session-1", engine.Edit{Seq: 1, Op: engine.OpAppend, Char: "x"}))

	sessions, err := s.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	byToken := map[string]SessionRow{}
	for _, row := range sessions {
		byToken[row.Token] = row
	}
	assert.Equal(t, 1, byToken["session-1"].Edits)
	assert.Equal(t, 0, byToken["session-2"].Edits)
	assert.Equal(t, "111221", byToken["session-1"].LastSequence)
	assert.Equal(t, "312211", byToken["session-1"].NextSequence)
}

func TestSessionRecorder_ImplementsEngineRecorder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.WriteSession(ctx, "session-1", seq.NewPuzzle(seq.FixedSource(3))))

	var rec engine.Recorder = s.Recorder(ctx, "session-1")
	require.NoError(t, rec.RecordEdit(engine.Edit{Seq: 1, Op: engine.OpAppend, Char: "a"}))

	got, err := s.ReadTranscript(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Char)
}
