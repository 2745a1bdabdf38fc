// Package store provides the SQLite transcript log for game sessions.
//
// Each session writes one sessions row (token and puzzle pair) and one
// edits row per accepted edit, stamped with the session's logical clock.
// The transcript is an audit log of keystrokes, not resumable game state:
// nothing reads it back into a live session. In-memory databases are the
// default; passing a file path keeps the transcript around for the trace
// command.
//
// SQLite is configured single-writer (one connection), which matches the
// engine's single-owner session model.
package store
