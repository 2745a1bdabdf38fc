// Package engine implements the rule-gating engine behind the password game.
//
// A Session owns the mutable password text, the compiled rule catalog, and
// the session's look-and-say puzzle seed. Input collaborators mutate the
// text through Append and RemoveLast; the render collaborator reads state
// through the accessors. The catalog and puzzle are fixed at session start
// and never change afterwards.
//
// ARCHITECTURE:
//
// Sequential gate evaluation:
// Rules are walked in catalog order. The walk stops at the first rule whose
// predicate fails; the satisfied set is therefore always the contiguous
// prefix [0, GateIndex). A later rule that would pass on its own does not
// count until everything before it passes too.
//
// Full recompute per edit:
// Every accepted edit recomputes the whole state from scratch. There is no
// incremental update and no cached per-rule state, so there is no stale
// cache to invalidate. The catalog is small and edits are keystroke-paced;
// the simplicity is worth far more than the saved work.
//
// Single-owner threading:
// All mutation and evaluation happen synchronously on the caller's
// goroutine. One goroutine must own a Session; cross-goroutine access
// requires external synchronization. Evaluation has no suspension points
// and always terminates - cost is linear in text length times catalog size.
//
// CRITICAL PATTERNS:
//
// Logical clock:
// Accepted edits are stamped with a monotonic seq counter, never wall-clock
// time, so transcripts order identically on every run.
//
// Deterministic evaluation:
// Rule order never changes after construction. EvaluateText is a pure
// function of (catalog, puzzle, text) - no randomness, no hidden state.
package engine
