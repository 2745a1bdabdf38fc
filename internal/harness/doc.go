// Package harness runs conformance scenarios against the rule engine.
//
// A scenario scripts a session: a fixed look-and-say iteration count (so
// the puzzle pair is deterministic), a list of keystroke steps with
// optional expectations, and a final expected state. Running a scenario
// produces a trace of every accepted edit, which golden tests compare
// byte-for-byte against testdata/golden fixtures.
//
// Scenarios live in testdata/scenarios as YAML files so new gating cases
// can be added without touching Go code.
package harness
