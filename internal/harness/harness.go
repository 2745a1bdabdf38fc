package harness

import (
	"fmt"

	"github.com/olincollege/passwordgame/internal/compiler"
	"github.com/olincollege/passwordgame/internal/engine"
	"github.com/olincollege/passwordgame/internal/seq"
)

// Run executes a scenario against the default catalog and a puzzle pinned
// to the scenario's iteration count.
//
// The returned error covers setup and script problems (bad catalog, a rune
// the engine's allowed set rejects). Expectation mismatches do not error;
// they land in Result.Errors with Pass set to false, so a suite can report
// every failing clause at once.
func Run(sc *Scenario) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	catalog, err := compiler.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	puzzle := seq.NewPuzzle(seq.FixedSource(sc.Iterations))
	session := engine.NewSession(catalog, puzzle,
		engine.WithTokenGenerator(engine.NewFixedGenerator("scenario:"+sc.Name)),
	)

	result := NewResult()

	for i, step := range sc.Steps {
		for _, r := range step.Type {
			ok, err := session.Append(r)
			if err != nil {
				return nil, fmt.Errorf("step %d: append %q: %w", i, r, err)
			}
			if !ok {
				// Scenarios script real keystrokes; a rejected rune is a
				// script defect, not a gating case.
				return nil, fmt.Errorf("step %d: rune %q is outside the allowed set", i, r)
			}
			result.Trace = append(result.Trace, observe(session, engine.OpAppend, string(r)))
		}

		for n := 0; n < step.Backspace; n++ {
			if session.RemoveLast() {
				result.Trace = append(result.Trace, observe(session, engine.OpBackspace, ""))
			}
		}

		if step.Expect != nil {
			checkExpect(result, fmt.Sprintf("step %d", i), step.Expect, session)
		}
	}

	st := session.State()
	result.Final = FinalState{
		Text:      session.Text(),
		GateIndex: st.GateIndex,
		Complete:  st.Complete,
	}
	if sc.Final != nil {
		checkExpect(result, "final", sc.Final, session)
	}

	return result, nil
}

// observe captures the session state right after an accepted edit.
func observe(session *engine.Session, op, char string) TraceEvent {
	st := session.State()
	return TraceEvent{
		Seq:       session.Seq(),
		Op:        op,
		Char:      char,
		Text:      session.Text(),
		GateIndex: st.GateIndex,
		Satisfied: len(st.Satisfied),
		Complete:  st.Complete,
	}
}

// checkExpect validates one expect clause against the live session.
func checkExpect(result *Result, where string, expect *ExpectClause, session *engine.Session) {
	st := session.State()
	if expect.GateIndex != nil && st.GateIndex != *expect.GateIndex {
		result.AddError(fmt.Sprintf("%s: gate_index = %d, want %d (text %q)",
			where, st.GateIndex, *expect.GateIndex, session.Text()))
	}
	if expect.Complete != nil && st.Complete != *expect.Complete {
		result.AddError(fmt.Sprintf("%s: complete = %t, want %t (text %q)",
			where, st.Complete, *expect.Complete, session.Text()))
	}
}
