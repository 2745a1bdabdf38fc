package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/olincollege/passwordgame/internal/seq"
)

// TraceSnapshot is the serialized form compared against golden files.
// Field order is fixed by the struct, so the output is deterministic.
type TraceSnapshot struct {
	ScenarioName string       `json:"scenario_name"`
	Iterations   int          `json:"iterations"`
	Puzzle       seq.Puzzle   `json:"puzzle"`
	Trace        []TraceEvent `json:"trace"`
	Final        FinalState   `json:"final"`
}

// RunWithGolden executes a scenario and compares its trace against the
// golden file testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns an error if scenario execution itself fails; trace mismatches
// fail the test through goldie.
func RunWithGolden(t *testing.T, sc *Scenario) error {
	t.Helper()

	result, err := Run(sc)
	if err != nil {
		return err
	}

	snapshot := TraceSnapshot{
		ScenarioName: sc.Name,
		Iterations:   sc.Iterations,
		Puzzle:       seq.NewPuzzle(seq.FixedSource(sc.Iterations)),
		Trace:        result.Trace,
		Final:        result.Final,
	}

	data, err := marshalSnapshot(snapshot)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, sc.Name, data)

	return nil
}

// marshalSnapshot renders the snapshot as indented JSON with a trailing
// newline, the shape the golden fixtures are stored in.
func marshalSnapshot(s TraceSnapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
