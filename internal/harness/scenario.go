package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/olincollege/passwordgame/internal/seq"
)

// Scenario defines a conformance test scenario for the rule engine.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Iterations is the fixed look-and-say iteration count, pinning the
	// puzzle pair so traces are deterministic. Must be within the
	// engine's [seq.MinIterations, seq.MaxIterations] range.
	Iterations int `yaml:"iterations"`

	// Steps is the keystroke script. Steps run in order; a step may type
	// text, press backspace, and assert on the state afterwards.
	Steps []Step `yaml:"steps,omitempty"`

	// Final asserts on the state after the last step.
	Final *ExpectClause `yaml:"final,omitempty"`
}

// Step is one scripted action. Fields apply in order: Type, then
// Backspace, then Expect.
type Step struct {
	// Type appends each rune of the string to the password.
	Type string `yaml:"type,omitempty"`

	// Backspace removes the last character this many times.
	Backspace int `yaml:"backspace,omitempty"`

	// Expect asserts on the state after the step's edits.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause asserts on engine state. Nil fields are not checked.
type ExpectClause struct {
	GateIndex *int  `yaml:"gate_index,omitempty"`
	Complete  *bool `yaml:"complete,omitempty"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

// LoadScenarios reads every *.yaml scenario in a directory, sorted by
// filename so suites run in a stable order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("scan scenarios %s: %w", dir, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	sort.Strings(paths)

	out := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

// Validate checks scenario invariants before execution.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return fmt.Errorf("name is required")
	}
	if sc.Iterations < seq.MinIterations || sc.Iterations > seq.MaxIterations {
		return fmt.Errorf("iterations must be in [%d, %d], got %d",
			seq.MinIterations, seq.MaxIterations, sc.Iterations)
	}
	return nil
}
