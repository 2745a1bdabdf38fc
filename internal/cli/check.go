package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olincollege/passwordgame/internal/engine"
	"github.com/olincollege/passwordgame/internal/seq"
)

// RuleStatus is one rule's standing against a checked password.
type RuleStatus struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Satisfied bool   `json:"satisfied"`
	Gate      bool   `json:"gate,omitempty"` // the first unsatisfied rule
}

// CheckResult holds the full evaluation of one password.
type CheckResult struct {
	Password  string       `json:"password"`
	GateIndex int          `json:"gate_index"`
	Complete  bool         `json:"complete"`
	Puzzle    seq.Puzzle   `json:"puzzle"`
	Rules     []RuleStatus `json:"rules"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		rulesDir   string
		iterations int
		randSeed   int64
	)

	cmd := &cobra.Command{
		Use:   "check <password>",
		Short: "Evaluate a password against the rule catalog",
		Long: `Evaluate a password against the rule catalog in one shot, without the
interactive game. Prints each rule's standing and exits 0 only when every
rule is satisfied.

The look-and-say rule depends on the session puzzle; pin it with
--iterations (or --seed) to check against a known pair.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], rulesDir, iterations, randSeed, cmd)
		},
	}

	cmd.Flags().StringVar(&rulesDir, "rules-dir", "", "directory of CUE rule declarations (default: embedded catalog)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, fmt.Sprintf("pin the look-and-say iteration count (%d-%d)", seq.MinIterations, seq.MaxIterations))
	cmd.Flags().Int64Var(&randSeed, "seed", 0, "random seed for the puzzle (0 = wall clock)")

	return cmd
}

func runCheck(opts *RootOptions, password, rulesDir string, iterations int, randSeed int64, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	for _, r := range password {
		if !engine.Allowed(r) {
			_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("password contains disallowed character %q", r), nil)
			return NewExitError(ExitCommandError, fmt.Sprintf("disallowed character %q", r))
		}
	}

	catalog, err := resolveCatalog(formatter, rulesDir)
	if err != nil {
		return err
	}
	puzzle := resolvePuzzle(iterations, randSeed)
	formatter.VerboseLog("puzzle: last %s, next %s", puzzle.Last, puzzle.Next)

	state := engine.EvaluateText(catalog, puzzle, password)

	result := CheckResult{
		Password:  password,
		GateIndex: state.GateIndex,
		Complete:  state.Complete,
		Puzzle:    puzzle,
		Rules:     make([]RuleStatus, 0, catalog.Len()),
	}
	for i, msg := range catalog.Messages(puzzle) {
		result.Rules = append(result.Rules, RuleStatus{
			ID:        catalog.Rule(i).ID,
			Message:   msg,
			Satisfied: i < state.GateIndex,
			Gate:      i == state.GateIndex,
		})
	}

	if formatter.Format == "json" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		printCheckText(formatter, result)
	}

	if !state.Complete {
		return NewExitError(ExitFailure,
			fmt.Sprintf("password satisfies %d of %d rules", state.GateIndex, catalog.Len()))
	}
	return nil
}

func printCheckText(formatter *OutputFormatter, result CheckResult) {
	for i, rs := range result.Rules {
		mark := " "
		switch {
		case rs.Satisfied:
			mark = "✓"
		case rs.Gate:
			mark = "✗"
		}
		fmt.Fprintf(formatter.Writer, "%s %2d. %s\n", mark, i+1, rs.Message)
	}
	fmt.Fprintln(formatter.Writer)
	if result.Complete {
		fmt.Fprintf(formatter.Writer, "✓ %q satisfies all %d rules\n", result.Password, len(result.Rules))
	} else {
		fmt.Fprintf(formatter.Writer, "✗ %q satisfies %d of %d rules\n", result.Password, result.GateIndex, len(result.Rules))
	}
}
