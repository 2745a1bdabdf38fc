package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olincollege/passwordgame/internal/engine"
	"github.com/olincollege/passwordgame/internal/profanity"
	"github.com/olincollege/passwordgame/internal/seq"
	"github.com/olincollege/passwordgame/internal/store"
	"github.com/olincollege/passwordgame/internal/tui"
)

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		rulesDir   string
		dbPath     string
		iterations int
		randSeed   int64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the password game interactively",
		Long: `Play the password game in a full-screen terminal session.

Type to build your password; every keystroke is re-evaluated against the
catalog and the next unmet rule is revealed. The game ends when every rule
is satisfied, or immediately if the content filter flags your password.

Each session's edits are recorded as a transcript. By default it lives in
memory and vanishes at exit; pass --db to keep it for later inspection
with the trace command.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(rootOpts, rulesDir, dbPath, iterations, randSeed, cmd)
		},
	}

	cmd.Flags().StringVar(&rulesDir, "rules-dir", "", "directory of CUE rule declarations (default: embedded catalog)")
	cmd.Flags().StringVar(&dbPath, "db", store.InMemory, "transcript database path")
	cmd.Flags().IntVar(&iterations, "iterations", 0, fmt.Sprintf("pin the look-and-say iteration count (%d-%d)", seq.MinIterations, seq.MaxIterations))
	cmd.Flags().Int64Var(&randSeed, "seed", 0, "random seed for the puzzle (0 = wall clock)")

	return cmd
}

func runPlay(opts *RootOptions, rulesDir, dbPath string, iterations int, randSeed int64, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	session, st, err := newPlaySession(formatter, rulesDir, dbPath, iterations, randSeed)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := tui.Run(session); err != nil {
		_ = formatter.Error(ErrCodeGeneric, fmt.Sprintf("terminal UI failed: %v", err), nil)
		return WrapExitError(ExitCommandError, "terminal UI", err)
	}

	return reportOutcome(formatter, session, dbPath)
}

// newPlaySession wires one interactive game: catalog, puzzle, content
// filter, and a transcript recorder bound to a fresh session row.
func newPlaySession(formatter *OutputFormatter, rulesDir, dbPath string, iterations int, randSeed int64) (*engine.Session, *store.Store, error) {
	catalog, err := resolveCatalog(formatter, rulesDir)
	if err != nil {
		return nil, nil, err
	}
	puzzle := resolvePuzzle(iterations, randSeed)

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("open transcript database: %v", err), nil)
		return nil, nil, WrapExitError(ExitCommandError, "open transcript database", err)
	}

	// The recorder is bound to the session token, so mint the token first
	// and hand it to the session through a fixed generator.
	ctx := context.Background()
	token := engine.UUIDv7Generator{}.Generate()
	if err := st.WriteSession(ctx, token, puzzle); err != nil {
		st.Close()
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return nil, nil, WrapExitError(ExitCommandError, "record session", err)
	}

	session := engine.NewSession(catalog, puzzle,
		engine.WithTokenGenerator(engine.NewFixedGenerator(token)),
		engine.WithFilter(profanity.NewDenylist()),
		engine.WithRecorder(st.Recorder(ctx, token)),
	)
	return session, st, nil
}

// reportOutcome prints the end-of-game summary after the TUI exits.
func reportOutcome(formatter *OutputFormatter, session *engine.Session, dbPath string) error {
	state := session.State()

	type outcome struct {
		Token     string `json:"token"`
		Text      string `json:"text"`
		GateIndex int    `json:"gate_index"`
		Complete  bool   `json:"complete"`
		Flagged   bool   `json:"flagged"`
		Edits     int64  `json:"edits"`
	}
	out := outcome{
		Token:     session.Token(),
		Text:      session.Text(),
		GateIndex: state.GateIndex,
		Complete:  state.Complete,
		Flagged:   session.Terminated(),
		Edits:     session.Seq(),
	}

	if formatter.Format == "json" {
		if err := formatter.Success(out); err != nil {
			return err
		}
	} else {
		switch {
		case out.Flagged:
			fmt.Fprintln(formatter.Writer, "✗ Game over: the content filter flagged your password.")
		case out.Complete:
			fmt.Fprintf(formatter.Writer, "✓ %q satisfies all rules in %d edits. Session %s.\n",
				out.Text, out.Edits, out.Token)
		default:
			fmt.Fprintf(formatter.Writer, "Stopped at rule %d after %d edits. Session %s.\n",
				out.GateIndex+1, out.Edits, out.Token)
		}
		if dbPath != store.InMemory {
			fmt.Fprintf(formatter.Writer, "Transcript: passwordgame trace --db %s %s\n", dbPath, out.Token)
		}
	}

	if out.Flagged || !out.Complete {
		return NewExitError(ExitFailure, "game not won")
	}
	return nil
}
