package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olincollege/passwordgame/internal/store"
)

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "trace [session-token]",
		Short: "Inspect recorded game transcripts",
		Long: `Inspect the transcript database written by play --db.

Without arguments, lists recorded sessions. With a session token, prints
that session's edits in order: every accepted keystroke and backspace with
the gate index it produced.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if len(args) == 1 {
				token = args[0]
			}
			return runTrace(rootOpts, dbPath, token, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "transcript database path (required)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTrace(opts *RootOptions, dbPath, token string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(dbPath); err != nil {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("transcript database not found: %s", dbPath), nil)
		return NewExitError(ExitCommandError, "transcript database not found")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open transcript database", err)
	}
	defer st.Close()

	ctx := context.Background()
	if token == "" {
		return listSessions(ctx, formatter, st)
	}
	return printTranscript(ctx, formatter, st, token)
}

func listSessions(ctx context.Context, formatter *OutputFormatter, st *store.Store) error {
	sessions, err := st.ListSessions(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list sessions", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(sessions)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(formatter.Writer, "No recorded sessions.")
		return nil
	}
	for _, s := range sessions {
		fmt.Fprintf(formatter.Writer, "%s  %s  %3d edits  puzzle %s -> %s\n",
			s.Token, s.CreatedAt, s.Edits, s.LastSequence, s.NextSequence)
	}
	return nil
}

func printTranscript(ctx context.Context, formatter *OutputFormatter, st *store.Store, token string) error {
	edits, err := st.ReadTranscript(ctx, token)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "read transcript", err)
	}
	if len(edits) == 0 {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("no edits recorded for session %s", token), nil)
		return NewExitError(ExitCommandError, "empty transcript")
	}

	if formatter.Format == "json" {
		return formatter.Success(edits)
	}

	for _, e := range edits {
		char := e.Char
		if e.Op == "backspace" {
			char = "⌫"
		}
		fmt.Fprintf(formatter.Writer, "%4d  %-9s %-3s gate %2d  satisfied %2d  complete %t\n",
			e.Seq, e.Op, char, e.GateIndex, e.Satisfied, e.Complete)
	}
	return nil
}
