package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olincollege/passwordgame/internal/seq"
)

// RuleListing is one catalog entry as printed by the rules command.
type RuleListing struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		rulesDir   string
		iterations int
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the rule catalog in gating order",
		Long: `Print the rule catalog in gating order, as the player would see it.

The look-and-say message embeds the session's prior term; pass --iterations
to render it against a pinned puzzle instead of the {last} placeholder.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRules(rootOpts, rulesDir, iterations, cmd)
		},
	}

	cmd.Flags().StringVar(&rulesDir, "rules-dir", "", "directory of CUE rule declarations (default: embedded catalog)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, fmt.Sprintf("render messages against a pinned puzzle (%d-%d)", seq.MinIterations, seq.MaxIterations))

	return cmd
}

func runRules(opts *RootOptions, rulesDir string, iterations int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	catalog, err := resolveCatalog(formatter, rulesDir)
	if err != nil {
		return err
	}

	// Without a pinned puzzle the raw declaration is shown, placeholder
	// and all, which is what a catalog author wants to inspect.
	messages := make([]string, catalog.Len())
	for i := range messages {
		messages[i] = catalog.Rule(i).Message
	}
	if iterations != 0 {
		messages = catalog.Messages(seq.NewPuzzle(seq.FixedSource(iterations)))
	}

	if formatter.Format == "json" {
		listings := make([]RuleListing, catalog.Len())
		for i := range listings {
			r := catalog.Rule(i)
			listings[i] = RuleListing{ID: r.ID, Kind: string(r.Kind), Message: messages[i]}
		}
		return formatter.Success(listings)
	}

	for i, msg := range messages {
		fmt.Fprintf(formatter.Writer, "%2d. %s\n", i+1, msg)
	}
	return nil
}
