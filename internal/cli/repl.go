package cli

import (
	"github.com/spf13/cobra"

	"sequent/repl"
)

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse definitions read interactively from standard input",
		Long: `Read definitions line by line and print each parsed program.

A definition that is not finished at the end of a line continues on the next
one. An empty line abandons an unfinished definition and reports it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug("starting repl")
			if err := repl.Start(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return WrapExitError(ExitCommandError, "failed to read input", err)
			}
			return nil
		},
	}

	return cmd
}
