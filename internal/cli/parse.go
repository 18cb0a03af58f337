package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sequent/internal/ir"
)

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its core IR",
		Long: `Parse a sequent source file and print the resulting core IR.

With --format text the program is printed back in surface syntax. With
--format json or --format yaml every node is dumped with its kind and byte
span.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runParse(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	file, err := LoadFile(path)
	if err != nil {
		return readFailure(formatter, err)
	}
	if file.Failed() {
		return file.fail(formatter)
	}

	if opts.Format == "text" {
		fmt.Fprint(formatter.Writer, ir.Print(file.Program))
		return nil
	}
	return formatter.Success(ir.Dump(file.Program))
}
