package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sequent/grammar"
	"sequent/internal/ir"
)

// GrammarCheck is the structured result of cross-checking a file.
type GrammarCheck struct {
	File        string `json:"file" yaml:"file"`
	Agrees      bool   `json:"agrees" yaml:"agrees"`
	Definitions int    `json:"definitions" yaml:"definitions"`
}

// NewGrammarCommand creates the grammar command.
func NewGrammarCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar [file]",
		Short: "Print the reference grammar, or cross-check a file against it",
		Long: `Without arguments, print the reference grammar as EBNF.

With a file, parse it with both the reference grammar and the compiler's
parser and report whether they produce the same program.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runGrammar(rootOpts, cmd)
			}
			return runGrammarCheck(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runGrammar(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	ebnf := grammar.EBNF()

	if opts.Format == "text" {
		fmt.Fprint(formatter.Writer, ebnf)
		if !strings.HasSuffix(ebnf, "\n") {
			fmt.Fprintln(formatter.Writer)
		}
		return nil
	}
	return formatter.Success(map[string]string{"ebnf": ebnf})
}

func runGrammarCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	data, err := os.ReadFile(path)
	if err != nil {
		return readFailure(formatter, WrapExitError(ExitCommandError, fmt.Sprintf("failed to read %s", path), err))
	}
	source := string(data)

	cst, err := grammar.ParseString(path, source)
	if err != nil {
		if opts.Format == "text" {
			fmt.Fprint(formatter.GetErrWriter(), grammar.FormatError(source, err))
		} else if encErr := formatter.Error("", err.Error(), nil); encErr != nil {
			return encErr
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%s is rejected by the reference grammar", path))
	}

	file, err := LoadFile(path)
	if err != nil {
		return readFailure(formatter, err)
	}
	if file.Failed() {
		return file.fail(formatter)
	}

	result := GrammarCheck{
		File:        path,
		Agrees:      ir.Print(file.Program) == ir.Print(cst.ToIR()),
		Definitions: len(file.Program),
	}
	log.Debugf("%s: reference grammar agrees: %t", path, result.Agrees)

	if opts.Format != "text" {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else if result.Agrees {
		color.New(color.FgGreen).Fprintf(formatter.Writer, "✓ %s agrees with the reference grammar (%d definition(s))\n", path, result.Definitions)
	} else {
		color.New(color.FgRed).Fprintf(formatter.Writer, "✗ %s is parsed differently by the reference grammar\n", path)
	}

	if !result.Agrees {
		return NewExitError(ExitFailure, fmt.Sprintf("parser and reference grammar disagree on %s", path))
	}
	return nil
}
