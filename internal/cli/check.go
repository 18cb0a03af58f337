package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CheckResult is the outcome of checking one file.
type CheckResult struct {
	File        string       `json:"file" yaml:"file"`
	Valid       bool         `json:"valid" yaml:"valid"`
	Definitions int          `json:"definitions" yaml:"definitions"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check files for syntax errors",
		Long: `Parse every file and report diagnostics.

The command exits with status 1 if any file has errors and with status 2 if a
file cannot be read.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runCheck(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	results, err := checkFiles(formatter, paths)
	if err != nil {
		return readFailure(formatter, err)
	}

	failed, err := reportCheck(formatter, results)
	if err != nil {
		return err
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d file(s) have errors", failed, len(results)))
	}
	return nil
}

// reportCheck writes the summary of results, or the structured response
// with status "error" when any file failed. It returns the failure count.
func reportCheck(formatter *OutputFormatter, results []CheckResult) (int, error) {
	failed := 0
	for _, result := range results {
		if !result.Valid {
			failed++
		}
	}

	switch {
	case formatter.Format == "text":
		writeCheckSummary(formatter.Writer, len(results), failed)
	case failed == 0:
		if err := formatter.Success(results); err != nil {
			return failed, err
		}
	default:
		code := firstCode(results)
		if err := formatter.Error(code, fmt.Sprintf("%d of %d file(s) have errors", failed, len(results)), results); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// checkFiles parses every path. In text mode the diagnostics and one status
// line per file are written as it goes.
func checkFiles(formatter *OutputFormatter, paths []string) ([]CheckResult, error) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	results := make([]CheckResult, 0, len(paths))
	for _, path := range paths {
		file, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		result := CheckResult{
			File:        path,
			Valid:       !file.Failed(),
			Definitions: len(file.Program),
			Diagnostics: file.Diagnostics(),
		}
		results = append(results, result)

		if formatter.Format != "text" {
			continue
		}
		if result.Valid {
			green.Fprintf(formatter.Writer, "✓ %s (%d definition(s))\n", path, result.Definitions)
		} else {
			fmt.Fprint(formatter.Writer, file.Render())
			red.Fprintf(formatter.Writer, "✗ %s\n", path)
		}
	}

	return results, nil
}

func writeCheckSummary(w io.Writer, total, failed int) {
	if total < 2 {
		return
	}
	if failed == 0 {
		color.New(color.FgGreen).Fprintf(w, "All %d files ok\n", total)
		return
	}
	color.New(color.FgRed).Fprintf(w, "%d of %d files have errors\n", failed, total)
}

func firstCode(results []CheckResult) string {
	for _, result := range results {
		if len(result.Diagnostics) > 0 {
			return result.Diagnostics[0].Code
		}
	}
	return ""
}
