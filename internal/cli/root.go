package cli

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"sequent/internal/config"
	diag "sequent/internal/errors"
)

var log = commonlog.GetLogger("sequent.cli")

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    int
	Format     string // "text" | "json" | "yaml"
	Color      string // "auto" | "always" | "never"
	ConfigPath string
}

// NewRootCommand creates the root command for the sequent CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "sequent",
		Short: "sequent - a sequent-calculus core IR front end",
		Long:  "Tokenize, parse and check programs written in the sequent intermediate language.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v", "increase log verbosity (repeatable)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Color, "color", "auto", "colored output (auto|always|never)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.FileName, "configuration file")

	// Add subcommands
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewTokensCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewGrammarCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))

	return cmd
}

// apply merges the configuration file into the flags that were not set on
// the command line, then configures color and logging.
func (opts *RootOptions) apply(cmd *cobra.Command) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		// Only the flag can pick the format when the file is unusable.
		formatter := opts.formatter(cmd)
		if formatter.Format == "json" || formatter.Format == "yaml" {
			if encErr := formatter.Error(diag.ErrorConfig, err.Error(), opts.ConfigPath); encErr != nil {
				return encErr
			}
		}
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	if !flags.Changed("color") {
		opts.Color = cfg.Color
	}

	if !slices.Contains(config.ValidFormats, opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, config.ValidFormats))
	}
	if !slices.Contains(config.ValidColors, opts.Color) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid color %q: must be one of %v", opts.Color, config.ValidColors))
	}

	switch opts.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	commonlog.Configure(cfg.Verbosity+opts.Verbose, cfg.LogPath())
	log.Debugf("configuration loaded from %s", opts.ConfigPath)
	return nil
}

func (opts *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
	}
}
