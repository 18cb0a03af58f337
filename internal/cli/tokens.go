package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	diag "sequent/internal/errors"
	"sequent/internal/ir"
	"sequent/internal/parser"
)

// TokenInfo is the structured form of one token.
type TokenInfo struct {
	Kind    string `json:"kind" yaml:"kind"`
	Text    string `json:"text" yaml:"text"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Literal any    `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tokens <file>",
		Short:         "Print the tokens of a file with their byte spans",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runTokens(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	data, err := os.ReadFile(path)
	if err != nil {
		return readFailure(formatter, WrapExitError(ExitCommandError, fmt.Sprintf("failed to read %s", path), err))
	}
	source := string(data)

	var tokens []TokenInfo
	lexer := parser.NewLexer(path, source)
	for {
		tok, err := lexer.Next()
		if stderrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if opts.Format == "text" {
				writeTokens(formatter.Writer, tokens)
			}
			file := &SourceFile{Path: path, Source: source, Errors: []diag.CompilerError{diag.FromParseError(err)}}
			return file.fail(formatter)
		}
		tokens = append(tokens, newTokenInfo(source, tok))
	}

	log.Infof("lexed %s: %d token(s)", path, len(tokens))

	if opts.Format == "text" {
		writeTokens(formatter.Writer, tokens)
		return nil
	}
	return formatter.Success(tokens)
}

func newTokenInfo(source string, tok parser.Token) TokenInfo {
	line, column := ir.LineCol(source, tok.Location.Start)
	info := TokenInfo{
		Kind:   tok.Kind.String(),
		Text:   tok.Text,
		Start:  tok.Location.Start,
		End:    tok.Location.End,
		Line:   line,
		Column: column,
	}
	if tok.IsLiteral() {
		info.Literal = tok.Literal.Value()
	}
	return info
}

func writeTokens(w io.Writer, tokens []TokenInfo) {
	for _, tok := range tokens {
		fmt.Fprintf(w, "%-10s %-12s %s\n", fmt.Sprintf("%d..%d", tok.Start, tok.End), tok.Kind, tok.Text)
	}
}
