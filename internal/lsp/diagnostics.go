package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	diag "sequent/internal/errors"
)

// ConvertParseError transforms the error returned by the parser into LSP
// diagnostics. A nil error yields an empty list, which clears the
// diagnostics shown by the editor.
func ConvertParseError(source string, err error) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if err == nil {
		return diagnostics
	}

	compilerErr := diag.FromParseError(err)

	var message strings.Builder
	message.WriteString(compilerErr.Message)
	for _, suggestion := range compilerErr.Suggestions {
		message.WriteString("\nhelp: " + suggestion.Message)
	}
	for _, note := range compilerErr.Notes {
		message.WriteString("\nnote: " + note)
	}
	if compilerErr.HelpText != "" {
		message.WriteString("\nhelp: " + compilerErr.HelpText)
	}

	diagnostic := protocol.Diagnostic{
		Range:    rangeOf(source, compilerErr.Location),
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("sequent-parser"),
		Message:  message.String(),
	}
	if compilerErr.Code != "" {
		diagnostic.Code = &protocol.IntegerOrString{Value: compilerErr.Code}
	}

	return append(diagnostics, diagnostic)
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
