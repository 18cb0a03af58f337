package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/width"

	"sequent/internal/ir"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error ErrorLevel = "error"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Location    ir.Location  // Byte range in source
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

func (e CompilerError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Level, e.Message)
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

// ErrorReporter renders compiler errors against the source they refer to
type ErrorReporter struct {
	filename string
	source   string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError formats a compiler error with Rust-like styling and suggestions
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var result strings.Builder

	levelColor := er.getLevelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	// Header: error[E0100]: message
	if err.Code != "" {
		result.WriteString(fmt.Sprintf("%s[%s]: %s\n",
			levelColor(string(err.Level)), err.Code, err.Message))
	} else {
		result.WriteString(fmt.Sprintf("%s: %s\n",
			levelColor(string(err.Level)), err.Message))
	}

	line, column := ir.LineCol(er.source, err.Location.Start)

	// Location line: --> filename:line:column
	lineNumberWidth := er.getLineNumberWidth(line)
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), er.filename, line, column))

	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	// Line before, if any
	if line > 1 && line-1 <= len(er.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line-1)),
			dim("│"),
			er.lines[line-2]))
	}

	// Main error line
	if line <= len(er.lines) {
		lineContent := er.lines[line-1]
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, line)),
			dim("│"),
			lineContent))

		marker := er.createMarker(lineContent, column, err.Location.Len(), err.Level)
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			indent, dim("│"), marker))
	}

	// Line after, if any
	if line < len(er.lines) && er.lines[line] != "" {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			dim(fmt.Sprintf("%*d", lineNumberWidth, line+1)),
			dim("│"),
			er.lines[line]))
	}

	if len(err.Suggestions) > 0 {
		result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
		suggestionColor := color.New(color.FgCyan).SprintFunc()
		for i, suggestion := range err.Suggestions {
			if i == 0 {
				result.WriteString(fmt.Sprintf("%s %s %s: %s\n",
					indent, suggestionColor("help"), suggestionColor("try"), suggestion.Message))
			} else {
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("    "), suggestion.Message))
			}

			if suggestion.Replacement != "" {
				result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))
				replacement := strings.ReplaceAll(suggestion.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, dim("│")))
				result.WriteString(fmt.Sprintf("%s %s %s\n",
					indent, suggestionColor("│"), suggestionColor(replacement)))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), noteColor("note:"), note))
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		result.WriteString(fmt.Sprintf("%s %s %s %s\n",
			indent, dim("│"), helpColor("help:"), err.HelpText))
	}

	result.WriteString("\n")
	return result.String()
}

// FormatErrors renders every error in order.
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var result strings.Builder
	for _, err := range errs {
		result.WriteString(er.FormatError(err))
	}
	return result.String()
}

// getLevelColor returns the appropriate color function for an error level
func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	default:
		return color.New(color.Bold).SprintFunc()
	}
}

// createMarker underlines length bytes of line starting at the 1-based rune
// column. The padding and the carets follow the display width of the text
// they sit under, so wide characters get two columns. Tabs are copied so
// that the marker lines up with however the terminal expands them.
func (er *ErrorReporter) createMarker(line string, column, length int, level ErrorLevel) string {
	runes := []rune(line)
	start := min(max(0, column-1), len(runes))

	var padding strings.Builder
	for _, r := range runes[:start] {
		if r == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}

	// Clamp the span to the end of the line; multi-line spans are marked up
	// to the line break.
	carets := 0
	consumed := 0
	for _, r := range runes[start:] {
		if consumed >= length {
			break
		}
		carets += runeWidth(r)
		consumed += len(string(r))
	}
	if carets == 0 {
		carets = 1
	}

	markerColor := er.getLevelColor(level)
	return padding.String() + markerColor(strings.Repeat("^", carets))
}

// runeWidth returns the number of terminal columns r occupies.
func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// getLineNumberWidth calculates the width needed for line numbers
func (er *ErrorReporter) getLineNumberWidth(line int) int {
	digits := len(fmt.Sprintf("%d", line+1))
	if digits < 3 {
		digits = 3 // minimum width for visual alignment
	}
	return digits
}
