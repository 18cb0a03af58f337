package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	diag "sequent/internal/errors"
	"sequent/internal/ir"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The input has errors
	ExitCommandError = 2 // Command error (unreadable file, bad flags, bad configuration)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter writes command results as text, JSON or YAML.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Diagnostics in text mode go here
}

// CLIResponse is the envelope for JSON and YAML output.
type CLIResponse struct {
	Status string    `json:"status" yaml:"status"`                   // "ok" or "error"
	Data   any       `json:"data,omitempty" yaml:"data,omitempty"`   // success payload
	Error  *CLIError `json:"error,omitempty" yaml:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code" yaml:"code"`                           // "E0100", "E0900", ...
	Message string `json:"message" yaml:"message"`                     // human-readable message
	Details any    `json:"details,omitempty" yaml:"details,omitempty"` // additional context
}

// Diagnostic is the machine-readable form of a CompilerError.
type Diagnostic struct {
	File    string   `json:"file" yaml:"file"`
	Level   string   `json:"level" yaml:"level"`
	Code    string   `json:"code" yaml:"code"`
	Message string   `json:"message" yaml:"message"`
	Line    int      `json:"line" yaml:"line"`
	Column  int      `json:"column" yaml:"column"`
	Start   int      `json:"start" yaml:"start"`
	End     int      `json:"end" yaml:"end"`
	Notes   []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Help    string   `json:"help,omitempty" yaml:"help,omitempty"`
}

func NewDiagnostic(path, source string, err diag.CompilerError) Diagnostic {
	line, column := ir.LineCol(source, err.Location.Start)
	return Diagnostic{
		File:    path,
		Level:   string(err.Level),
		Code:    err.Code,
		Message: err.Message,
		Line:    line,
		Column:  column,
		Start:   err.Location.Start,
		End:     err.Location.End,
		Notes:   err.Notes,
		Help:    err.HelpText,
	}
}

// Encode writes v in the configured structured format. Text falls back to
// JSON because there is no generic text form.
func (f *OutputFormatter) Encode(v any) error {
	if f.Format == "yaml" {
		encoder := yaml.NewEncoder(f.Writer)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	}

	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "text" {
		fmt.Fprintln(f.Writer, data)
		return nil
	}
	return f.Encode(CLIResponse{Status: "ok", Data: data})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "text" {
		fmt.Fprintf(f.GetErrWriter(), "Error [%s]: %s\n", code, message)
		return nil
	}
	return f.Encode(CLIResponse{
		Status: "error",
		Error: &CLIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
