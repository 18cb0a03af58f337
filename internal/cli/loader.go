package cli

import (
	"fmt"
	"os"

	diag "sequent/internal/errors"
	"sequent/internal/ir"
	"sequent/internal/parser"
)

// SourceFile is one input file after parsing. Syntax errors are kept in
// Errors; only failures to read the file are returned as Go errors.
type SourceFile struct {
	Path    string
	Source  string
	Program ir.Program[string]
	Errors  []diag.CompilerError
}

// LoadFile reads and parses the file at path.
func LoadFile(path string) (*SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to read %s", path), err)
	}

	file := &SourceFile{Path: path, Source: string(data)}

	program, err := parser.ParseSource(path, file.Source)
	if err != nil {
		log.Debugf("%s: %s", path, err)
		file.Errors = []diag.CompilerError{diag.FromParseError(err)}
		return file, nil
	}

	file.Program = program
	log.Infof("parsed %s: %d definition(s)", path, len(program))
	return file, nil
}

func (f *SourceFile) Failed() bool {
	return len(f.Errors) > 0
}

// Diagnostics converts the errors for structured output.
func (f *SourceFile) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(f.Errors))
	for i, err := range f.Errors {
		out[i] = NewDiagnostic(f.Path, f.Source, err)
	}
	return out
}

// Render returns the errors formatted against the source.
func (f *SourceFile) Render() string {
	return diag.NewErrorReporter(f.Path, f.Source).FormatErrors(f.Errors)
}

// fail reports the errors of f in the configured format and returns the
// matching exit error.
func (f *SourceFile) fail(formatter *OutputFormatter) error {
	if formatter.Format == "text" {
		fmt.Fprint(formatter.GetErrWriter(), f.Render())
	} else {
		first := f.Errors[0]
		if err := formatter.Error(first.Code, first.Message, f.Diagnostics()); err != nil {
			return err
		}
	}
	return NewExitError(ExitFailure, fmt.Sprintf("%s has errors", f.Path))
}

// readFailure reports an error returned by LoadFile.
func readFailure(formatter *OutputFormatter, err error) error {
	if formatter.Format != "text" {
		if encErr := formatter.Error(diag.ErrorReadFile, err.Error(), nil); encErr != nil {
			return encErr
		}
	}
	return err
}
