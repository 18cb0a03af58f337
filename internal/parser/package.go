package parser

import (
	"fmt"
	"os"

	"sequent/internal/ir"
)

// ParseSource parses one whole source file.
func ParseSource(path string, source string) (ir.Program[string], error) {
	return NewParser(NewLexer(path, source)).Parse()
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (ir.Program[string], string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	program, err := ParseSource(path, string(source))
	return program, string(source), err
}
