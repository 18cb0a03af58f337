// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	diag "sequent/internal/errors"
	"sequent/internal/ir"
	"sequent/internal/parser"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "
	FILE         = "<repl>"
)

// Start reads definitions from in and prints the parsed program, or the
// rendered error, to out. Input that ends inside a definition continues on
// the next line; an empty line ends the continuation.
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	var buffer strings.Builder

	fmt.Fprint(out, PROMPT)
	for scanner.Scan() {
		line := scanner.Text()
		continuing := buffer.Len() > 0

		if strings.TrimSpace(line) == "" && !continuing {
			fmt.Fprint(out, PROMPT)
			continue
		}

		buffer.WriteString(line)
		buffer.WriteString("\n")
		source := buffer.String()

		program, err := parser.ParseSource(FILE, source)

		var eofErr *parser.UnexpectedEOFError
		if stderrors.As(err, &eofErr) && strings.TrimSpace(line) != "" {
			fmt.Fprint(out, CONTINUATION)
			continue
		}

		if err != nil {
			fmt.Fprint(out, diag.NewErrorReporter(FILE, source).FormatError(diag.FromParseError(err)))
		} else {
			fmt.Fprint(out, ir.Print(program))
		}

		buffer.Reset()
		fmt.Fprint(out, PROMPT)
	}
	fmt.Fprintln(out)

	return scanner.Err()
}
