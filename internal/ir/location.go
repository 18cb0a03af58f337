package ir

import (
	"fmt"
	"unicode/utf8"
)

// Location is a half-open byte range [Start, End) into one named source.
type Location struct {
	File  string
	Start int
	End   int
}

// To returns the span from the start of l to the end of other.
// Both locations are expected to come from the same file.
func (l Location) To(other Location) Location {
	return Location{
		File:  l.File,
		Start: l.Start,
		End:   other.End,
	}
}

// Contains reports whether other lies entirely inside l.
func (l Location) Contains(other Location) bool {
	return l.File == other.File && l.Start <= other.Start && other.End <= l.End
}

func (l Location) Len() int {
	return l.End - l.Start
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d..%d", l.File, l.Start, l.End)
}

// LineCol converts a byte offset into a 1-based line and a 1-based column
// counted in runes. Offsets past the end of source are clamped.
func LineCol(source string, offset int) (line, column int) {
	if offset > len(source) {
		offset = len(source)
	}
	line, column = 1, 1
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(source[i:])
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
		i += size
	}
	return line, column
}
