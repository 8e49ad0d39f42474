package pyast

import (
	"strings"
	"unicode/utf8"
)

// SourceLine is one physical line of a file.
type SourceLine struct {
	// Number is the 1-based line number.
	Number int

	// Text is the verbatim line, including its terminator if it has one.
	Text string
}

// SplitLines splits content into physical lines, keeping terminators.
// Both LF and CRLF endings are recognised; a lone CR is not a line break.
// Content that ends with a newline produces no trailing empty line.
func SplitLines(content []byte) []SourceLine {
	if len(content) == 0 {
		return []SourceLine{}
	}

	var lines []SourceLine
	lineStart := 0

	for idx, char := range content {
		if char != '\n' {
			continue
		}
		lines = append(lines, SourceLine{
			Number: len(lines) + 1,
			Text:   string(content[lineStart : idx+1]),
		})
		lineStart = idx + 1
	}

	if lineStart < len(content) {
		lines = append(lines, SourceLine{
			Number: len(lines) + 1,
			Text:   string(content[lineStart:]),
		})
	}

	return lines
}

// Terminator returns the line ending ("\n", "\r\n" or "").
func (l SourceLine) Terminator() string {
	switch {
	case strings.HasSuffix(l.Text, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(l.Text, "\n"):
		return "\n"
	default:
		return ""
	}
}

// Content returns the line without its terminator.
func (l SourceLine) Content() string {
	return l.Text[:len(l.Text)-len(l.Terminator())]
}

// IsBlank reports whether the line consists solely of a line terminator.
// Whitespace-only lines are not blank.
func (l SourceLine) IsBlank() bool {
	return l.Text != "" && l.Content() == ""
}

// IsWhitespace reports whether the line holds nothing but whitespace.
func (l SourceLine) IsWhitespace() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Length returns the number of characters (code points) before the terminator.
func (l SourceLine) Length() int {
	return utf8.RuneCountInString(l.Content())
}
