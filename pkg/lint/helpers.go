package lint

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineScan is the result of scanning one line while tracking string quotes.
type LineScan struct {
	// Semicolon is true when a ';' occurs outside quotes before any comment.
	Semicolon bool

	// CommentStart is the rune index of the first '#' outside quotes, or -1.
	CommentStart int
}

// HasComment reports whether the line carries a comment marker outside quotes.
func (s LineScan) HasComment() bool {
	return s.CommentStart >= 0
}

// ScanLine walks text rune by rune. A quote character opens a string that
// runs to the next unescaped occurrence of the same character; a backslash
// inside a string escapes the following rune. A '#' outside any string ends
// the scan.
func ScanLine(text string) LineScan {
	scan := LineScan{CommentStart: -1}

	var quote rune
	escaped := false
	idx := 0

	for _, r := range text {
		switch {
		case quote != 0:
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}

		case r == '\'' || r == '"':
			quote = r

		case r == ';':
			scan.Semicolon = true

		case r == '#':
			scan.CommentStart = idx
			return scan
		}
		idx++
	}

	return scan
}

// LeadingWhitespace returns the number of whitespace runes at the start of text.
func LeadingWhitespace(text string) int {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	return utf8.RuneCountInString(text) - utf8.RuneCountInString(trimmed)
}

// RuneAt returns the rune at rune index i of text, or utf8.RuneError when i is out of range.
func RuneAt(text string, i int) rune {
	if i < 0 {
		return utf8.RuneError
	}
	idx := 0
	for _, r := range text {
		if idx == i {
			return r
		}
		idx++
	}
	return utf8.RuneError
}
