package pyast

import "fmt"

// SyntaxError reports source that could not be parsed into a syntax tree.
type SyntaxError struct {
	// Line is the 1-based line of the first offending construct.
	Line int

	// Column is the 1-based byte column of the first offending construct.
	Column int

	// Msg describes the problem.
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
	}
	return "syntax error: " + e.Msg
}
