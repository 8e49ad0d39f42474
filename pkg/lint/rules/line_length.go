package rules

import "github.com/yaklabco/pystylecheck/pkg/lint"

// MaxLineLength is the longest permitted line, in characters, terminator excluded.
const MaxLineLength = 79

// LineLengthRule reports lines longer than MaxLineLength characters.
type LineLengthRule struct {
	lint.BaseRule
}

// NewLineLengthRule creates a new line-length rule.
func NewLineLengthRule() *LineLengthRule {
	return &LineLengthRule{
		BaseRule: lint.NewBaseRule(
			"S001",
			"line-length",
			"Lines should not be longer than 79 characters",
			[]string{"line_length"},
		),
	}
}

// Check counts code points, so multi-byte characters count once.
func (r *LineLengthRule) Check(lc *lint.LineContext) (string, bool) {
	if lc.Line.Length() > MaxLineLength {
		return "Too long", true
	}
	return "", false
}
