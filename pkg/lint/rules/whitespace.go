package rules

import (
	"regexp"

	"github.com/yaklabco/pystylecheck/pkg/lint"
)

const (
	// indentWidth is the required indentation granularity.
	indentWidth = 4

	// maxBlankLines is the largest allowed run of blank lines.
	maxBlankLines = 2
)

//nolint:gochecknoglobals // Compiled once, read-only.
var keywordSpacingPattern = regexp.MustCompile(`^\s*(def|class)  +`)

// IndentationRule reports indentation that is not a multiple of four.
type IndentationRule struct {
	lint.BaseRule
}

// NewIndentationRule creates a new indentation rule.
func NewIndentationRule() *IndentationRule {
	return &IndentationRule{
		BaseRule: lint.NewBaseRule(
			"S002",
			"indentation",
			"Indentation should be a multiple of four whitespace characters",
			[]string{"whitespace", "indentation"},
		),
	}
}

// Check skips whitespace-only lines.
func (r *IndentationRule) Check(lc *lint.LineContext) (string, bool) {
	if lc.Line.IsWhitespace() {
		return "", false
	}
	if lint.LeadingWhitespace(lc.Text())%indentWidth != 0 {
		return "Indentation is not a multiple of four", true
	}
	return "", false
}

// BlankLinesRule reports a line preceded by more than two blank lines.
type BlankLinesRule struct {
	lint.BaseRule
}

// NewBlankLinesRule creates a new blank-lines rule.
func NewBlankLinesRule() *BlankLinesRule {
	return &BlankLinesRule{
		BaseRule: lint.NewBaseRule(
			"S006",
			"blank-lines",
			"No more than two consecutive blank lines",
			[]string{"whitespace", "blank_lines"},
		),
	}
}

// Check reads the blank run accumulated by the engine.
func (r *BlankLinesRule) Check(lc *lint.LineContext) (string, bool) {
	if lc.BlankRun > maxBlankLines {
		return "More than two blank lines used before this line", true
	}
	return "", false
}

// KeywordSpacingRule reports more than one space after 'def' or 'class'.
type KeywordSpacingRule struct {
	lint.BaseRule
}

// NewKeywordSpacingRule creates a new keyword-spacing rule.
func NewKeywordSpacingRule() *KeywordSpacingRule {
	return &KeywordSpacingRule{
		BaseRule: lint.NewBaseRule(
			"S007",
			"keyword-spacing",
			"Exactly one space should follow 'def' and 'class'",
			[]string{"whitespace", "definitions"},
		),
	}
}

// Check matches the keyword at the start of the line, after indentation.
func (r *KeywordSpacingRule) Check(lc *lint.LineContext) (string, bool) {
	m := keywordSpacingPattern.FindStringSubmatch(lc.Text())
	if m == nil {
		return "", false
	}
	return "Too many spaces after " + m[1], true
}
