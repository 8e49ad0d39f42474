package rules

import (
	"strings"

	"github.com/yaklabco/pystylecheck/pkg/config"
	"github.com/yaklabco/pystylecheck/pkg/lint"
)

// todoMarker is matched against the lowercased line.
const todoMarker = "# todo"

// SemicolonRule reports a semicolon outside string literals and comments.
type SemicolonRule struct {
	lint.BaseRule
}

// NewSemicolonRule creates a new semicolon rule.
func NewSemicolonRule() *SemicolonRule {
	return &SemicolonRule{
		BaseRule: lint.NewBaseRule(
			"S003",
			"semicolon",
			"Semicolons should not be used outside string literals and comments",
			[]string{"statements"},
		),
	}
}

// Check uses the quote-aware scan shared by the comment rules.
func (r *SemicolonRule) Check(lc *lint.LineContext) (string, bool) {
	if lc.Scan().Semicolon {
		return "Unnecessary semicolon", true
	}
	return "", false
}

// CommentSpacingRule reports inline comments with fewer than two spaces before '#'.
type CommentSpacingRule struct {
	lint.BaseRule
}

// NewCommentSpacingRule creates a new comment-spacing rule.
func NewCommentSpacingRule() *CommentSpacingRule {
	return &CommentSpacingRule{
		BaseRule: lint.NewBaseRule(
			"S004",
			"comment-spacing",
			"Inline comments should be separated from code by at least two spaces",
			[]string{"comments", "whitespace"},
		),
	}
}

// Check only considers a marker past the second column.
func (r *CommentSpacingRule) Check(lc *lint.LineContext) (string, bool) {
	scan := lc.Scan()
	if !scan.HasComment() || scan.CommentStart <= 2 {
		return "", false
	}
	start := scan.CommentStart

	text := lc.Text()
	if lint.RuneAt(text, start-1) != ' ' || lint.RuneAt(text, start-2) != ' ' {
		return "At least two spaces required before inline comments", true
	}
	return "", false
}

// TodoRule reports comments containing a TODO marker.
type TodoRule struct {
	lint.BaseRule
}

// NewTodoRule creates a new todo rule.
func NewTodoRule() *TodoRule {
	return &TodoRule{
		BaseRule: lint.NewBaseRule(
			"S005",
			"todo",
			"TODO comments should be resolved",
			[]string{"comments"},
		).WithSeverity(config.SeverityInfo),
	}
}

// Check matches case-insensitively anywhere on the line, string literals
// included.
func (r *TodoRule) Check(lc *lint.LineContext) (string, bool) {
	if strings.Contains(strings.ToLower(lc.Text()), todoMarker) {
		return "TODO found", true
	}
	return "", false
}
