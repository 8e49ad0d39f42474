package lint

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/yaklabco/pystylecheck/pkg/config"
)

// Diagnostic represents a single style issue found in a file.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "line-length").
	RuleName string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the diagnostic.
	Severity config.Severity

	// FilePath is the path to the file as it is displayed.
	FilePath string

	// Line is the 1-based line number of the issue.
	Line int
}

// String renders the diagnostic as "{path}: Line {n}: {ID} {message}".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: Line %d: %s %s", d.FilePath, d.Line, d.RuleID, d.Message)
}

// SortDiagnostics orders diagnostics by line, then by rule ID.
// The sort is stable, so equal keys keep their emission order.
func SortDiagnostics(diags []Diagnostic) {
	slices.SortStableFunc(diags, func(a, b Diagnostic) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		return cmp.Compare(a.RuleID, b.RuleID)
	})
}

// DiagnosticBuilder helps construct Diagnostic values.
type DiagnosticBuilder struct {
	diag Diagnostic
}

// NewDiagnostic starts building a diagnostic for the given rule at a line.
func NewDiagnostic(rule Rule, filePath string, line int, message string) *DiagnosticBuilder {
	b := &DiagnosticBuilder{
		diag: Diagnostic{
			FilePath: filePath,
			Line:     line,
			Message:  message,
		},
	}
	if rule != nil {
		b.diag.RuleID = rule.ID()
		b.diag.RuleName = rule.Name()
		b.diag.Severity = rule.DefaultSeverity()
	}
	return b
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s config.Severity) *DiagnosticBuilder {
	b.diag.Severity = s
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() Diagnostic {
	return b.diag
}
