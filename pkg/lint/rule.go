// Package lint provides the diagnostic engine, rule contract, and registry for pystylecheck.
package lint

import "github.com/yaklabco/pystylecheck/pkg/config"

// Rule defines the interface that all style rules must implement.
//
// A rule inspects one physical line at a time. It receives everything it may
// use through the LineContext and never sees other rules' output.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "S001").
	// IDs sort in the order diagnostics for the same line are reported.
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultSeverity returns the severity attached to this rule's diagnostics.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule (e.g., ["naming"]).
	Tags() []string

	// Check evaluates the rule on a single non-blank line.
	// It returns the diagnostic message and true when the line violates the rule.
	Check(lc *LineContext) (string, bool)
}
