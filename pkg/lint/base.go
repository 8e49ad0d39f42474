package lint

import "github.com/yaklabco/pystylecheck/pkg/config"

// BaseRule provides the metadata half of the Rule interface.
// Embed this in rule implementations and add a Check method.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id       string
	name     string
	desc     string
	severity config.Severity
	tags     []string
}

// NewBaseRule creates a BaseRule with warning severity.
func NewBaseRule(id, name, desc string, tags []string) BaseRule {
	return BaseRule{
		id:       id,
		name:     name,
		desc:     desc,
		severity: config.SeverityWarning,
		tags:     tags,
	}
}

// WithSeverity returns a copy of the base rule using severity s.
func (r BaseRule) WithSeverity(s config.Severity) BaseRule {
	r.severity = s
	return r
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// DefaultSeverity returns the severity for this rule's diagnostics.
func (r *BaseRule) DefaultSeverity() config.Severity {
	return r.severity
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}
