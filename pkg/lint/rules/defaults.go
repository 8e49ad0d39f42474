package rules

import (
	"slices"

	"github.com/yaklabco/pystylecheck/pkg/lint"
)

// MutableDefaultRule reports a definition with a non-constant default value.
type MutableDefaultRule struct {
	lint.BaseRule
}

// NewMutableDefaultRule creates a new mutable-default rule.
func NewMutableDefaultRule() *MutableDefaultRule {
	return &MutableDefaultRule{
		BaseRule: lint.NewBaseRule(
			"S012",
			"mutable-default",
			"Default argument values should be immutable constants",
			[]string{"syntax", "definitions"},
		),
	}
}

// Check reports once per line however many defaults are mutable.
func (r *MutableDefaultRule) Check(lc *lint.LineContext) (string, bool) {
	if slices.Contains(lc.Facts.DefaultIsMutable, true) {
		return "The default argument value is mutable", true
	}
	return "", false
}
