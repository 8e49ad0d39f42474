package rules

import (
	"regexp"

	"github.com/yaklabco/pystylecheck/pkg/lint"
)

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	classDeclPattern    = regexp.MustCompile(`^\s*class ([\p{L}\p{N}_]+)`)
	functionDeclPattern = regexp.MustCompile(`^\s*def ([\p{L}\p{N}_]+)`)

	camelCasePattern = regexp.MustCompile(`^(?:[A-Z][a-z0-9]+)+$`)
	snakeCasePattern = regexp.MustCompile(`^[a-z_]+$`)
)

// IsCamelCase reports whether name is one or more capitalized segments.
func IsCamelCase(name string) bool {
	return camelCasePattern.MatchString(name)
}

// IsSnakeCase reports whether name consists of lowercase letters and underscores.
func IsSnakeCase(name string) bool {
	return snakeCasePattern.MatchString(name)
}

// ClassNamingRule reports class names that are not CamelCase.
type ClassNamingRule struct {
	lint.BaseRule
}

// NewClassNamingRule creates a new class-naming rule.
func NewClassNamingRule() *ClassNamingRule {
	return &ClassNamingRule{
		BaseRule: lint.NewBaseRule(
			"S008",
			"class-naming",
			"Class names should be written in CamelCase",
			[]string{"naming", "definitions"},
		),
	}
}

// Check reads the declaration from the line text.
func (r *ClassNamingRule) Check(lc *lint.LineContext) (string, bool) {
	m := classDeclPattern.FindStringSubmatch(lc.Text())
	if m == nil || IsCamelCase(m[1]) {
		return "", false
	}
	return "Class name " + m[1] + " should be written in CamelCase", true
}

// FunctionNamingRule reports function names that are not snake_case.
type FunctionNamingRule struct {
	lint.BaseRule
}

// NewFunctionNamingRule creates a new function-naming rule.
func NewFunctionNamingRule() *FunctionNamingRule {
	return &FunctionNamingRule{
		BaseRule: lint.NewBaseRule(
			"S009",
			"function-naming",
			"Function names should be written in snake_case",
			[]string{"naming", "definitions"},
		),
	}
}

// Check reads the declaration from the line text.
func (r *FunctionNamingRule) Check(lc *lint.LineContext) (string, bool) {
	m := functionDeclPattern.FindStringSubmatch(lc.Text())
	if m == nil || IsSnakeCase(m[1]) {
		return "", false
	}
	return "Function name " + m[1] + " should be written in snake_case", true
}

// ArgumentNamingRule reports the first positional parameter that is not snake_case.
type ArgumentNamingRule struct {
	lint.BaseRule
}

// NewArgumentNamingRule creates a new argument-naming rule.
func NewArgumentNamingRule() *ArgumentNamingRule {
	return &ArgumentNamingRule{
		BaseRule: lint.NewBaseRule(
			"S010",
			"argument-naming",
			"Argument names should be written in snake_case",
			[]string{"naming", "syntax"},
		),
	}
}

// Check stops at the first offending parameter.
func (r *ArgumentNamingRule) Check(lc *lint.LineContext) (string, bool) {
	for _, name := range lc.Facts.Params {
		if !IsSnakeCase(name) {
			return "Argument name " + name + " should be written in snake_case", true
		}
	}
	return "", false
}

// VariableNamingRule reports the first name bound on a line when it is not snake_case.
type VariableNamingRule struct {
	lint.BaseRule
}

// NewVariableNamingRule creates a new variable-naming rule.
func NewVariableNamingRule() *VariableNamingRule {
	return &VariableNamingRule{
		BaseRule: lint.NewBaseRule(
			"S011",
			"variable-naming",
			"Variable names should be written in snake_case",
			[]string{"naming", "syntax"},
		),
	}
}

// Check looks at the first binding only; later bindings on the line are ignored.
func (r *VariableNamingRule) Check(lc *lint.LineContext) (string, bool) {
	if len(lc.Facts.Assigned) == 0 {
		return "", false
	}

	name := lc.Facts.Assigned[0]
	if IsSnakeCase(name) {
		return "", false
	}
	return "Variable " + name + " should be written in snake_case", true
}
