package rules

import (
	"github.com/yaklabco/pystylecheck/pkg/config"
	"github.com/yaklabco/pystylecheck/pkg/lint"
)

// RegisterAll registers all built-in rules with the given registry.
func RegisterAll(registry *lint.Registry) {
	// Lexical rules
	registry.Register(NewLineLengthRule())     // S001
	registry.Register(NewIndentationRule())    // S002
	registry.Register(NewSemicolonRule())      // S003
	registry.Register(NewCommentSpacingRule()) // S004
	registry.Register(NewTodoRule())           // S005
	registry.Register(NewBlankLinesRule())     // S006
	registry.Register(NewKeywordSpacingRule()) // S007
	registry.Register(NewClassNamingRule())    // S008
	registry.Register(NewFunctionNamingRule()) // S009

	// Syntactic rules
	registry.Register(NewArgumentNamingRule()) // S010
	registry.Register(NewVariableNamingRule()) // S011
	registry.Register(NewMutableDefaultRule()) // S012
}

// RuleInfos describes the rules in registry for config templates and listings.
func RuleInfos(registry *lint.Registry) []config.RuleInfo {
	rules := registry.Rules()
	infos := make([]config.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, config.RuleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Description: rule.Description(),
			Severity:    rule.DefaultSeverity(),
			Tags:        rule.Tags(),
		})
	}
	return infos
}

// init registers all built-in rules with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic rule registration
func init() {
	RegisterAll(lint.DefaultRegistry)
	config.DefaultRuleInfoProvider = func() []config.RuleInfo {
		return RuleInfos(lint.DefaultRegistry)
	}
}
