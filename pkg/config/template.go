package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full appends a commented reference of every rule.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
	Tags        []string
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the rules package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		return templateToJSON()
	}

	var buf bytes.Buffer
	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# File patterns to skip during directory discovery (glob patterns)
# ignore:
#   - "build/**"
#   - "**/migrations/**"

# Descend into symlinked directories
follow_symlinks: false

# Also analyse extensionless scripts with a Python shebang
detect_shebang: false

# Skip vendored paths such as .venv/ and site-packages/
skip_vendored: false

# Number of files analysed in parallel (0 = auto)
jobs: 0

# Output format: text, json, sarif, or summary
format: text

# Terminal colors: auto, always, or never
color: auto

# Rule labels in summaries: id, name, or combined
rule_format: id

# Summary table order: rules or files
summary_order: rules

# Print a one-line summary after the report
summary: false

# Exit with status 1 when any issue is reported
strict: false
`)

	if opts.Full {
		writeRuleReference(&buf)
	}

	return buf.Bytes(), nil
}

// writeRuleReference appends a commented list of the built-in rules.
func writeRuleReference(buf *bytes.Buffer) {
	rules := getRuleInfos()
	if len(rules) == 0 {
		return
	}

	sort.Slice(rules, func(i, j int) bool {
		return rules[i].ID < rules[j].ID
	})

	buf.WriteString("\n# Built-in rules (always enabled):\n")
	for _, rule := range rules {
		fmt.Fprintf(buf, "#\n#   %s: %s [%s]\n", rule.ID, rule.Name, rule.Severity)
		fmt.Fprintf(buf, "#     %s\n", wrapComment(rule.Description, commentWrapWidth))
		if len(rule.Tags) > 0 {
			fmt.Fprintf(buf, "#     Tags: %s\n", strings.Join(rule.Tags, ", "))
		}
	}
}

// getRuleInfos returns information about all registered rules.
func getRuleInfos() []RuleInfo {
	if DefaultRuleInfoProvider != nil {
		return DefaultRuleInfoProvider()
	}
	return nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range strings.Fields(text) {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n#     ")
}

// templateToJSON renders the default configuration as JSON.
func templateToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(NewConfig(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# pystylecheck configuration
# See: https://github.com/yaklabco/pystylecheck`
}
