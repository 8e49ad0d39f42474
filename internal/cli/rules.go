package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/pystylecheck/internal/logging"
	"github.com/yaklabco/pystylecheck/pkg/config"
	"github.com/yaklabco/pystylecheck/pkg/lint"
	"github.com/yaklabco/pystylecheck/pkg/lint/rules"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Tags        []string `json:"tags"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules [rule...]",
		Short: "List the style rules",
		Long: `List every style rule with its ID, name, default severity, tags and
description. Rules are listed in the order their diagnostics are reported
for the same line.

Pass rule IDs or names to list only those rules:
  pystylecheck rules S003 mutable-default`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := selectRules(lint.DefaultRegistry, args)
			if err != nil {
				return err
			}
			infos := rules.RuleInfos(registry)

			switch flags.format {
			case formatJSON:
				return outputRulesJSON(cmd.OutOrStdout(), infos)
			case "text":
				return outputRulesText(cmd.OutOrStdout(), infos, config.RuleFormat(flags.ruleFormat))
			default:
				return fmt.Errorf("invalid format %q: must be text or json", flags.format)
			}
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", string(config.RuleFormatCombined),
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// selectRules returns a registry holding the rules named by keys, or all of
// registry when keys is empty.
func selectRules(registry *lint.Registry, keys []string) (*lint.Registry, error) {
	if len(keys) == 0 {
		return registry, nil
	}

	selected := lint.NewRegistry()
	for _, key := range keys {
		rule, ok := registry.Get(key)
		if !ok {
			return nil, fmt.Errorf("unknown rule %q", key)
		}
		selected.Register(rule)
	}
	return selected, nil
}

func outputRulesText(w io.Writer, infos []config.RuleInfo, format config.RuleFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("invalid rule format %q: must be name, id, or combined", format)
	}

	logger := logging.NewInteractive()
	logger.SetOutput(w)

	for _, info := range infos {
		logger.Info(config.FormatRuleID(format, info.ID, info.Name),
			logging.FieldSeverity, info.Severity,
			logging.FieldTags, strings.Join(info.Tags, ","),
			logging.FieldDescription, info.Description,
		)
	}

	return nil
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(w io.Writer, infos []config.RuleInfo) error {
	out := make([]ruleInfo, 0, len(infos))
	for _, info := range infos {
		out = append(out, ruleInfo{
			ID:          info.ID,
			Name:        info.Name,
			Description: info.Description,
			Severity:    string(info.Severity),
			Tags:        info.Tags,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
