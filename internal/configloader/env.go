package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/pystylecheck/pkg/config"
)

// envVarPrefix is the prefix for all pystylecheck environment variables.
const envVarPrefix = "PYSTYLECHECK_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"IGNORE":          {field: "ignore", typ: envTypeSlice, description: "Comma-separated list of ignore globs"},
	"FOLLOW_SYMLINKS": {field: "follow_symlinks", typ: envTypeBool, description: "Descend into symlinked directories: true or false"},
	"DETECT_SHEBANG":  {field: "detect_shebang", typ: envTypeBool, description: "Check extensionless Python scripts: true or false"},
	"SKIP_VENDORED":   {field: "skip_vendored", typ: envTypeBool, description: "Skip vendored paths such as virtualenvs: true or false"},
	"JOBS":            {field: "jobs", typ: envTypeInt, description: "Number of parallel workers (0 = auto)"},
	"FORMAT":          {field: "format", typ: envTypeString, description: "Output format: text, json, sarif, or summary"},
	"COLOR":           {field: "color", typ: envTypeString, description: "Color mode: auto, always, or never"},
	"RULE_FORMAT":     {field: "rule_format", typ: envTypeString, description: "Rule display: id, name, or combined"},
	"SUMMARY_ORDER":   {field: "summary_order", typ: envTypeString, description: "Summary table order: rules or files"},
	"SUMMARY":         {field: "summary", typ: envTypeBool, description: "Append a one-line summary: true or false"},
	"STRICT":          {field: "strict", typ: envTypeBool, description: "Exit non-zero when issues are found: true or false"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with PYSTYLECHECK_ (e.g., PYSTYLECHECK_JOBS).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "color":
		cfg.Color = config.ColorMode(value)
	case "rule_format":
		cfg.RuleFormat = config.RuleFormat(value)
	case "summary_order":
		cfg.SummaryOrder = config.SummaryOrder(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "follow_symlinks":
		cfg.FollowSymlinks = value
	case "detect_shebang":
		cfg.DetectShebang = value
	case "skip_vendored":
		cfg.SkipVendored = value
	case "summary":
		cfg.Summary = value
	case "strict":
		cfg.Strict = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns every supported environment variable sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
