// Package config defines core configuration types for pystylecheck.
// These types are pure data structures; loading and merging live in internal/configloader.
package config

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// OutputFormat specifies the output format for diagnostics.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the format is one of the known output formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF, FormatSummary:
		return true
	default:
		return false
	}
}

// RuleFormat controls how rule identifiers appear in summary and listing output.
// The text contract always prints the ID.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "line-length"
	RuleFormatID       RuleFormat = "id"       // "S001"
	RuleFormatCombined RuleFormat = "combined" // "S001/line-length"
)

// IsValid returns true if the rule format is valid.
func (f RuleFormat) IsValid() bool {
	switch f {
	case RuleFormatName, RuleFormatID, RuleFormatCombined:
		return true
	default:
		return false
	}
}

// SummaryOrder controls the order of tables in summary output.
type SummaryOrder string

const (
	// SummaryOrderRules shows rules table first (default).
	SummaryOrderRules SummaryOrder = "rules"
	// SummaryOrderFiles shows files table first.
	SummaryOrderFiles SummaryOrder = "files"
)

// IsValid returns true if the summary order is valid.
func (s SummaryOrder) IsValid() bool {
	switch s {
	case SummaryOrderRules, SummaryOrderFiles:
		return true
	default:
		return false
	}
}

// ColorMode controls terminal styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is valid.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for pystylecheck.
type Config struct {
	// Ignore contains glob patterns for files and directories to skip during discovery.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`

	// FollowSymlinks makes discovery descend into symlinked directories.
	FollowSymlinks bool `json:"follow_symlinks" yaml:"follow_symlinks"`

	// DetectShebang also analyses extensionless files whose shebang names Python.
	DetectShebang bool `json:"detect_shebang" yaml:"detect_shebang"`

	// SkipVendored drops vendored paths (virtualenvs, site-packages, ...) during discovery.
	SkipVendored bool `json:"skip_vendored" yaml:"skip_vendored"`

	// Jobs is the number of files analysed in parallel. 0 means GOMAXPROCS.
	Jobs int `json:"jobs" yaml:"jobs"`

	// Format specifies the output format.
	Format OutputFormat `json:"format" yaml:"format"`

	// Color selects when terminal styling is used.
	Color ColorMode `json:"color" yaml:"color"`

	// RuleFormat controls how rule identifiers appear in summaries and listings.
	RuleFormat RuleFormat `json:"rule_format" yaml:"rule_format"`

	// SummaryOrder controls which summary table is printed first.
	SummaryOrder SummaryOrder `json:"summary_order" yaml:"summary_order"`

	// Summary appends a one-line summary after the text report.
	Summary bool `json:"summary" yaml:"summary"`

	// Strict makes the process exit non-zero when any diagnostic is reported.
	Strict bool `json:"strict" yaml:"strict"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:       FormatText,
		Color:        ColorAuto,
		RuleFormat:   RuleFormatID,
		SummaryOrder: SummaryOrderRules,
		Jobs:         0, // 0 means use GOMAXPROCS
	}
}
