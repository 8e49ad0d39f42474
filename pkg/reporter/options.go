package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/pystylecheck/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// ErrorWriter is the destination for per-file errors (typically os.Stderr).
	ErrorWriter io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls styling of everything except the diagnostic lines.
	Color config.ColorMode

	// ShowSummary appends a one-line summary after text output.
	ShowSummary bool

	// Compact uses minified output where applicable.
	Compact bool

	// RuleFormat controls how rule identifiers appear in summary tables.
	RuleFormat config.RuleFormat

	// SummaryOrder controls the order of tables in summary output.
	SummaryOrder config.SummaryOrder

	// WorkingDir is the directory to make paths relative to in aggregated views.
	// If empty, paths are kept as discovered.
	WorkingDir string

	// Version is the tool version recorded in machine-readable output.
	Version string

	// Rules describes the rule set for formats that embed rule metadata (SARIF).
	Rules []config.RuleInfo
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:       os.Stdout,
		ErrorWriter:  os.Stderr,
		Format:       FormatText,
		Color:        config.ColorAuto,
		RuleFormat:   config.RuleFormatID,
		SummaryOrder: config.SummaryOrderRules,
		Version:      "dev",
	}
}

// withDefaults fills unset writers and version.
func (o Options) withDefaults() Options {
	defaults := DefaultOptions()
	if o.Writer == nil {
		o.Writer = defaults.Writer
	}
	if o.ErrorWriter == nil {
		o.ErrorWriter = defaults.ErrorWriter
	}
	if o.Version == "" {
		o.Version = defaults.Version
	}
	return o
}
