package runner

import (
	"errors"

	"github.com/yaklabco/pystylecheck/pkg/lint"
)

// FileOutcome wraps PipelineResult with resolved path metadata.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Result contains the pipeline result for this file.
	// Nil if the file encountered an error during processing.
	Result *lint.PipelineResult

	// Error is set if the file could not be read or parsed.
	Error error
}

// Diagnostics returns the file's sorted diagnostics, or nil on error.
func (o FileOutcome) Diagnostics() []lint.Diagnostic {
	if o.Result == nil || o.Result.FileResult == nil {
		return nil
	}
	return o.Result.Diagnostics
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully checked.
	FilesProcessed int

	// FilesErrored is the number of files that could not be read or parsed.
	FilesErrored int

	// FilesParseFailed is the subset of FilesErrored that failed to parse.
	FilesParseFailed int

	// FilesWithIssues is the number of files with at least one diagnostic.
	FilesWithIssues int

	// BytesRead is the total size of the files that were checked.
	BytesRead int64

	// DiagnosticsTotal is the total number of diagnostics across all files.
	DiagnosticsTotal int

	// DiagnosticsBySeverity maps severity levels to counts.
	DiagnosticsBySeverity map[string]int

	// DiagnosticsByRule maps rule IDs to counts.
	DiagnosticsByRule map[string]int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each discovered file, in sorted path order.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.DiagnosticsTotal > 0
}

// HasErrors reports whether any file could not be checked.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// FileErrors returns the per-file errors in path order.
func (r *Result) FileErrors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, f.Error)
		}
	}
	return errs
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		DiagnosticsBySeverity: make(map[string]int),
		DiagnosticsByRule:     make(map[string]int),
	}
}

// accumulate updates the result with a file outcome.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		if errors.Is(outcome.Error, lint.ErrParseFailure) {
			r.Stats.FilesParseFailed++
		}
		return
	}

	if outcome.Result == nil {
		return
	}

	r.Stats.FilesProcessed++
	if outcome.Result.Info != nil {
		r.Stats.BytesRead += outcome.Result.Info.Size
	}

	diags := outcome.Diagnostics()
	r.Stats.DiagnosticsTotal += len(diags)
	if len(diags) > 0 {
		r.Stats.FilesWithIssues++
	}

	for _, diag := range diags {
		severity := string(diag.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.DiagnosticsBySeverity[severity]++
		r.Stats.DiagnosticsByRule[diag.RuleID]++
	}
}
