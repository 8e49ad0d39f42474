package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/pystylecheck/pkg/runner"
)

const (
	wordFile  = "file"
	wordFiles = "files"
)

// plural picks the singular or plural word for n.
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "12 issues (8 warnings, 4 info) in 3 files, 1 file not checked".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	var parts []string

	if stats.DiagnosticsTotal == 0 {
		parts = append(parts, s.Success.Render("No issues found")+
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)",
				stats.FilesProcessed, plural(stats.FilesProcessed, wordFile, wordFiles))))
	} else {
		issueWord := plural(stats.DiagnosticsTotal, "issue", "issues")

		var severityParts []string
		if errors := stats.DiagnosticsBySeverity["error"]; errors > 0 {
			severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", errors)))
		}
		if warnings := stats.DiagnosticsBySeverity["warning"]; warnings > 0 {
			severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", warnings)))
		}
		if infos := stats.DiagnosticsBySeverity["info"]; infos > 0 {
			severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", infos)))
		}

		main := fmt.Sprintf("%d %s", stats.DiagnosticsTotal, issueWord)
		if len(severityParts) > 0 {
			main = fmt.Sprintf("%d %s (%s)", stats.DiagnosticsTotal, issueWord, strings.Join(severityParts, ", "))
		}
		parts = append(parts, fmt.Sprintf("%s in %d %s",
			main, stats.FilesWithIssues, plural(stats.FilesWithIssues, wordFile, wordFiles)))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s not checked",
			stats.FilesErrored, plural(stats.FilesErrored, wordFile, wordFiles))))
	}

	return strings.Join(parts, ", ") + "\n"
}
