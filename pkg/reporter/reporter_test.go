package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/pystylecheck/pkg/config"
	"github.com/yaklabco/pystylecheck/pkg/lint"
	"github.com/yaklabco/pystylecheck/pkg/reporter"
	"github.com/yaklabco/pystylecheck/pkg/runner"
)

func diag(path string, line int, id, name, msg string, sev config.Severity) lint.Diagnostic {
	return lint.Diagnostic{FilePath: path, Line: line, RuleID: id, RuleName: name, Message: msg, Severity: sev}
}

// sampleResult has two checked files and one that failed to parse.
func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "pkg/a.py",
				Result: &lint.PipelineResult{
					Path: "pkg/a.py",
					FileResult: &lint.FileResult{Diagnostics: []lint.Diagnostic{
						diag("pkg/a.py", 2, "S003", "semicolon", "Unnecessary semicolon", config.SeverityWarning),
						diag("pkg/a.py", 3, "S005", "todo", "TODO found", config.SeverityInfo),
					}},
				},
			},
			{
				Path:  "pkg/b.py",
				Error: fmt.Errorf("%w: line 1: invalid syntax", lint.ErrParseFailure),
			},
			{
				Path: "pkg/c.py",
				Result: &lint.PipelineResult{
					Path: "pkg/c.py",
					FileResult: &lint.FileResult{Diagnostics: []lint.Diagnostic{
						diag("pkg/c.py", 1, "S001", "line-length", "Too long", config.SeverityWarning),
					}},
				},
			},
		},
		Stats: runner.Stats{
			FilesDiscovered:       3,
			FilesProcessed:        2,
			FilesErrored:          1,
			FilesWithIssues:       2,
			DiagnosticsTotal:      3,
			DiagnosticsBySeverity: map[string]int{"warning": 2, "info": 1},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "sarif", input: "sarif", want: reporter.FormatSARIF},
		{name: "summary", input: "summary", want: reporter.FormatSummary},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatSummary.IsValid())
	assert.False(t, reporter.Format("diff").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "sarif reporter", format: reporter.FormatSARIF},
		{name: "summary reporter", format: reporter.FormatSummary},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_ContractLines(t *testing.T) {
	var out, errOut bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &out,
		ErrorWriter: &errOut,
		Color:       config.ColorAlways,
	})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.Equal(t,
		"pkg/a.py: Line 2: S003 Unnecessary semicolon\n"+
			"pkg/a.py: Line 3: S005 TODO found\n"+
			"pkg/c.py: Line 1: S001 Too long\n",
		out.String(), "diagnostic lines are never styled")
	assert.Contains(t, errOut.String(), "pkg/b.py")
	assert.Contains(t, errOut.String(), "error: parse failure")
}

func TestTextReporter_Summary(t *testing.T) {
	var out bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &out,
		ErrorWriter: &bytes.Buffer{},
		Color:       config.ColorNever,
		ShowSummary: true,
	})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "3 issues (2 warnings, 1 info) in 2 files, 1 file not checked\n")
}

func TestTextReporter_NilAndEmpty(t *testing.T) {
	var out bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &out})

	count, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Empty(t, out.String())
}

func TestTextReporter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := reporter.NewTextReporter(reporter.Options{Writer: &bytes.Buffer{}})
	_, err := rep.Report(ctx, sampleResult())
	require.ErrorIs(t, err, context.Canceled)
}

func TestJSONReporter(t *testing.T) {
	var out bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &out, Version: "1.2.3"})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var doc reporter.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	assert.Equal(t, "1.2.3", doc.ToolVersion)
	require.Len(t, doc.Files, 3)
	assert.Equal(t, "pkg/a.py", doc.Files[0].Path)
	assert.Equal(t, reporter.JSONDiagnostic{
		Line: 2, RuleID: "S003", RuleName: "semicolon", Severity: "warning", Message: "Unnecessary semicolon",
	}, doc.Files[0].Diagnostics[0])
	assert.NotEmpty(t, doc.Files[1].Error)
	assert.Empty(t, doc.Files[1].Diagnostics)

	assert.Equal(t, 3, doc.Summary.FilesChecked)
	assert.Equal(t, 2, doc.Summary.FilesWithIssues)
	assert.Equal(t, 1, doc.Summary.FilesErrored)
	assert.Equal(t, map[string]int{"warning": 2, "info": 1}, doc.Summary.BySeverity)
	assert.Equal(t, 1, doc.Summary.ByRule["S005"])
}

func TestJSONReporter_Compact(t *testing.T) {
	var out bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &out, Compact: true})

	_, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "\n  ")
	assert.Contains(t, out.String(), `"files":[]`)
}

func TestSARIFReporter(t *testing.T) {
	var out bytes.Buffer
	rep := reporter.NewSARIFReporter(reporter.Options{
		Writer:  &out,
		Version: "1.2.3",
		Rules: []config.RuleInfo{
			{ID: "S001", Name: "line-length", Description: "Lines should be at most 79 characters", Severity: config.SeverityWarning},
		},
	})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var doc reporter.SARIFOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	require.Len(t, doc.Runs, 1)
	run := doc.Runs[0]
	assert.Equal(t, "pystylecheck", run.Tool.Driver.Name)
	assert.Equal(t, "1.2.3", run.Tool.Driver.Version)

	ids := make([]string, 0, len(run.Tool.Driver.Rules))
	for _, rule := range run.Tool.Driver.Rules {
		ids = append(ids, rule.ID)
	}
	assert.Equal(t, []string{"S001", "S003", "S005"}, ids)
	assert.Equal(t, "Lines should be at most 79 characters", run.Tool.Driver.Rules[0].ShortDescription.Text)

	require.Len(t, run.Results, 3)
	assert.Equal(t, "note", run.Results[1].Level)
	assert.Equal(t, 3, run.Results[1].Locations[0].PhysicalLocation.Region.StartLine)
	assert.Equal(t, "pkg/a.py", run.Results[1].Locations[0].PhysicalLocation.ArtifactLocation.URI)
}

func TestSummaryFacade_ReturnsIssueCount(t *testing.T) {
	var out, errOut bytes.Buffer
	rep, err := reporter.New(reporter.Options{
		Writer:      &out,
		ErrorWriter: &errOut,
		Format:      reporter.FormatSummary,
		Color:       config.ColorNever,
	})
	require.NoError(t, err)

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.Contains(t, out.String(), "Rules Summary")
	assert.Contains(t, errOut.String(), "pkg/b.py: error:")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestJSONReporter_WriteError(t *testing.T) {
	rep := reporter.NewJSONReporter(reporter.Options{Writer: failingWriter{}})

	_, err := rep.Report(context.Background(), sampleResult())
	require.Error(t, err)
}
