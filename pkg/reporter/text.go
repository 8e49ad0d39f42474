package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/pystylecheck/internal/ui/pretty"
	"github.com/yaklabco/pystylecheck/pkg/runner"
)

// TextReporter writes one contract line per diagnostic, files in result
// order. Files that could not be checked are reported on ErrorWriter.
type TextReporter struct {
	opts      Options
	styles    *pretty.Styles
	errStyles *pretty.Styles
	bw        *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	opts = opts.withDefaults()
	return &TextReporter{
		opts:      opts,
		styles:    pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		errStyles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.ErrorWriter)),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var total int

	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("report cancelled: %w", err)
		}

		if file.Error != nil {
			// Keep stdout and stderr in order for terminals showing both.
			if err := r.bw.Flush(); err != nil {
				return total, err
			}
			fmt.Fprint(r.opts.ErrorWriter, r.errStyles.FormatFileError(file.Path, file.Error))
			continue
		}

		for _, diag := range file.Diagnostics() {
			if _, err := fmt.Fprintln(r.bw, diag.String()); err != nil {
				return total, fmt.Errorf("write diagnostic: %w", err)
			}
			total++
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}
