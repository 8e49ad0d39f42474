package lint

import (
	"context"

	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

// LineContext provides everything a rule may inspect for one line.
//
// LineContext stores context.Context as a field rather than passing it to
// Check. It is a short-lived parameter object built once per line and shared
// by every rule evaluated on that line.
type LineContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// File is the parsed snapshot the line belongs to.
	File *pyast.FileSnapshot

	// Line is the current physical line, terminator included.
	Line pyast.SourceLine

	// Facts holds the syntactic facts recorded for this line.
	Facts LineFact

	// BlankRun is the number of blank lines immediately preceding this line.
	BlankRun int

	// scan is the lazily computed quote-aware scan of Line.
	scan *LineScan
}

// NewLineContext creates a LineContext for a single line.
func NewLineContext(
	ctx context.Context,
	file *pyast.FileSnapshot,
	line pyast.SourceLine,
	facts LineFact,
	blankRun int,
) *LineContext {
	return &LineContext{
		Ctx:      ctx,
		File:     file,
		Line:     line,
		Facts:    facts,
		BlankRun: blankRun,
	}
}

// Text returns the line content without its terminator.
func (lc *LineContext) Text() string {
	return lc.Line.Content()
}

// Scan returns the quote-aware scan of the line, computing it on first use.
func (lc *LineContext) Scan() LineScan {
	if lc.scan == nil {
		s := ScanLine(lc.Line.Content())
		lc.scan = &s
	}
	return *lc.scan
}
