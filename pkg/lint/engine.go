package lint

import (
	"context"
	"fmt"

	"github.com/yaklabco/pystylecheck/pkg/pyast"
)

// FileResult contains the results of checking a single file.
type FileResult struct {
	// Snapshot is the parsed file.
	Snapshot *pyast.FileSnapshot

	// Facts is the per-line fact table extracted from the syntax tree.
	Facts LineFacts

	// Diagnostics contains all issues found, sorted by line then rule ID.
	Diagnostics []Diagnostic
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// Engine coordinates parsing, fact extraction, and rule execution.
type Engine struct {
	// Parser parses Python files into FileSnapshots.
	Parser Parser

	// Registry holds the rules to run.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and checks a single file.
// A syntax error is returned as an error and no diagnostics are produced.
func (e *Engine) LintFile(ctx context.Context, path string, content []byte) (*FileResult, error) {
	snapshot, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, err
	}

	return e.LintSnapshot(ctx, snapshot)
}

// LintSnapshot checks an already parsed snapshot.
//
// Lines are visited once, in order. A blank line (terminator only) extends
// the blank run and is not checked. Every other line is checked by each rule
// in ID order, after which the blank run resets to zero.
func (e *Engine) LintSnapshot(ctx context.Context, snapshot *pyast.FileSnapshot) (*FileResult, error) {
	facts := ExtractFacts(snapshot.Root)
	rules := e.Registry.Rules()

	result := &FileResult{
		Snapshot: snapshot,
		Facts:    facts,
	}

	blankRun := 0
	for _, line := range snapshot.Lines {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("checking cancelled: %w", ctx.Err())
		default:
		}

		if line.IsBlank() {
			blankRun++
			continue
		}

		lc := NewLineContext(ctx, snapshot, line, facts.At(line.Number), blankRun)
		for _, rule := range rules {
			msg, ok := rule.Check(lc)
			if !ok {
				continue
			}
			result.Diagnostics = append(result.Diagnostics,
				NewDiagnostic(rule, snapshot.Path, line.Number, msg).Build())
		}

		blankRun = 0
	}

	SortDiagnostics(result.Diagnostics)

	return result, nil
}
