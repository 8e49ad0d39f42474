package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/pystylecheck/pkg/fsutil"
)

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates the file could not be parsed.
	ErrParseFailure = errors.New("parse failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult contains the diagnostics for the file.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// Info is the file state at read time (nil for in-memory content).
	Info *fsutil.FileInfo
}

// Pipeline reads a file and runs it through the engine.
type Pipeline struct {
	// Engine is the engine used for parsing and rule execution.
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile reads path from disk and checks it.
// Read errors are wrapped with ErrFileNotFound or ErrPermissionDenied where
// applicable; syntax errors are wrapped with ErrParseFailure.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*PipelineResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, content)
	if err != nil {
		return nil, err
	}
	result.Info = info

	return result, nil
}

// ProcessContent checks in-memory content without file I/O.
func (p *Pipeline) ProcessContent(ctx context.Context, path string, content []byte) (*PipelineResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
	default:
	}

	fileResult, err := p.Engine.LintFile(ctx, path, content)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrParseFailure, err)
	}

	return &PipelineResult{
		FileResult: fileResult,
		Path:       path,
	}, nil
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}
