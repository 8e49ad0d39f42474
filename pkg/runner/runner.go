package runner

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/pystylecheck/pkg/lint"
)

// Runner orchestrates multi-file checking using a lint.Pipeline.
type Runner struct {
	// Pipeline handles per-file reading and checking.
	Pipeline *lint.Pipeline
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and checks them concurrently.
// Each outcome is stored at the index of its path, so Result.Files is in
// discovery order no matter which worker finishes first. Per-file read and
// parse errors are recorded in the outcome; only discovery failures and
// cancellation are returned as errors.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	return r.RunFiles(ctx, files, opts.Jobs)
}

// RunFiles checks an already discovered list of files, preserving its order.
func (r *Runner) RunFiles(ctx context.Context, files []string, jobs int) (*Result, error) {
	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indices are unique per goroutine, so no mutex is needed.
	outcomes := make([]FileOutcome, len(files))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(min(jobs, len(files)))

	for idx, path := range files {
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			outcome := FileOutcome{Path: path}
			pr, err := r.Pipeline.ProcessFile(gctx, path)
			if err != nil {
				outcome.Error = err
			} else {
				outcome.Result = pr
			}
			outcomes[idx] = outcome

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("run cancelled: %w", err)
	}

	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}

	return result, nil
}
