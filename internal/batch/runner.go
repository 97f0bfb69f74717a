package batch

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"tubetag/internal/logging"
	"tubetag/internal/titleparse"
)

// Result pairs an input line with its parse outcome. Err is non-nil only for
// lines that were rejected before parsing; Metadata is then zero.
type Result struct {
	Line     int
	Input    titleparse.Input
	Metadata titleparse.Metadata
	Err      error
}

// Runner parses lines on a fixed pool of workers.
type Runner struct {
	RunID   string
	Workers int
	Logger  *slog.Logger
	Parser  *titleparse.Parser
}

// NewRunner returns a Runner with a fresh run identifier. A nil parser gets a
// default one that logs through logger.
func NewRunner(parser *titleparse.Parser, logger *slog.Logger, workers int) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if parser == nil {
		parser = titleparse.New(titleparse.WithLogger(logger))
	}
	return &Runner{
		RunID:   uuid.NewString(),
		Workers: workers,
		Logger:  logging.NewComponentLogger(logger, "batch"),
		Parser:  parser,
	}
}

// Run parses every line and returns results in input order. It stops early
// and returns the context error when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, lines []Line) ([]Result, error) {
	if len(lines) == 0 {
		return nil, ErrNoInput
	}
	if r.Parser == nil {
		return nil, errors.New("batch runner: parser is nil")
	}
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	if r.RunID != "" {
		ctx = logging.WithRunID(ctx, r.RunID)
	}
	runLogger := logging.WithContext(ctx, logger)

	workers := min(max(r.Workers, 1), len(lines))
	results := make([]Result, len(lines))
	jobs := make(chan int)
	start := time.Now()

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = r.parseLine(ctx, logger, lines[idx])
			}
		}()
	}

	cancelled := false
feed:
	for idx := range lines {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		select {
		case <-ctx.Done():
			cancelled = true
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled {
		logging.WarnWithContext(runLogger, "batch cancelled", "batch_cancelled",
			logging.Error(ctx.Err()),
			logging.String(logging.FieldImpact, "remaining lines were not parsed"),
			logging.String(logging.FieldErrorHint, "rerun the batch"),
		)
		return nil, ctx.Err()
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	runLogger.Info("batch complete",
		logging.Int("lines", len(lines)),
		logging.Int("failed", failed),
		logging.Int("workers", workers),
		logging.Duration("duration", time.Since(start).Round(time.Millisecond)),
	)
	return results, nil
}

func (r *Runner) parseLine(ctx context.Context, logger *slog.Logger, line Line) Result {
	res := Result{Line: line.Number, Input: line.Input}
	lineCtx := logging.WithLine(ctx, line.Number)
	if line.Err != nil {
		res.Err = line.Err
	} else if err := line.Input.Validate(); err != nil {
		res.Err = err
	}
	if res.Err != nil {
		logging.WithContext(lineCtx, logger).Debug("line rejected", logging.Error(res.Err))
		return res
	}
	res.Metadata = r.Parser.ParseContext(lineCtx, line.Input)
	return res
}
