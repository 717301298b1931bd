// Package worker implements a data-parallel worker pool: one task per
// article, communicating only via the output writer, fanned out with
// golang.org/x/sync/errgroup to bound concurrent work.
package worker

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Job is one unit of dispatchable work: an article index and its raw
// input, processed and written out however the caller's ProcessFunc
// chooses.
type Job[T any] struct {
	Index int
	Item  T
}

// ProcessFunc transforms one job. Errors from a ParseError/EncodingError
// class are expected to be handled inside f itself (the core is
// resilient by default); only I/O-class errors should be returned here,
// since a returned error cancels the group's context for all other
// in-flight jobs.
type ProcessFunc[T any] func(ctx context.Context, job Job[T]) error

// Pool runs jobs across a bounded number of goroutines and waits for
// all of them; after the first hard error the jobs still to run are
// started with a cancelled context, and Run returns that first error.
type Pool[T any] struct {
	Concurrency int
	Logger      *slog.Logger
}

// Run dispatches every item in items to f across p.Concurrency workers.
// Each job is tagged with a uuid purely for log correlation;
// the id never affects control flow or job ordering.
func (p *Pool[T]) Run(ctx context.Context, items []T, f ProcessFunc[T]) error {
	g, gctx := errgroup.WithContext(ctx)
	if p.Concurrency > 0 {
		g.SetLimit(p.Concurrency)
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	for i, item := range items {
		job := Job[T]{Index: i, Item: item}
		g.Go(func() error {
			jobID := uuid.NewString()
			logger.Debug("processing job", "job_id", jobID, "index", job.Index)
			if err := f(gctx, job); err != nil {
				logger.Error("job failed", "job_id", jobID, "index", job.Index, "error", err)
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
