package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowFunc renders a single image row
type RowFunc func(ctx context.Context, row int) error

// WorkerPool renders rows in parallel. Every row is handed to exactly one
// worker, so workers never write the same pixels.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool with numWorkers goroutines (all CPUs if <= 0)
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run calls fn for every row in [0, rows) and waits for them to finish.
// It stops handing out rows once ctx is done or any row fails.
func (wp *WorkerPool) Run(ctx context.Context, rows int, fn RowFunc) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for row := 0; row < rows; row++ {
		if gctx.Err() != nil {
			break
		}
		row := row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, row)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
