package ascii

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/No8Dev/No8.Ascii-sub002/internal/errors"
)

// Job is one independent tree to arrange in a container of the given size.
type Job struct {
	Root   Layoutable
	Width  float64
	Height float64
}

// ArrangeAll arranges independent trees concurrently on e, at most
// GOMAXPROCS at a time. Jobs must not share nodes.
//
// Once ctx is cancelled no further jobs start and ctx's error is returned;
// jobs already running finish. A panic inside a job, typically from a
// measure function, is recovered and returned as an ErrCodeInternal error
// naming the job, and stops jobs that have not started yet.
func ArrangeAll(ctx context.Context, e *Engine, jobs ...Job) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			if gctx.Err() != nil {
				return nil
			}
			defer func() {
				if r := recover(); r != nil {
					err = errors.New(errors.ErrCodeInternal, "arrange job %d: panic: %v", i, r)
				}
			}()
			e.Arrange(job.Root, job.Width, job.Height)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errors.Wrap(errors.ErrCodeCanceled, err, "arrange %d trees", len(jobs))
	}
	return nil
}
