// SPDX-License-Identifier: MIT

package calc

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmatrix/internal/logging"
)

// RunBatch evaluates jobs concurrently with at most workers in flight and
// returns one Result per job in input order. A failing job does not stop the
// batch: its error is kept in Result.Err. The returned error is non-nil only
// when ctx is cancelled before every job was started.
//
// Each job builds and releases its own matrices, so no matrix is ever shared
// between goroutines.
func RunBatch(ctx context.Context, jobs []Job, workers int, log logging.Logger) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logging.Nop()
	}
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range jobs {
		i := i
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = Result{Name: jobs[i].Name, Op: jobs[i].Op, Err: err}
				return err
			}
			start := time.Now()
			res, err := Evaluate(jobs[i])
			results[i] = res
			if err != nil {
				log.Error("job failed", err, logging.Int("index", i), logging.String("name", jobs[i].Name), logging.String("op", string(jobs[i].Op)))
				return nil
			}
			log.Debug("job done", logging.Int("index", i), logging.String("name", jobs[i].Name),
				logging.String("op", string(jobs[i].Op)), logging.Duration("took", time.Since(start)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("calc: batch interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("calc: batch interrupted: %w", err)
	}

	return results, nil
}
