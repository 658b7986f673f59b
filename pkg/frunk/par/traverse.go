package par

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/frunk/pkg/frunk"
	"github.com/ib-77/frunk/pkg/frunk/validated"
)

// Traverse runs fn over every item concurrently and accumulates the outcomes
// the way validated.Sequence does: all values in input order, or every
// failure in input order.
//
// Failures returned by fn are data and never cancel the other calls. The
// returned error is non-nil only when ctx ends before every call has run.
func Traverse[T, U, E any](ctx context.Context, items []T,
	fn func(ctx context.Context, item T) frunk.Result[U, E]) (frunk.Result[[]U, []E], error) {

	results := make([]frunk.Result[U, E], len(items))
	logger := Logger(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(ctx, runtime.GOMAXPROCS(0)))

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = fn(gctx, item)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return frunk.Result[[]U, []E]{}, err
	}

	out := validated.Sequence(results)
	logger.DebugContext(ctx, "traverse finished", "items", len(items), "failures", len(out.Error()))
	return out, nil
}
