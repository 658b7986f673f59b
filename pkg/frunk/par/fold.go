package par

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/frunk/pkg/frunk/monoid"
)

// CombineAll folds xs with m using several goroutines. xs is cut into
// consecutive chunks, each chunk is folded on its own and the partial results
// are folded in chunk order, so the result equals monoid.Fold(m, xs...) for
// any lawful instance, commutative or not.
//
// It returns the context error if ctx ends before every chunk is folded.
func CombineAll[T any](ctx context.Context, m monoid.Monoid[T], xs []T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	if len(xs) == 0 {
		return m.Empty(), nil
	}

	workers := Workers(ctx, runtime.GOMAXPROCS(0))
	spans := split(len(xs), ChunkSize(ctx, (len(xs)+workers-1)/workers))
	workers = min(workers, len(spans))
	partials := make([]T, len(spans))

	logger := Logger(ctx)
	logger.DebugContext(ctx, "combine started", "values", len(xs), "chunks", len(spans), "workers", workers)

	g, gctx := errgroup.WithContext(ctx)
	in := emit(gctx, spans)

	for w := range workers {
		g.Go(func() error {
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				case s, ok := <-in:
					if !ok {
						// emit also closes in when gctx ends early
						return gctx.Err()
					}
					partials[s.index] = monoid.Fold(m, xs[s.lo:s.hi]...)
					logger.DebugContext(gctx, "chunk folded", "worker", w, "chunk", s.index, "size", s.hi-s.lo)
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		var zero T
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	return monoid.Fold(m, partials...), nil
}
