package par

import "context"

// emit sends values on an unbuffered channel and closes it when done or when
// ctx ends first.
func emit[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			if ctx.Err() != nil {
				return
			}

			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

type span struct {
	index  int
	lo, hi int
}

// split cuts [0, n) into consecutive spans of at most size elements.
func split(n, size int) []span {
	if size <= 0 {
		size = 1
	}
	spans := make([]span, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, span{index: len(spans), lo: lo, hi: min(lo+size, n)})
	}
	return spans
}
