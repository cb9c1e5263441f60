package skiplist

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ExtendParallel inserts values into the list using multiple
// goroutines. It exists because the engine's Insert is already
// lock-free and safe to call concurrently; ExtendParallel is ordinary
// ingestion glue layered on top; it adds no synchronization of its own
// beyond what Insert already provides, and returns a non-nil error
// only if ctx is canceled before all values are processed.
func (l *List[T]) ExtendParallel(ctx context.Context, values []T) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(values) {
		workers = len(values)
	}
	if workers <= 1 {
		for _, v := range values {
			if err := ctx.Err(); err != nil {
				return err
			}
			l.Insert(v)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (len(values) + workers - 1) / workers
	for start := 0; start < len(values); start += chunk {
		end := start + chunk
		if end > len(values) {
			end = len(values)
		}
		slice := values[start:end]
		g.Go(func() error {
			for _, v := range slice {
				if err := gctx.Err(); err != nil {
					return err
				}
				l.Insert(v)
			}
			return nil
		})
	}
	return g.Wait()
}

// ExtendParallel inserts values into the set using multiple goroutines.
func (s *Set[T]) ExtendParallel(ctx context.Context, values []T) error {
	return s.List.ExtendParallel(ctx, values)
}
