package gridsearch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Parallel calls f for each element of in, running at most limit calls at a
// time (limit <= 0 means unbounded). The outputs are in the order of in.
//
// The first error cancels the context passed to the remaining calls and is
// returned.
func Parallel[I, O any](ctx context.Context, in []I, limit int, f func(context.Context, I) (O, error)) ([]O, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	out := make([]O, len(in))
	for i, v := range in {
		i, v := i, v
		g.Go(func() error {
			o, err := f(ctx, v)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
