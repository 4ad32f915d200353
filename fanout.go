package vibewall

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FanOut calls fn n times concurrently and waits for all of them. The join is
// all-or-nothing: the first failure cancels the context passed to the
// remaining calls and is returned with no partial results.
func FanOut(ctx context.Context, n int, fn func(ctx context.Context) ([]byte, error)) ([][]byte, error) {
	results := make([][]byte, n)
	g, gctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			img, err := fn(gctx)
			if err != nil {
				return err
			}
			results[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
