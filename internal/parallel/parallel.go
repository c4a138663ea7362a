// Package parallel runs independent API calls with bounded concurrency.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one call.
type Result[R any] struct {
	Value R
	Err   error
}

// Map calls fn for every item with at most limit calls in flight and returns
// the results in the order of items. A failing call does not cancel the others.
func Map[T, R any](ctx context.Context, items []T, limit int, fn func(ctx context.Context, item T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))

	var g errgroup.Group
	g.SetLimit(max(limit, 1))

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err

				return nil
			}

			results[i].Value, results[i].Err = fn(ctx, item)

			return nil
		})
	}

	_ = g.Wait()

	return results
}
