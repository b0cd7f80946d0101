package numeric

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// FilterAll filters every input with the same style in parallel.
// Results keep the order of inputs. Filtering a single line is cheap, but
// piped batch input can be arbitrarily large, so the work is bounded.
func FilterAll(ctx context.Context, inputs []string, style Style) []string {
	results := make([]string, len(inputs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, in := range inputs {
		g.Go(func() error {
			results[i] = Filter(in, style)
			return nil // Filter is total, nothing to fail
		})
	}

	_ = g.Wait()

	return results
}
