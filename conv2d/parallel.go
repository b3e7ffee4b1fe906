package conv2d

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// convolveParallel distributes visited rows round-robin over workers.
// Each worker owns its own row filler and writes only to its own output
// rows, so the result matches the sequential driver exactly.
func convolveParallel[T Number](
	ctx context.Context,
	out, input, kernel Matrix[T],
	padding T,
	plan rowPlan,
	colStride, workers int,
) error {
	workers = min(workers, plan.count)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			fill := newRowFiller(input, kernel, padding)
			for i := w; i < plan.count; i += workers {
				if err := egCtx.Err(); err != nil {
					return fmt.Errorf("conv2d: row %d: %w", plan.inputRow(i), err)
				}
				fill(outputRow(out, plan, i), plan.inputRow(i), colStride, plan.compact)
			}
			return nil
		})
	}

	return eg.Wait()
}
