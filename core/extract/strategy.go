// ABOUTME: Generic ordered-strategy combinator: first accepted result wins
// ABOUTME: Strategy failures are swallowed as rejections, never propagated

package extract

import (
	"context"
	"fmt"

	"notegrab-api/core/interfaces"
)

// strategy is one prioritized way of producing an extraction result
type strategy[T any] struct {
	name    string
	attempt func(ctx context.Context) (T, error)
}

// firstAccepted runs strategies strictly in order and returns the first
// result the acceptance predicate passes. Each strategy is attempted at
// most once; a later strategy never starts before the former's result
// is known. Errors and panics count as rejection for that strategy
// only. Exhausting every strategy returns ok=false, which callers treat
// as a normal negative outcome.
func firstAccepted[T any](ctx context.Context, logger interfaces.Logger, goal string, strategies []strategy[T], accept func(T) bool) (T, bool) {
	for _, s := range strategies {
		result, err := runStrategy(ctx, s)
		if err != nil {
			if logger != nil {
				logger.Debug("extraction strategy rejected", map[string]interface{}{
					"goal":     goal,
					"strategy": s.name,
					"error":    err.Error(),
				})
			}
			continue
		}
		if accept(result) {
			if logger != nil {
				logger.Debug("extraction strategy accepted", map[string]interface{}{
					"goal":     goal,
					"strategy": s.name,
				})
			}
			return result, true
		}
	}

	var zero T
	return zero, false
}

// runStrategy invokes one strategy, converting panics into errors so a
// malformed payload can never take down the whole extraction call.
func runStrategy[T any](ctx context.Context, s strategy[T]) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("strategy %s panicked: %v", s.name, r)
		}
	}()
	return s.attempt(ctx)
}
