// Package fetch runs a group of independent, named lookups concurrently and
// merges their results. A view that needs data from several queries (home
// counts, a detail page and its dependents, a form and its option lists)
// assembles it through one All call instead of sequential round-trips.
package fetch

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Func is a single named lookup within a group.
type Func func(ctx context.Context) (any, error)

// All executes every operation concurrently and waits for the whole group.
// It returns either the complete name-to-result mapping or the first error;
// results of operations still in flight when one fails are discarded.
func All(ctx context.Context, ops map[string]Func) (map[string]any, error) {
	g, gctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	results := make(map[string]any, len(ops))

	for name, op := range ops {
		name, op := name, op
		g.Go(func() error {
			value, err := op(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			results[name] = value
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Get retrieves a typed result from a completed group. The zero value is
// returned when the key is missing or holds a different type.
func Get[T any](results map[string]any, name string) T {
	value, _ := results[name].(T)
	return value
}
