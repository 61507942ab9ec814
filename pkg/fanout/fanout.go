// Package fanout resolves a list of ids through independent lookups and joins
// on their collective completion.
package fanout

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of the lookup for one id. Exactly one of Value or Err
// is meaningful.
type Outcome[T any] struct {
	ID    string
	Value T
	Err   error
}

func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

type LookupFunc[T any] func(ctx context.Context, id string) (T, error)

// Resolve issues one lookup per id and returns once every lookup has
// completed, successfully or not. Outcomes are in the order of ids. A limit
// above zero caps the number of lookups in flight; zero or less is unbounded.
//
// Resolve itself never fails: lookup errors, including a cancelled ctx, are
// reported in the matching Outcome.
func Resolve[T any](ctx context.Context, ids []string, limit int, lookup LookupFunc[T]) []Outcome[T] {
	outcomes := make([]Outcome[T], len(ids))
	if len(ids) == 0 {
		return outcomes
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, id := range ids {
		g.Go(func() error {
			// each goroutine owns outcomes[i]; no other writer touches it
			outcomes[i].ID = id
			if err := ctx.Err(); err != nil {
				outcomes[i].Err = err
				return nil
			}
			outcomes[i].Value, outcomes[i].Err = lookup(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Values returns the successful values, keeping outcome order.
func Values[T any](outcomes []Outcome[T]) []T {
	values := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if o.OK() {
			values = append(values, o.Value)
		}
	}
	return values
}

// Failures returns the failed outcomes, keeping outcome order.
func Failures[T any](outcomes []Outcome[T]) []Outcome[T] {
	var failed []Outcome[T]
	for _, o := range outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}
