package async

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
	"github.com/ib-77/rail/pkg/rop/solo"
)

var (
	// ErrNoOutcome is reported when a promise channel closes without a value.
	ErrNoOutcome = errors.New("async: promise closed without outcome")

	// ErrAllInternal wraps a failure of All's own orchestration, as opposed
	// to a failure of one of the awaited futures.
	ErrAllInternal = errors.New("async: all: internal failure")
)

// ErrorMapper rewrites the error of a rejected operation.
type ErrorMapper func(err error) error

// Outcome is what a bare asynchronous operation delivers on its channel.
type Outcome[T any] struct {
	Value T
	Err   error
}

// FromAsync runs fn in the background. A returned error or a panic becomes a
// failure, rewritten by mapErr when given; panics with non-error values are
// first normalized by rop.ToError.
func FromAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error),
	mapErr ...ErrorMapper) *Future[T] {
	return Go(ctx, func(ctx context.Context) (res rop.Result[T]) {
		defer func() {
			if p := recover(); p != nil {
				res = rop.Fail[T](rejection(p, mapErr))
			}
		}()

		v, err := fn(ctx)
		if err != nil {
			return rop.Fail[T](rejection(err, mapErr))
		}
		return rop.Success(v)
	})
}

// FromPromise waits for the first Outcome delivered on ch.
func FromPromise[T any](ctx context.Context, ch <-chan Outcome[T], mapErr ...ErrorMapper) *Future[T] {
	return FromAsync(ctx, func(ctx context.Context) (T, error) {
		var zero T
		if ch == nil {
			return zero, ErrNoOutcome
		}

		select {
		case o, ok := <-ch:
			if !ok {
				return zero, ErrNoOutcome
			}
			return o.Value, o.Err
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}, mapErr...)
}

func rejection(reason any, mapErr []ErrorMapper) error {
	err := rop.ToError(reason)
	for _, m := range mapErr {
		if m != nil {
			err = m(err)
		}
	}
	return err
}

func Map[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) Out) *Future[Out] {
	return Go(ctx, func(ctx context.Context) rop.Result[Out] {
		return solo.Map(ctx, input.Await(ctx), onSuccess)
	})
}

func MapError[T any](ctx context.Context, input *Future[T],
	onError func(ctx context.Context, err error) error) *Future[T] {
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		return solo.MapError(ctx, input.Await(ctx), onError)
	})
}

func Chain[In, Out any](ctx context.Context, input *Future[In],
	onSuccess func(ctx context.Context, r In) *Future[Out]) *Future[Out] {
	return Go(ctx, func(ctx context.Context) rop.Result[Out] {
		return solo.Chain(ctx, input.Await(ctx), func(ctx context.Context, r In) rop.Result[Out] {
			return onSuccess(ctx, r).Await(ctx)
		})
	})
}

// WithFinally settles with input's result after cleanup has run. cleanup runs
// exactly once, on success and on failure alike, and never before input has
// settled. When ctx ends first the returned future fails with ctx.Err() and
// cleanup is left to run in the background once input settles.
func WithFinally[T any](ctx context.Context, input *Future[T],
	cleanup func(ctx context.Context)) *Future[T] {
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		res := input.Await(ctx)

		select {
		case <-input.Done():
			cleanup(ctx)
		default:
			go finallyAfter(ctx, input.Done(), cleanup)
		}
		return res
	})
}

// finallyAfter runs cleanup once done is closed. Nobody awaits the outcome
// any more, so a panic in cleanup is only logged.
func finallyAfter(ctx context.Context, done <-chan struct{}, cleanup func(ctx context.Context)) {
	<-done
	defer func() {
		if p := recover(); p != nil {
			core.GetLogger(ctx).Warnf("%s: deferred cleanup failed: %s",
				core.GetPipelineName(ctx), rop.ToError(p))
		}
	}()
	cleanup(context.WithoutCancel(ctx))
}

// ErrorBoundary runs a zero-argument operation under a fixed error mapping.
type ErrorBoundary[T any] func(ctx context.Context, op func(ctx context.Context) (T, error)) *Future[T]

func NewErrorBoundary[T any](mapErr ErrorMapper) ErrorBoundary[T] {
	return func(ctx context.Context, op func(ctx context.Context) (T, error)) *Future[T] {
		return FromAsync(ctx, op, mapErr)
	}
}

// All awaits every future concurrently. The values keep the order of
// futures, not the order of completion. If any future failed, the failure
// with the lowest index is returned as-is.
func All[T any](ctx context.Context, futures ...*Future[T]) *Future[[]T] {
	return Go(ctx, func(ctx context.Context) rop.Result[[]T] {
		results := make([]rop.Result[T], len(futures))

		g := &errgroup.Group{}
		for i, f := range futures {
			i, f := i, f
			g.Go(func() (err error) {
				defer func() {
					if p := recover(); p != nil {
						err = rop.ToError(p)
					}
				}()
				results[i] = f.Await(ctx)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return rop.Fail[[]T](fmt.Errorf("%w: %w", ErrAllInternal, err))
		}

		values := make([]T, len(futures))
		for i, r := range results {
			if !r.IsSuccess() {
				return rop.FailFrom[T, []T](r)
			}
			values[i] = r.Result()
		}
		return rop.Success(values)
	})
}
