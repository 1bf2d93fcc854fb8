package chain

import (
	"context"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Chain(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Try(c.ctx, c.result, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Tap performs a side effect on success without changing the result
func (c *Chain[T]) Tap(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.TapSuccess(c.ctx, c.result, onSuccess),
	}
}

// Or returns the first chain, c included, that holds a success. When none
// does, the failure of c is kept.
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt != nil && alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// RepeatUntil applies onSuccess at least once and keeps going while until
// reports false for the new value. It stops at the first failure.
func (c *Chain[T]) RepeatUntil(onSuccess func(context.Context, T) rop.Result[T],
	until func(context.Context, T) bool) *Chain[T] {

	for {
		if !c.result.IsSuccess() {
			return c
		}

		c = Then(c, onSuccess)

		if !c.result.IsSuccess() || until(c.ctx, c.result.Result()) {
			return c
		}
	}
}

// Match collapses the chain into a final value using solo.Match
func Match[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Match(c.ctx, c.result, onSuccess, onFailure)
}
