package pipe

import (
	"context"
	"errors"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
)

var (
	// ErrEmptyResult is reported when a step or the initial input is a zero
	// rop.Result that was never built by a constructor.
	ErrEmptyResult = rop.ErrEmptyResult

	// ErrInvalidStep is reported for a zero Step.
	ErrInvalidStep = errors.New("pipe: invalid step")
)

// Run threads initial through steps that all keep the same type.
// With no steps, a constructed initial is returned unchanged.
func Run[T any](ctx context.Context, initial rop.Result[T], steps ...Step[T, T]) rop.Result[T] {
	if !initial.IsSuccess() && !initial.IsFailure() {
		return rop.Fail[T](ErrEmptyResult)
	}
	if len(steps) == 0 {
		return initial
	}
	links := make([]link, len(steps))
	for i, s := range steps {
		links[i] = s.link(i)
	}
	return drive[T, T](ctx, initial, links)
}

func Pipe1[A, B any](ctx context.Context, initial rop.Result[A],
	s1 Step[A, B]) rop.Result[B] {
	return drive[A, B](ctx, initial, []link{s1.link(0)})
}

func Pipe2[A, B, C any](ctx context.Context, initial rop.Result[A],
	s1 Step[A, B], s2 Step[B, C]) rop.Result[C] {
	return drive[A, C](ctx, initial, []link{s1.link(0), s2.link(1)})
}

func Pipe3[A, B, C, D any](ctx context.Context, initial rop.Result[A],
	s1 Step[A, B], s2 Step[B, C], s3 Step[C, D]) rop.Result[D] {
	return drive[A, D](ctx, initial, []link{s1.link(0), s2.link(1), s3.link(2)})
}

func Pipe4[A, B, C, D, E any](ctx context.Context, initial rop.Result[A],
	s1 Step[A, B], s2 Step[B, C], s3 Step[C, D], s4 Step[D, E]) rop.Result[E] {
	return drive[A, E](ctx, initial, []link{s1.link(0), s2.link(1), s3.link(2), s4.link(3)})
}

func Pipe5[A, B, C, D, E, F any](ctx context.Context, initial rop.Result[A],
	s1 Step[A, B], s2 Step[B, C], s3 Step[C, D], s4 Step[D, E], s5 Step[E, F]) rop.Result[F] {
	return drive[A, F](ctx, initial, []link{s1.link(0), s2.link(1), s3.link(2), s4.link(3), s5.link(4)})
}

func Pipe6[A, B, C, D, E, F, G any](ctx context.Context, initial rop.Result[A],
	s1 Step[A, B], s2 Step[B, C], s3 Step[C, D], s4 Step[D, E], s5 Step[E, F], s6 Step[F, G]) rop.Result[G] {
	return drive[A, G](ctx, initial,
		[]link{s1.link(0), s2.link(1), s3.link(2), s4.link(3), s5.link(4), s6.link(5)})
}

// drive unwraps initial, runs the links and types the outcome back.
// A failed initial comes back as-is, re-typed, before any step runs.
func drive[In, Out any](ctx context.Context, initial rop.Result[In], links []link) rop.Result[Out] {
	if initial.IsFailure() {
		core.Skip(ctx, 0, len(links), initial.Err())
		return rop.FailFrom[In, Out](initial)
	}
	if !initial.IsSuccess() {
		return rop.Fail[Out](ErrEmptyResult)
	}

	res := run(ctx, initial.Result(), links)
	if res.IsFailure() {
		return rop.FailFrom[any, Out](res)
	}
	return rop.Success(cast[Out](res.Result()))
}

func run(ctx context.Context, current any, links []link) rop.Result[any] {
	var failure rop.Result[any]
	failed := false

	for i, l := range links {
		if failed {
			break
		}

		if err := ctx.Err(); err != nil {
			failure, failed = rop.Fail[any](err), true
			core.Skip(ctx, i, len(links), err)
			continue
		}

		stepCtx, done := core.Observe(ctx, l.info)
		res := rop.Catch(func() rop.Result[any] {
			return l.call(stepCtx, current)
		})
		done(res)

		if res.IsFailure() {
			failure, failed = res, true
			core.Skip(ctx, i+1, len(links), res.Err())
			continue
		}
		current = res.Result()
	}

	if failed {
		return failure
	}
	return rop.Success(current)
}
