package async

import (
	"context"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/pipe"
)

// Await turns a Future-returning function into a pipeline step. The step
// blocks until the future settles, so the next step never starts early.
func Await[In, Out any](fn func(ctx context.Context, in In) *Future[Out]) pipe.Step[In, Out] {
	return pipe.Named("await", pipe.Then(func(ctx context.Context, in In) rop.Result[Out] {
		return fn(ctx, in).Await(ctx)
	}))
}

func Run[T any](ctx context.Context, initial *Future[T], steps ...pipe.Step[T, T]) *Future[T] {
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		return pipe.Run(ctx, initial.Await(ctx), steps...)
	})
}

func Pipe1[A, B any](ctx context.Context, initial *Future[A],
	s1 pipe.Step[A, B]) *Future[B] {
	return Go(ctx, func(ctx context.Context) rop.Result[B] {
		return pipe.Pipe1(ctx, initial.Await(ctx), s1)
	})
}

func Pipe2[A, B, C any](ctx context.Context, initial *Future[A],
	s1 pipe.Step[A, B], s2 pipe.Step[B, C]) *Future[C] {
	return Go(ctx, func(ctx context.Context) rop.Result[C] {
		return pipe.Pipe2(ctx, initial.Await(ctx), s1, s2)
	})
}

func Pipe3[A, B, C, D any](ctx context.Context, initial *Future[A],
	s1 pipe.Step[A, B], s2 pipe.Step[B, C], s3 pipe.Step[C, D]) *Future[D] {
	return Go(ctx, func(ctx context.Context) rop.Result[D] {
		return pipe.Pipe3(ctx, initial.Await(ctx), s1, s2, s3)
	})
}

func Pipe4[A, B, C, D, E any](ctx context.Context, initial *Future[A],
	s1 pipe.Step[A, B], s2 pipe.Step[B, C], s3 pipe.Step[C, D], s4 pipe.Step[D, E]) *Future[E] {
	return Go(ctx, func(ctx context.Context) rop.Result[E] {
		return pipe.Pipe4(ctx, initial.Await(ctx), s1, s2, s3, s4)
	})
}

func Pipe5[A, B, C, D, E, F any](ctx context.Context, initial *Future[A],
	s1 pipe.Step[A, B], s2 pipe.Step[B, C], s3 pipe.Step[C, D], s4 pipe.Step[D, E],
	s5 pipe.Step[E, F]) *Future[F] {
	return Go(ctx, func(ctx context.Context) rop.Result[F] {
		return pipe.Pipe5(ctx, initial.Await(ctx), s1, s2, s3, s4, s5)
	})
}

func Pipe6[A, B, C, D, E, F, G any](ctx context.Context, initial *Future[A],
	s1 pipe.Step[A, B], s2 pipe.Step[B, C], s3 pipe.Step[C, D], s4 pipe.Step[D, E],
	s5 pipe.Step[E, F], s6 pipe.Step[F, G]) *Future[G] {
	return Go(ctx, func(ctx context.Context) rop.Result[G] {
		return pipe.Pipe6(ctx, initial.Await(ctx), s1, s2, s3, s4, s5, s6)
	})
}
