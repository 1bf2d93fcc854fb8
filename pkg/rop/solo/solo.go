package solo

import (
	"context"
	"errors"

	"github.com/ib-77/rail/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Result[T] {

	if input.IsSuccess() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return input
		} else {
			return rop.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Result[T]) rop.Result[T] {

			if current.IsFailure() {
				e := rop.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return current
			}

			return rop.Fail[T](err)
		},
		inputsF...,
	)
}

// Chain feeds a successful payload into a step that may itself fail and
// returns that step's result as-is.
func Chain[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func MapError[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error) error) rop.Result[T] {

	if input.IsFailure() {
		return rop.Fail[T](onError(ctx, input.Err()))
	}
	return input
}

// Recover gives a failure a second chance through onError.
func Recover[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() {
		return onError(ctx, input.Err())
	}
	return input
}

// Tap runs a side effect on any result. A panic inside sideEffect is not
// recovered.
func Tap[T any](ctx context.Context,
	input rop.Result[T],
	sideEffect func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	sideEffect(ctx, input)
	return input
}

func TapSuccess[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}

	return input
}

func TapError[T any](ctx context.Context,
	input rop.Result[T],
	onError func(ctx context.Context, err error)) rop.Result[T] {

	if input.IsFailure() {
		onError(ctx, input.Err())
	}

	return input
}

// DoubleMap maps a success with onSuccess. On failure onError observes the
// error and the failure is passed through re-typed.
func DoubleMap[In any, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error)) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}

	onError(ctx, failure(input))
	if !input.IsFailure() {
		return rop.Fail[Out](rop.ErrEmptyResult)
	}
	return rop.FailFrom[In, Out](input)
}

func Try[In any, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return rop.Fail[Out](err)
		}

		return rop.Success(out)
	}

	return rop.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input rop.Result[T],
	maybeErr func(ctx context.Context, in T) error) rop.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(ctx, input.Result())
		if err != nil {
			return rop.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

// Unwrap returns the payload or panics with the failure's error. A zero
// Result panics with rop.ErrEmptyResult.
func Unwrap[T any](input rop.Result[T]) T {
	if input.IsSuccess() {
		return input.Result()
	}
	panic(failure(input))
}

func UnwrapOr[T any](input rop.Result[T], fallback T) T {
	if input.IsSuccess() {
		return input.Result()
	}
	return fallback
}

// Match folds input into a single value. A zero Result is handed to onError
// as rop.ErrEmptyResult.
func Match[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, failure(input))
}

// failure is the error of a non-success Result; a zero Result has none of
// its own.
func failure[T any](input rop.Result[T]) error {
	if input.IsFailure() {
		return input.Err()
	}
	return rop.ErrEmptyResult
}

func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil || !rop.IsNil(ctx.Err()) {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if !rop.IsNil(ctx.Err()) {
		return finalResult
	}

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			if !rop.IsNil(ctx.Err()) {
				return finalResult
			}

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
