package rop

import (
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failure. A nil err is replaced by ErrNilFailure so the
// failure track always carries something to inspect.
func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a failure keeping its id and creation time.
// It panics when from is a success: there is no payload of type Out to carry.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("rop: FailFrom called with a success")
	}
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

// Get returns the payload and error in Go's usual (value, error) shape.
func (r Result[T]) Get() (T, error) {
	return r.result, r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.id != uuid.Nil
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) isResult() bool {
	return r.id != uuid.Nil
}

func IsSuccess[T any](r Result[T]) bool {
	return r.IsSuccess()
}

func IsFailure[T any](r Result[T]) bool {
	return r.IsFailure()
}

// IsResult reports whether v holds a constructed Result of any payload type,
// either by value or through a non-nil pointer. Plain values, nil and the
// zero Result are not results.
func IsResult(v any) bool {
	if IsNil(v) {
		return false
	}
	r, ok := v.(resultLike)
	return ok && r.isResult()
}
