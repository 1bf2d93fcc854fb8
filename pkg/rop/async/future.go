package async

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/pipe"
)

// ErrNilFuture is the failure produced by awaiting a nil *Future.
var ErrNilFuture = errors.New("async: nil future")

// closed is what a nil *Future reports as its done channel.
var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

type Future[T any] struct {
	done     chan struct{}
	settleIt sync.Once
	result   rop.Result[T]
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) settle(r rop.Result[T]) (ok bool) {
	if !r.IsSuccess() && !r.IsFailure() {
		r = rop.Fail[T](pipe.ErrEmptyResult)
	}
	f.settleIt.Do(func() {
		ok = true
		f.result = r
		close(f.done)
	})
	return ok
}

// Resolved returns a future already settled with r.
func Resolved[T any](r rop.Result[T]) *Future[T] {
	f := newFuture[T]()
	f.settle(r)
	return f
}

// Go runs fn in a new goroutine and settles the returned future with its
// result. A panic inside fn settles the future as a failure.
func Go[T any](ctx context.Context, fn func(ctx context.Context) rop.Result[T]) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.settle(rop.Catch(func() rop.Result[T] {
			return fn(ctx)
		}))
	}()
	return f
}

// Done is closed once the future is settled. A nil future counts as settled.
func (f *Future[T]) Done() <-chan struct{} {
	if f == nil {
		return closed
	}
	return f.done
}

// Await blocks until the future settles or ctx is done, whichever comes
// first. A settled future always wins over a done context.
func (f *Future[T]) Await(ctx context.Context) rop.Result[T] {
	if f == nil {
		return rop.Fail[T](ErrNilFuture)
	}

	select {
	case <-f.done:
		return f.result
	default:
	}

	select {
	case <-f.done:
		return f.result
	case <-ctx.Done():
		return rop.Fail[T](ctx.Err())
	}
}

// TryAwait returns the result without blocking; ok is false while pending.
// A nil future yields a failure with ErrNilFuture.
func (f *Future[T]) TryAwait() (r rop.Result[T], ok bool) {
	if f == nil {
		return rop.Fail[T](ErrNilFuture), true
	}
	select {
	case <-f.done:
		return f.result, true
	default:
		return r, false
	}
}
