package rop

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrNilFailure replaces a nil error passed to Fail.
	ErrNilFailure = errors.New("rop: failure without error")

	// ErrNilPanic is used when a recovered panic value is nil.
	ErrNilPanic = errors.New("rop: panic with nil value")

	// ErrEmptyResult stands in for the error of a zero Result that was never
	// built by a constructor.
	ErrEmptyResult = errors.New("rop: empty result")
)

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprint(e.Value)
}

// ToError normalizes a value recovered from a panic into an error.
// Errors pass through as-is; anything else is wrapped into a *PanicError
// annotated with the stack of the caller.
func ToError(v any) error {
	switch x := v.(type) {
	case nil:
		return ErrNilPanic
	case error:
		return x
	default:
		return pkgerrors.WithStack(&PanicError{Value: x})
	}
}

// Catch calls fn and turns a panic raised inside it into a failure.
func Catch[T any](fn func() Result[T]) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[T](ToError(p))
		}
	}()
	return fn()
}

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// GetErrors splits an errors.Join result back into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
