package pipe

import (
	"context"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
	"github.com/ib-77/rail/pkg/rop/solo"
)

type Kind string

const (
	KindMap     Kind = "map"
	KindThen    Kind = "then"
	KindTry     Kind = "try"
	KindTap     Kind = "tap"
	KindCompose Kind = "compose"
)

// Step is one stage of a pipeline turning an In into a rop.Result[Out].
// Build steps with Map, Then, Try, Tap or Compose; the zero Step is not usable.
type Step[In, Out any] struct {
	kind     Kind
	name     string
	total    func(ctx context.Context, in In) Out
	fallible func(ctx context.Context, in In) rop.Result[Out]
}

func Map[In, Out any](fn func(ctx context.Context, in In) Out) Step[In, Out] {
	return Step[In, Out]{kind: KindMap, total: fn}
}

func Then[In, Out any](fn func(ctx context.Context, in In) rop.Result[Out]) Step[In, Out] {
	return Step[In, Out]{kind: KindThen, fallible: fn}
}

func Try[In, Out any](fn func(ctx context.Context, in In) (Out, error)) Step[In, Out] {
	return Step[In, Out]{kind: KindTry, fallible: func(ctx context.Context, in In) rop.Result[Out] {
		return solo.Try(ctx, rop.Success(in), fn)
	}}
}

func Tap[T any](fn func(ctx context.Context, in T)) Step[T, T] {
	return Step[T, T]{kind: KindTap, total: func(ctx context.Context, in T) T {
		fn(ctx, in)
		return in
	}}
}

// Compose runs first and, on success, second, as a single step.
func Compose[A, B, C any](first Step[A, B], second Step[B, C]) Step[A, C] {
	return Step[A, C]{kind: KindCompose, fallible: func(ctx context.Context, in A) rop.Result[C] {
		return solo.Chain(ctx, first.apply(ctx, in), second.apply)
	}}
}

// Named labels a step in logs and spans.
func Named[In, Out any](name string, step Step[In, Out]) Step[In, Out] {
	step.name = name
	return step
}

func (s Step[In, Out]) Kind() Kind {
	return s.kind
}

func (s Step[In, Out]) Name() string {
	return s.name
}

func (s Step[In, Out]) apply(ctx context.Context, in In) rop.Result[Out] {
	switch s.kind {
	case KindMap, KindTap:
		return rop.Success(s.total(ctx, in))
	case KindThen, KindTry, KindCompose:
		return settled(s.fallible(ctx, in))
	default:
		return rop.Fail[Out](ErrInvalidStep)
	}
}

func (s Step[In, Out]) info(index int) core.StepInfo {
	return core.StepInfo{Index: index, Name: s.name, Kind: string(s.kind)}
}

// link is a step with its types erased so steps of different types can sit
// in one slice.
type link struct {
	info core.StepInfo
	call func(ctx context.Context, in any) rop.Result[any]
}

func (s Step[In, Out]) link(index int) link {
	return link{
		info: s.info(index),
		call: func(ctx context.Context, in any) rop.Result[any] {
			return erase(s.apply(ctx, cast[In](in)))
		},
	}
}

func erase[T any](r rop.Result[T]) rop.Result[any] {
	if r.IsSuccess() {
		return rop.Success[any](r.Result())
	}
	return rop.FailFrom[T, any](r)
}

// cast recovers the static type of a value threaded through the engine.
// A nil interface comes back as the zero value of T.
func cast[T any](v any) T {
	t, _ := v.(T)
	return t
}

// settled replaces a zero Result returned by a step with a failure.
func settled[T any](r rop.Result[T]) rop.Result[T] {
	if r.IsSuccess() || r.IsFailure() {
		return r
	}
	return rop.Fail[T](ErrEmptyResult)
}
