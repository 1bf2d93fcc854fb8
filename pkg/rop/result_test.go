package rop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success(42)

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, 42, r.Result())
	assert.NoError(t, r.Err())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
	assert.Equal(t, "UTC", r.CreatedAt().Location().String())
}

func TestFail(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	r := Fail[int](err)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Same(t, err, r.Err())
	assert.Zero(t, r.Result())

	v, gotErr := r.Get()
	assert.Zero(t, v)
	assert.Same(t, err, gotErr)
}

func TestFail_NilError(t *testing.T) {
	t.Parallel()

	r := Fail[string](nil)

	require.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrNilFailure)
}

func TestEachResultGetsOwnId(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Success(1).Id(), Success(1).Id())
	assert.NotEqual(t, Fail[int](errors.New("x")).Id(), Fail[int](errors.New("x")).Id())
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Fail[int](errors.New("typed"))
	out := FailFrom[int, string](in)

	assert.True(t, out.IsFailure())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
	assert.Same(t, in.Err(), out.Err())
}

func TestFailFrom_PanicsOnSuccess(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { FailFrom[int, string](Success(1)) })
}

func TestZeroResultIsNeither(t *testing.T) {
	t.Parallel()

	var r Result[int]
	assert.False(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.False(t, IsResult(r))
}

func TestPackagePredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSuccess(Success("a")))
	assert.False(t, IsFailure(Success("a")))
	assert.True(t, IsFailure(Fail[string](errors.New("e"))))
	assert.False(t, IsSuccess(Fail[string](errors.New("e"))))
}

func TestIsResult(t *testing.T) {
	t.Parallel()

	ok := Success(1)
	var nilPtr *Result[int]

	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"success", ok, true},
		{"failure", Fail[string](errors.New("e")), true},
		{"pointer", &ok, true},
		{"nil pointer", nilPtr, false},
		{"nil", nil, false},
		{"plain int", 1, false},
		{"plain struct", struct{ Data int }{1}, false},
		{"zero result", Result[int]{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, IsResult(c.in))
		})
	}
}

func TestResultSatisfiesProvider(t *testing.T) {
	t.Parallel()

	var p ResultProvider[int] = Success(3)
	assert.Equal(t, 3, p.Result())

	var s Status = Fail[int](errors.New("x"))
	assert.False(t, s.IsSuccess())
}

func TestToError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	assert.Same(t, sentinel, ToError(sentinel))
	assert.ErrorIs(t, ToError(nil), ErrNilPanic)

	err := ToError("boom")
	assert.Equal(t, "boom", err.Error())

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "boom", pe.Value)

	// the stack recorded by pkg/errors shows up with %+v
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestToError")

	num := ToError(7)
	assert.Equal(t, "7", num.Error())
}

func TestCatch(t *testing.T) {
	t.Parallel()

	ok := Catch(func() Result[int] { return Success(5) })
	assert.Equal(t, 5, ok.Result())

	failed := Catch(func() Result[int] { panic("boom") })
	require.True(t, failed.IsFailure())
	assert.Equal(t, "boom", failed.Err().Error())

	sentinel := errors.New("raised")
	raised := Catch(func() Result[int] { panic(sentinel) })
	assert.ErrorIs(t, raised.Err(), sentinel)
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))

	a, b := errors.New("a"), errors.New("b")
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}
