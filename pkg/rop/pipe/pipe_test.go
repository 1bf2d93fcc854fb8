package pipe

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/ib-77/rail/pkg/rop"
	"github.com/ib-77/rail/pkg/rop/core"
)

func double(_ context.Context, n int) int { return n * 2 }
func addOne(_ context.Context, n int) int { return n + 1 }

func mustBeOverTen(_ context.Context, n int) rop.Result[int] {
	if n > 10 {
		return rop.Success(n)
	}
	return rop.Fail[int](errors.New("too small"))
}

func TestRun_MapSteps(t *testing.T) {
	t.Parallel()

	res := Run(context.Background(), rop.Success(5), Map(double), Map(addOne))

	require.True(t, res.IsSuccess())
	assert.Equal(t, 11, res.Result())
}

func TestRun_ShortCircuit(t *testing.T) {
	t.Parallel()

	calls := 0
	res := Run(context.Background(), rop.Success(5),
		Then(mustBeOverTen),
		Map(func(ctx context.Context, n int) int {
			calls++
			return n * 2
		}))

	require.True(t, res.IsFailure())
	assert.EqualError(t, res.Err(), "too small")
	assert.Zero(t, calls)
}

func TestRun_FailureKeepsStepIdentity(t *testing.T) {
	t.Parallel()

	stepFailure := rop.Fail[int](errors.New("exact"))
	res := Run(context.Background(), rop.Success(1),
		Then(func(context.Context, int) rop.Result[int] { return stepFailure }))

	assert.Equal(t, stepFailure.Id(), res.Id())
}

func TestRun_ZeroSteps(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := rop.Success(42)
	assert.Equal(t, ok, Run(ctx, ok))

	failed := rop.Fail[int](errors.New("e"))
	res := Run(ctx, failed)
	assert.Equal(t, failed.Id(), res.Id())
	assert.EqualError(t, res.Err(), "e")
}

func TestRun_FailedInitialSkipsEveryStep(t *testing.T) {
	t.Parallel()

	initial := rop.Fail[int](errors.New("early"))
	res := Run(context.Background(), initial,
		Tap(func(context.Context, int) { t.Fatal("step must not run") }))

	assert.Equal(t, initial.Id(), res.Id())
}

func TestRun_EmptyInitial(t *testing.T) {
	t.Parallel()

	res := Run(context.Background(), rop.Result[int]{}, Map(double))

	assert.ErrorIs(t, res.Err(), ErrEmptyResult)
}

func TestRun_EmptyInitialWithoutSteps(t *testing.T) {
	t.Parallel()

	res := Run(context.Background(), rop.Result[int]{})

	assert.ErrorIs(t, res.Err(), ErrEmptyResult)
}

func TestRun_PanicBecomesFailure(t *testing.T) {
	t.Parallel()

	after := 0
	res := Run(context.Background(), rop.Success(1),
		Map(func(context.Context, int) int { panic("boom") }),
		Tap(func(context.Context, int) { after++ }))

	require.True(t, res.IsFailure())
	assert.Equal(t, "boom", res.Err().Error())
	var pe *rop.PanicError
	assert.ErrorAs(t, res.Err(), &pe)
	assert.Zero(t, after)
}

func TestRun_PanicWithErrorPassesThrough(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	res := Run(context.Background(), rop.Success(1),
		Map(func(context.Context, int) int { panic(sentinel) }))

	assert.Same(t, sentinel, res.Err())
}

func TestRun_ZeroStepIsInvalid(t *testing.T) {
	t.Parallel()

	res := Run(context.Background(), rop.Success(1), Step[int, int]{})

	assert.ErrorIs(t, res.Err(), ErrInvalidStep)
}

func TestRun_StepReturningZeroResult(t *testing.T) {
	t.Parallel()

	res := Run(context.Background(), rop.Success(1),
		Then(func(context.Context, int) rop.Result[int] { return rop.Result[int]{} }))

	assert.ErrorIs(t, res.Err(), ErrEmptyResult)
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	res := Run(ctx, rop.Success(1),
		Tap(func(context.Context, int) { calls++; cancel() }),
		Tap(func(context.Context, int) { calls++ }))

	require.True(t, res.IsFailure())
	assert.True(t, rop.IsCancellationError(res.Err()))
	assert.Equal(t, 1, calls)
}

func TestPipe_HeterogeneousSteps(t *testing.T) {
	t.Parallel()

	res := Pipe4(context.Background(), rop.Success("21"),
		Try(func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }),
		Map(double),
		Then(mustBeOverTen),
		Map(func(_ context.Context, n int) string { return fmt.Sprintf("answer=%d", n) }))

	require.True(t, res.IsSuccess(), "err: %v", res.Err())
	assert.Equal(t, "answer=42", res.Result())
}

func TestPipe_TryFailure(t *testing.T) {
	t.Parallel()

	res := Pipe2(context.Background(), rop.Success("x"),
		Try(func(_ context.Context, s string) (int, error) { return strconv.Atoi(s) }),
		Map(double))

	var numErr *strconv.NumError
	assert.ErrorAs(t, res.Err(), &numErr)
}

func TestPipe_NilPlainValue(t *testing.T) {
	t.Parallel()

	res := Pipe2(context.Background(), rop.Success(1),
		Map(func(context.Context, int) error { return nil }),
		Map(func(_ context.Context, err error) bool { return err == nil }))

	require.True(t, res.IsSuccess())
	assert.True(t, res.Result())
}

func TestPipe_AllArities(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	in := rop.Success(0)
	inc := Map(addOne)

	assert.Equal(t, 1, Pipe1(ctx, in, inc).Result())
	assert.Equal(t, 2, Pipe2(ctx, in, inc, inc).Result())
	assert.Equal(t, 3, Pipe3(ctx, in, inc, inc, inc).Result())
	assert.Equal(t, 4, Pipe4(ctx, in, inc, inc, inc, inc).Result())
	assert.Equal(t, 5, Pipe5(ctx, in, inc, inc, inc, inc, inc).Result())
	assert.Equal(t, 6, Pipe6(ctx, in, inc, inc, inc, inc, inc, inc).Result())
}

func TestCompose(t *testing.T) {
	t.Parallel()

	toText := Compose(Map(double), Map(func(_ context.Context, n int) string { return strconv.Itoa(n) }))
	assert.Equal(t, KindCompose, toText.Kind())

	res := Pipe1(context.Background(), rop.Success(4), toText)
	assert.Equal(t, "8", res.Result())

	guarded := Compose(Then(mustBeOverTen), Map(double))
	assert.EqualError(t, Pipe1(context.Background(), rop.Success(4), guarded).Err(), "too small")
}

func TestNamed(t *testing.T) {
	t.Parallel()

	s := Named("double", Map(double))
	assert.Equal(t, "double", s.Name())
	assert.Equal(t, KindMap, s.Kind())
}

func TestRun_LogsAndSpans(t *testing.T) {
	t.Parallel()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	h := memory.New()
	ctx := core.WithTracer(context.Background(), tp.Tracer("pipe-test"))
	ctx = core.WithLogger(ctx, &log.Logger{Handler: h, Level: log.DebugLevel})
	ctx = core.WithPipelineName(ctx, "numbers")

	res := Run(ctx, rop.Success(5),
		Named("double", Map(double)),
		Named("check", Then(mustBeOverTen)),
		Named("never", Map(addOne)))
	require.True(t, res.IsFailure())

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	var messages []string
	for _, e := range h.Entries {
		messages = append(messages, e.Message)
	}
	assert.Contains(t, messages, "numbers: step #1 (check) failed: too small")
	assert.Contains(t, messages, "numbers: skipping steps #2..#2: too small")
}
