// Package async lifts the Result contract across goroutines.
//
// A Future[T] is an awaitable rop.Result[T]: it settles exactly once and can
// be awaited any number of times, from any goroutine. On top of it:
//
// - Run/Pipe1..Pipe6: the pipe engine run in the background; the initial
//   future is awaited once, then steps execute strictly one after another
// - Await: a pipe.Step whose work is itself a Future
// - FromAsync/FromPromise: bridge (T, error) functions and Outcome channels
// - Map/MapError/Chain: single-step combinators over a Future
// - WithFinally: cleanup that runs once whatever the outcome
// - NewErrorBoundary: a reusable wrapper mapping errors of any operation
// - All: await many futures concurrently, first failure by index wins
//
// Panics raised by user code are recovered inside the producing goroutine and
// settle the future as a failure; they never escape as crashes.
//
// None of these primitives cancels running work. Awaiting with a context
// that ends early yields a failure carrying ctx.Err() while the producer
// keeps running.
package async
