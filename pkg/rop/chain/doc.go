// Package chain provides a fluent wrapper around rop.Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Where package pipe takes the whole list of steps at once, a Chain grows one
// call at a time, which reads better when steps are interleaved with plain Go
// code or chosen conditionally.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Tap: run side effects on success without changing the result
// - Or: fall back to alternative chains when this one failed
// - RepeatUntil: apply a step again while a condition holds
// - Match: collapse the chain into a final value via handlers
package chain
