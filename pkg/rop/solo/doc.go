// Package solo contains single-value, synchronous ROP primitives that operate
// on rop.Result[T]. They are the building blocks the pipeline engines and the
// fluent chain are made of.
//
// Every combinator short-circuits on the track it does not handle: a failure
// handed to Map, Chain or Try comes back with the same id, only re-typed.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Map/Chain/Try: move a success forward (total, Result-returning, (Out, error))
// - MapError/Recover: work on the failure track
// - Tap/TapSuccess/TapError: side effects; panics inside them propagate
// - Validate/AndValidate/ValidateAll/FailOnError: checks producing failures
// - Unwrap/UnwrapOr/Match: leave the Result world
package solo
