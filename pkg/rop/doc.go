// Package rop defines Result[T], the two-track value every other package in
// this module passes around: either a success carrying a payload or a failure
// carrying an error.
//
// A Result is immutable once built. Constructors stamp it with an id and a
// UTC creation time, so combinators that pass a failure through untouched can
// be checked for it with Id().
//
// The package also owns panic normalization (ToError, Catch): any value
// recovered at a pipeline boundary becomes an error, keeping the failure
// track inspectable through errors.Is and errors.As.
package rop
