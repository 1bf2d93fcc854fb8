// Package pipe is the synchronous pipeline engine: it threads a value
// through an ordered list of steps, stopping at the first failure.
//
// Steps come in kinds fixed when they are built:
// - Map: total step, In -> Out, cannot fail
// - Then: fallible step returning rop.Result[Out]
// - Try: fallible step in Go's (Out, error) shape
// - Tap: side effect, passes the value through
// - Compose: two steps glued into one
//
// Run drives steps of a single type; Pipe1..Pipe6 drive heterogeneous ones.
// Whatever the kind, a panic inside a step is recovered and becomes the
// pipeline's failure (see rop.ToError), and no step after a failure runs.
// Logging and tracing are configured on the context through package core.
package pipe
