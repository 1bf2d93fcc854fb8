// Package core carries the ambient plumbing shared by the pipeline engines:
// options travelling in the context (logger, tracer, pipeline name) and the
// per-step observation hook that turns a step's outcome into log lines and
// spans. It does not define business logic; packages pipe and async call
// into it so callers configure observability once, on the context.
package core
