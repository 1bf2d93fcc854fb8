package rop

import (
	"time"

	"github.com/google/uuid"
)

// Status is the payload-free view of a Result. Code that only needs to know
// how an operation ended (loggers, tracers) accepts a Status so it can serve
// results of any type.
type Status interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Err returns the error if operation failed
	Err() error
	// Id identifies the result; it survives FailFrom
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ResultProvider adds access to the successful value.
type ResultProvider[T any] interface {
	Status
	// Result returns the successful result value
	Result() T
}

type resultLike interface {
	Status
	isResult() bool
}
