package store

import "errors"

// Shared result taxonomy for the container family. Every operation validates
// its own preconditions and returns one of these immediately; a failed
// mutating call leaves its container untouched.
var (
	ErrParam    = errors.New("store: invalid parameter")
	ErrIndex    = errors.New("store: index out of bounds")
	ErrNotFound = errors.New("store: not found")
	ErrEmpty    = errors.New("store: container is empty")
	ErrFull     = errors.New("store: container is full")
	ErrExists   = errors.New("store: item already exists")
	ErrInternal = errors.New("store: internal error")
)
