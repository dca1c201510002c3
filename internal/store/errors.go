package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrCapacityExceeded  = errors.New("event is at capacity")
)

// RemoteError wraps a failure reported by the hosted relational store. The
// backend's message is passed through unmodified; no retries are attempted.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote store: %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// ParseError signals a corrupt local snapshot. The caller surfaces it as a
// generic failure; no recovery is attempted.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("local store: corrupt snapshot %q: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
