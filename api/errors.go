// Package api
// Author: momentics <momentics@gmail.com>
//
// Ring status taxonomy and structured error helpers.

package api

import (
	"errors"
	"fmt"
)

// Status is the outcome of a ring operation.
type Status int

const (
	StatusUnknown   Status = 0
	StatusOK        Status = 1
	StatusNoPlace   Status = -1
	StatusNoData    Status = -2
	StatusNoPointer Status = -3
)

func (s Status) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusOK:
		return "ok"
	case StatusNoPlace:
		return "no place"
	case StatusNoData:
		return "no data"
	case StatusNoPointer:
		return "no pointer"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Sentinel errors returned by ring operations.
var (
	// ErrNoPointer reports an absent handle, storage region or data slice.
	ErrNoPointer = &Error{Code: StatusNoPointer, Message: "ring: missing handle, storage or data"}
	// ErrNoData reports an empty ring or a zero-length transfer.
	ErrNoData = &Error{Code: StatusNoData, Message: "ring: no data"}
	// ErrNoPlace reports insufficient free slots for a write.
	ErrNoPlace = &Error{Code: StatusNoPlace, Message: "ring: no place"}
)

// Error is a status-coded error with optional context and cause.
type Error struct {
	Code    Status
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf("%s (context: %+v)", msg, e.Context)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error carrying the same status code, so errors built with
// WithContext still satisfy errors.Is against the sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// WithContext returns a copy of e with key set in its context map.
// The receiver is never modified, so sentinels are safe to decorate.
func (e *Error) WithContext(key string, value any) *Error {
	ctx := make(map[string]any, len(e.Context)+1)
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &Error{Code: e.Code, Message: e.Message, Context: ctx, Cause: e.Cause}
}

// WithCause returns a copy of e wrapping cause.
func (e *Error) WithCause(cause error) *Error {
	c := *e
	c.Cause = cause
	return &c
}

// StatusOf maps err to a Status. nil is StatusOK; errors that carry no
// ring status map to StatusUnknown.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return StatusUnknown
}
