// Package fault defines the tagged domain error values every use case
// returns through the Left arm of result.Either.
//
// Only expected domain conditions live here. Infrastructure failures
// (storage outages and the like) are plain errors and must be propagated
// unwrapped to the boundary handler.
package fault

import "fmt"

// Kind tags a domain error so presenters can map it to a transport
// status deterministically.
type Kind int

const (
	// KindNotFound means a referenced entity is absent.
	KindNotFound Kind = iota + 1

	// KindForbidden means the authorization policy denied the action.
	KindForbidden

	// KindConflict means a uniqueness constraint would be violated.
	KindConflict

	// KindSelfReference means the actor targeted their own resource
	// where that is explicitly disallowed (e.g. self-application).
	KindSelfReference
)

// Error is a tagged domain error. The message is safe to surface to the
// user directly; never put internal detail in it.
type Error struct {
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(msg string, args ...any) *Error {
	return newError(KindNotFound, msg, args...)
}

func Forbidden(msg string, args ...any) *Error {
	return newError(KindForbidden, msg, args...)
}

func Conflict(msg string, args ...any) *Error {
	return newError(KindConflict, msg, args...)
}

func SelfReference(msg string, args ...any) *Error {
	return newError(KindSelfReference, msg, args...)
}

func newError(kind Kind, msg string, args ...any) *Error {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &Error{Kind: kind, Message: msg}
}
