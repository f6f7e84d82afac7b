// Package result implements the two-armed use case result protocol.
//
// Every use case entry point returns Either instead of raising expected
// domain conditions as errors: Left carries a tagged *fault.Error, Right
// carries the success value. This keeps every failure path explicit at the
// call site and testable without error interception.
package result

import "skillhub/internal/domain/fault"

// Either is exactly one of Left(*fault.Error) or Right(T).
// The zero value is not meaningful; construct via Left or Right.
type Either[T any] struct {
	left  *fault.Error
	right T
}

// Left wraps a domain error.
func Left[T any](err *fault.Error) Either[T] {
	return Either[T]{left: err}
}

// Right wraps a success value.
func Right[T any](value T) Either[T] {
	return Either[T]{right: value}
}

// IsLeft reports whether the result is a domain failure.
func (e Either[T]) IsLeft() bool {
	return e.left != nil
}

// IsRight reports whether the result is a success.
func (e Either[T]) IsRight() bool {
	return e.left == nil
}

// Err returns the domain error, nil on the Right arm.
func (e Either[T]) Err() *fault.Error {
	return e.left
}

// Value returns the success value. Only meaningful after IsRight.
func (e Either[T]) Value() T {
	return e.right
}

// Unit is the Right value of use cases that succeed with no payload.
type Unit struct{}

// Ok is shorthand for Right(Unit{}).
func Ok() Either[Unit] {
	return Right(Unit{})
}
