// Package result provides the two-variant outcome returned across every
// adapter boundary: a value on success or a cause on failure, never both.
package result

import "errors"

// ErrNilCause replaces a nil cause handed to Fail so the error variant always
// carries something callers can report.
var ErrNilCause = errors.New("result: failure without cause")

// Result holds either a success value or an error cause.
// The cause decides the variant; the zero value is a success holding the zero T.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a success value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Fail wraps a failure cause.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilCause
	}
	return Result[T]{err: err}
}

// IsOk reports whether r is the success variant.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Err returns the failure cause, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// Get unpacks r in the usual Go (value, error) shape.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Match calls exactly one of onOk or onErr and returns its value.
func Match[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// Map transforms the success value and passes a failure through untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(fn(r.value))
}

// From builds a Result from a (value, error) pair.
func From[T any](value T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(value)
}
