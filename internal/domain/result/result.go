// Package result provides a two-case outcome type for composing domain
// operations without control flow through panics or ad hoc error checks.
//
// A Result is either Ok(value) or Fail(err). Composition short-circuits on
// the first failure:
//
//	r := result.Bind(fetch(ctx, id), func(p *project.Project) result.Result[*project.Project] {
//	    return p.UpdateNameOrFail(name)
//	})
//	r = result.Bind(r, persist)
//
// Consumption is exhaustive over both cases and is the only place a caller
// should produce side effects:
//
//	result.Handle(r, writeProject, writeError)
package result

import "errors"

// ErrNilFailure replaces a nil error passed to Fail so that a failed Result
// never reports success.
var ErrNilFailure = errors.New("result: failure without an error")

// Result holds either a success value or a failure reason. The zero value is
// Ok with the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Fail returns a failed Result carrying err.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{err: err}
}

// From adapts a conventional (value, error) pair.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: v}
}

// IsOk reports whether r is a success.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Err returns the failure reason, or nil for a success.
func (r Result[T]) Err() error {
	return r.err
}

// Get returns the value and error as a conventional pair. The value is the
// zero value of T on failure.
func (r Result[T]) Get() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// ValueOr returns the success value, or fallback on failure.
func (r Result[T]) ValueOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Map applies f to the success value. Failures pass through unchanged and f
// is not called.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// Bind applies f, which itself returns a Result, to the success value and
// flattens. On failure f is never invoked.
func Bind[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// MapErr applies f to the failure reason. Successes pass through unchanged.
func MapErr[T any](r Result[T], f func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Fail[T](f(r.err))
}

// Match folds r into a single value, calling exactly one of onOk or onErr.
func Match[T, R any](r Result[T], onOk func(T) R, onErr func(error) R) R {
	if r.err != nil {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// Handle consumes r for its side effects, calling exactly one of onOk or onErr.
func Handle[T any](r Result[T], onOk func(T), onErr func(error)) {
	if r.err != nil {
		onErr(r.err)
		return
	}
	onOk(r.value)
}
