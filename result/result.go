/*
Package result implements a value-or-error type for computations that may fail.

A Result either holds a value (Ok) or an error (Err). Clients pattern-match
on it or unpack it with Get:

	switch m := r.Match(); m {
	case m.Ok(&v):
	    ...
	case m.Err(&err):
	    ...
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package result

// Result is the result of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	IsOk() bool
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. A nil error is not a failure and results in Ok
// carrying the zero value of T.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of lifts a Go-style (value, error) pair into a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

// WithDefault returns the value of r, or def for an Err.
func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map applies f to an Ok value and passes errors through unchanged.
func Map[T, S any](r Result[T], f func(T) S) Result[S] {
	x, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(x))
}

// AndThen chains a computation that may fail itself.
func AndThen[T, S any](r Result[T], f func(T) Result[S]) Result[S] {
	x, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(x)
}

// MapError transforms the error of an Err, e.g. to wrap it with context.
func MapError[T any](r Result[T], f func(error) error) Result[T] {
	if _, err := r.Get(); err != nil {
		return Err[T](f(err))
	}
	return r
}

// --- Matching --------------------------------------------------------------

// Matcher is used in switch statements to destructure a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
