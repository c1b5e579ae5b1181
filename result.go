// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Result is the settled outcome of one remote request: Ok with the
// response value, or Err with the classified error. It exists at the
// boundary between transport and cache — a host parses each received
// response into a Result and writes it into the matching model slot with
// [Result.State], which is how a slot leaves Pending.
type Result[E, A any] struct {
	ok  bool
	val A
	err E
}

// Ok creates a successful outcome.
func Ok[E, A any](a A) Result[E, A] {
	return Result[E, A]{ok: true, val: a}
}

// Err creates a failed outcome.
func Err[E, A any](e E) Result[E, A] {
	return Result[E, A]{err: e}
}

// IsOk reports whether the request succeeded.
func (r Result[E, A]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the request failed.
func (r Result[E, A]) IsErr() bool {
	return !r.ok
}

// Get returns the response value and true, or zero and false.
func (r Result[E, A]) Get() (A, bool) {
	if r.ok {
		return r.val, true
	}
	var zero A
	return zero, false
}

// GetErr returns the error and true, or zero and false.
func (r Result[E, A]) GetErr() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// State converts the outcome into a cache slot value: Ok becomes Done and
// Err becomes Error. Writing r.State() into the slot a request was fired
// for settles that request.
func (r Result[E, A]) State() State[E, A] {
	if r.ok {
		return Done[E](r.val)
	}
	return Error[E, A](r.err)
}

// MatchResult collapses the outcome by case.
func MatchResult[E, A, T any](r Result[E, A], onErr func(E) T, onOk func(A) T) T {
	if r.ok {
		return onOk(r.val)
	}
	return onErr(r.err)
}

// MapResult applies a function to the response value of an Ok outcome.
func MapResult[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if !r.ok {
		return Err[E, B](r.err)
	}
	return Ok[E](f(r.val))
}

// MapResultErr applies a function to the error of a failed outcome,
// re-classifying it without touching success.
func MapResultErr[E, E2, A any](r Result[E, A], g func(E) E2) Result[E2, A] {
	if r.ok {
		return Ok[E2](r.val)
	}
	return Err[E2, A](g(r.err))
}

// AndThenResult chains a dependent outcome: f runs only when r is Ok, and
// the first error wins.
func AndThenResult[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if !r.ok {
		return Err[E, B](r.err)
	}
	return f(r.val)
}
