// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// State lifecycle for remotely-loaded values.
// State[E, A] tags a value of type A (or an error of type E) with where it
// is in its request lifecycle. States are immutable: every transition
// constructs a new value.

type stateTag uint8

const (
	tagEmpty stateTag = iota
	tagPending
	tagStale
	tagDone
	tagError
)

// State represents the lifecycle of a remotely-loaded value.
// A State[E, A] is exactly one of:
//
//   - Empty: never requested. The initial value of every slot.
//   - Pending: a request is in flight; may carry the last-known good value.
//   - Stale: usable, but flagged for refresh.
//   - Done: fresh and authoritative.
//   - Error: the request failed with an error of type E.
//
// E and A are opaque to every State combinator.
type State[E, A any] struct {
	tag stateTag
	val Option[A] // Pending's previous value; the value for Stale and Done
	err E
}

// Empty creates the never-requested state.
func Empty[E, A any]() State[E, A] {
	return State[E, A]{tag: tagEmpty}
}

// Pending creates the in-flight state. prev carries the last-known good
// value, if any, so the host can keep displaying it during a refresh.
func Pending[E, A any](prev Option[A]) State[E, A] {
	return State[E, A]{tag: tagPending, val: prev}
}

// PendingNone creates an in-flight state with no previous value.
func PendingNone[E, A any]() State[E, A] {
	return Pending[E, A](None[A]())
}

// PendingSome creates an in-flight state that keeps a as the last-known
// good value.
func PendingSome[E, A any](a A) State[E, A] {
	return Pending[E](Some(a))
}

// Stale creates the usable-but-due-for-refresh state.
func Stale[E, A any](a A) State[E, A] {
	return State[E, A]{tag: tagStale, val: Some(a)}
}

// Done creates the fresh, authoritative state.
func Done[E, A any](a A) State[E, A] {
	return State[E, A]{tag: tagDone, val: Some(a)}
}

// Error creates the failed state.
func Error[E, A any](e E) State[E, A] {
	return State[E, A]{tag: tagError, err: e}
}

// FromOption converts an optional value into a State:
// Some becomes Done, None becomes Empty.
func FromOption[E, A any](o Option[A]) State[E, A] {
	if a, ok := o.Get(); ok {
		return Done[E](a)
	}
	return Empty[E, A]()
}

// IsEmpty returns true for Empty.
func (s State[E, A]) IsEmpty() bool { return s.tag == tagEmpty }

// IsPending returns true for Pending, with or without a previous value.
func (s State[E, A]) IsPending() bool { return s.tag == tagPending }

// IsStale returns true for Stale.
func (s State[E, A]) IsStale() bool { return s.tag == tagStale }

// IsDone returns true for Done.
func (s State[E, A]) IsDone() bool { return s.tag == tagDone }

// IsError returns true for Error.
func (s State[E, A]) IsError() bool { return s.tag == tagError }

// ToOption returns the usable value: Some for Pending-with-previous, Stale,
// and Done; None for Empty, Pending-without-previous, and Error.
func (s State[E, A]) ToOption() Option[A] {
	switch s.tag {
	case tagPending, tagStale, tagDone:
		return s.val
	default:
		return None[A]()
	}
}

// GetError returns the error and true for Error, or zero and false.
func (s State[E, A]) GetError() (E, bool) {
	if s.tag == tagError {
		return s.err, true
	}
	var zero E
	return zero, false
}

// ToResult collapses the State into a request outcome. Usable values
// (Pending-with-previous, Stale, Done) become Ok, Error becomes Err, and
// valueless states (Empty, Pending-without-previous) return def.
func (s State[E, A]) ToResult(def Result[E, A]) Result[E, A] {
	switch s.tag {
	case tagError:
		return Err[E, A](s.err)
	case tagPending, tagStale, tagDone:
		if a, ok := s.val.Get(); ok {
			return Ok[E](a)
		}
		return def
	default:
		return def
	}
}

// SetPending transitions a slot to in-flight, preserving any usable value
// for display continuity:
//
//	Empty           -> Pending(None)
//	Stale a, Done a -> Pending(Some a)
//	Pending p       -> Pending p (unchanged)
//	Error           -> Pending(None)
func (s State[E, A]) SetPending() State[E, A] {
	switch s.tag {
	case tagPending:
		return s
	case tagStale, tagDone:
		return Pending[E](s.val)
	default:
		return PendingNone[E, A]()
	}
}

// MarkStale flags a fresh value for refresh: Done a becomes Stale a.
// All other variants are unchanged.
func (s State[E, A]) MarkStale() State[E, A] {
	if s.tag == tagDone {
		return State[E, A]{tag: tagStale, val: s.val}
	}
	return s
}

// Code returns a stable CSS-class-friendly string for the variant:
// "state-empty", "state-pending", "state-stale", "state-done" or
// "state-error". View layers bind it directly as a class name.
func (s State[E, A]) Code() string {
	switch s.tag {
	case tagEmpty:
		return "state-empty"
	case tagPending:
		return "state-pending"
	case tagStale:
		return "state-stale"
	case tagDone:
		return "state-done"
	default:
		return "state-error"
	}
}

// MapState applies a function under every variant's payload.
// Empty and Error are unchanged; Pending maps its previous value, if any.
func MapState[E, A, B any](s State[E, A], f func(A) B) State[E, B] {
	switch s.tag {
	case tagError:
		return Error[E, B](s.err)
	case tagEmpty:
		return Empty[E, B]()
	default:
		return State[E, B]{tag: s.tag, val: MapOption(s.val, f)}
	}
}

// MapStateError applies a function to the Error payload only.
func MapStateError[E, E2, A any](s State[E, A], g func(E) E2) State[E2, A] {
	if s.tag == tagError {
		return Error[E2, A](g(s.err))
	}
	return State[E2, A]{tag: s.tag, val: s.val}
}

// retagError rebuilds a State under a different error type.
// The caller guarantees s is not Error.
func retagError[E, E2, A any](s State[E, A]) State[E2, A] {
	return State[E2, A]{tag: s.tag, val: s.val}
}

// AndMapState is the applicative product of two states.
//
// The leftmost Error wins, so chains short-circuit predictably. Otherwise
// the result is Done only when both sides are fresh; any in-flight side
// (Empty and Pending count as in flight; Stale counts as usable and fresh
// for combination) makes the result Pending, carrying the combined value
// when both sides have one.
func AndMapState[E, A, B any](sf State[E, func(A) B], sa State[E, A]) State[E, B] {
	if sf.tag == tagError {
		return Error[E, B](sf.err)
	}
	if sa.tag == tagError {
		return Error[E, B](sa.err)
	}
	fInFlight := sf.tag == tagEmpty || sf.tag == tagPending
	aInFlight := sa.tag == tagEmpty || sa.tag == tagPending
	f, okf := sf.val.Get()
	a, oka := sa.val.Get()
	if !okf || !oka {
		return PendingNone[E, B]()
	}
	b := f(a)
	if fInFlight || aInFlight {
		return PendingSome[E](b)
	}
	return Done[E](b)
}
