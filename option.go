// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Option represents an optional value: Some (present) or None (absent).
//
// Pending states carry their last-known good value as an Option rather than
// a zero-value sentinel, because the zero value of A may be legitimate data.
type Option[A any] struct {
	isSome bool
	value  A
}

// Some creates a present Option.
func Some[A any](a A) Option[A] {
	return Option[A]{isSome: true, value: a}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.isSome {
		return o.value, true
	}
	var zero A
	return zero, false
}

// OrElse returns the value if present, or def otherwise.
func (o Option[A]) OrElse(def A) A {
	if o.isSome {
		return o.value
	}
	return def
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the value if present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.isSome {
		return Some(f(o.value))
	}
	return None[B]()
}
