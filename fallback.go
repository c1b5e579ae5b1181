// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Fallback combinators: substitute values for in-flight or failed states.

// WhenPending supplies a fallback value for Pending-without-previous: the
// state becomes Pending(Some a). All other states are unchanged.
func WhenPending[M, F, E, A any](p Promise[M, F, E, A], a A) Promise[M, F, E, A] {
	return func(m M) (State[E, A], M, []F) {
		s, m1, effs := p(m)
		if s.tag == tagPending && s.val.IsNone() {
			return PendingSome[E](a), m1, effs
		}
		return s, m1, effs
	}
}

// WhenError replaces Error e with Done(f(e)). Because every error is
// handled, the error type widens to the uninhabited [Never]: the resulting
// promise can never fail.
func WhenError[M, F, E, A any](p Promise[M, F, E, A], f func(E) A) Promise[M, F, Never, A] {
	return func(m M) (State[Never, A], M, []F) {
		s, m1, effs := p(m)
		if e, ok := s.GetError(); ok {
			return Done[Never](f(e)), m1, effs
		}
		return retagError[E, Never](s), m1, effs
	}
}

// WithOption lifts the result into an Option: errors become Done(None),
// usable values map to Some. The resulting promise can never fail.
func WithOption[M, F, E, A any](p Promise[M, F, E, A]) Promise[M, F, Never, Option[A]] {
	return WhenError(Map(p, Some[A]), func(E) Option[A] {
		return None[A]()
	})
}

// WithOptionWhenError lifts the result into an Option, absorbing only the
// errors matched by pred as Done(None). Unmatched errors propagate.
func WithOptionWhenError[M, F, E, A any](p Promise[M, F, E, A], pred func(E) bool) Promise[M, F, E, Option[A]] {
	return func(m M) (State[E, Option[A]], M, []F) {
		s, m1, effs := p(m)
		if e, ok := s.GetError(); ok {
			if pred(e) {
				return Done[E](None[A]()), m1, effs
			}
			return Error[E, Option[A]](e), m1, effs
		}
		return MapState(s, Some[A]), m1, effs
	}
}

// WithResult lifts the result into a request outcome: errors become
// Done(Err e), usable values map to Ok. The resulting promise can never
// fail.
func WithResult[M, F, E, A any](p Promise[M, F, E, A]) Promise[M, F, Never, Result[E, A]] {
	return WhenError(Map(p, Ok[E, A]), Err[E, A])
}

// Recover swaps an Error for a fresh promise built by handler, evaluated
// against p's updated model. p's effects precede the handler's. All other
// states pass through untouched. This is the only construct that resumes a
// failed chain.
func Recover[M, F, E, A any](p Promise[M, F, E, A], handler func(E) Promise[M, F, E, A]) Promise[M, F, E, A] {
	return func(m M) (State[E, A], M, []F) {
		s, m1, effs := p(m)
		e, ok := s.GetError()
		if !ok {
			return s, m1, effs
		}
		s2, m2, effs2 := handler(e)(m1)
		return s2, m2, concatEffects(effs, effs2)
	}
}
