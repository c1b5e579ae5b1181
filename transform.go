// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Map applies a pure function to the result of a promise.
// The function is lifted under every state variant's payload; model
// updates and emitted effects pass through untouched.
//
// Map agrees with AndThen(p, compose(FromValue, f)) on every state except
// Stale: Map keeps a Stale result Stale, while the bind yields Done. It
// also avoids the intermediate promise.
func Map[M, F, E, A, B any](p Promise[M, F, E, A], f func(A) B) Promise[M, F, E, B] {
	return func(m M) (State[E, B], M, []F) {
		s, m2, effs := p(m)
		return MapState(s, f), m2, effs
	}
}

// MapEffect applies a function to every emitted effect.
// The effect type may change, which is how a sub-application's effects are
// re-tagged into the host's effect type.
func MapEffect[M, F, G, E, A any](p Promise[M, F, E, A], g func(F) G) Promise[M, G, E, A] {
	return func(m M) (State[E, A], M, []G) {
		s, m2, effs := p(m)
		if len(effs) == 0 {
			return s, m2, nil
		}
		out := make([]G, len(effs))
		for i, eff := range effs {
			out[i] = g(eff)
		}
		return s, m2, out
	}
}

// MapError applies a function to the Error payload only.
func MapError[M, F, E, E2, A any](p Promise[M, F, E, A], g func(E) E2) Promise[M, F, E2, A] {
	return func(m M) (State[E2, A], M, []F) {
		s, m2, effs := p(m)
		return MapStateError(s, g), m2, effs
	}
}

// WithState reifies the inner State as the Done value of a new promise, so
// callers can inspect the lifecycle without blocking on it. The outer state
// is Done(inner), except when the inner state was Pending, in which case
// the outer state is Pending(Some inner) to keep the in-flight signal.
func WithState[M, F, E, A any](p Promise[M, F, E, A]) Promise[M, F, E, State[E, A]] {
	return func(m M) (State[E, State[E, A]], M, []F) {
		s, m2, effs := p(m)
		if s.IsPending() {
			return PendingSome[E](s), m2, effs
		}
		return Done[E](s), m2, effs
	}
}

// Then sequences two promises, discarding the first result.
// Equivalent to AndThen(p, func(_) q), including the rule that a
// Pending-with-value source forces the continuation's state to Pending.
func Then[M, F, E, A, B any](p Promise[M, F, E, A], q Promise[M, F, E, B]) Promise[M, F, E, B] {
	return AndThen(p, func(A) Promise[M, F, E, B] {
		return q
	})
}
