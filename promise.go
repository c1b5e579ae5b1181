// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Promise represents a description of an asynchronous, model-cached,
// effectful computation.
//
// Promise[M, F, E, A] is a pure function from a model of type M to a triple
// (state, updated model, emitted effects). Evaluating it never performs
// I/O: "asynchrony" is expressed entirely through Pending states and the
// effect list, which the host runtime dispatches after evaluation. A
// Promise has no identity — it is typically rebuilt from scratch on every
// tick of the host's update loop, and two promises are equivalent when
// they produce the same triple on every model.
type Promise[M, F, E, A any] func(M) (State[E, A], M, []F)

// FromValue lifts a pure value: always Done a, no effects, no model change.
func FromValue[M, F, E, A any](a A) Promise[M, F, E, A] {
	return func(m M) (State[E, A], M, []F) {
		return Done[E](a), m, nil
	}
}

// FromError lifts a constant error: always Error e.
func FromError[M, F, E, A any](e E) Promise[M, F, E, A] {
	return func(m M) (State[E, A], M, []F) {
		return Error[E, A](e), m, nil
	}
}

// FromState lifts a constant State.
func FromState[M, F, E, A any](s State[E, A]) Promise[M, F, E, A] {
	return func(m M) (State[E, A], M, []F) {
		return s, m, nil
	}
}

// FromResult lifts a settled request outcome: Ok becomes Done, Err
// becomes Error.
func FromResult[M, F, E, A any](r Result[E, A]) Promise[M, F, E, A] {
	return FromState[M, F](r.State())
}

// FromModel builds a promise from the current model and evaluates it
// against that same model. This is the reader primitive: use it when the
// shape of the computation depends on model data.
func FromModel[M, F, E, A any](f func(M) Promise[M, F, E, A]) Promise[M, F, E, A] {
	return func(m M) (State[E, A], M, []F) {
		return f(m)(m)
	}
}

// FromUpdate transforms the model and builds a promise in one step; the
// promise is evaluated against the transformed model. This is the
// cache-insertion primitive: write a slot, then continue against the model
// that contains it.
func FromUpdate[M, F, E, A any](f func(M) (M, Promise[M, F, E, A])) Promise[M, F, E, A] {
	return func(m M) (State[E, A], M, []F) {
		m2, p := f(m)
		return p(m2)
	}
}

// concatEffects appends two effect lists. When one list is empty the other
// is returned as is; otherwise the result is a new slice that aliases
// neither input.
func concatEffects[F any](xs, ys []F) []F {
	if len(xs) == 0 {
		return ys
	}
	if len(ys) == 0 {
		return xs
	}
	out := make([]F, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}
