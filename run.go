// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Never is an uninhabited error type: no value of type Never exists, so a
// State[Never, A] can never be Error. [WhenError] widens to Never, and
// [Run] accepts only promises whose errors have been widened away.
type Never interface {
	never()
}

// Sink is a fully handled promise: unit result, uninhabited error. It is
// the only shape acceptable to [Run] — producing one is the type-level
// proof that every error was handled and every result consumed.
type Sink[M, F any] = Promise[M, F, Never, struct{}]

// Update consumes a promise's result. After evaluating p, writer receives
// the final state and model and returns a further model/effect pair, both
// of which are appended. The result is a [Sink] ready for [Run].
func Update[M, F, E, A any](p Promise[M, F, E, A], writer func(State[E, A], M) (M, []F)) Sink[M, F] {
	return func(m M) (State[Never, struct{}], M, []F) {
		s, m1, effs := p(m)
		m2, effs2 := writer(s, m1)
		return Done[Never](struct{}{}), m2, concatEffects(effs, effs2)
	}
}

// Run evaluates a sinked promise against the model and returns the updated
// model and the effects to dispatch. This and [RunWith] are the only entry
// points from a host update loop: install the model atomically, hand the
// effects to the runtime, and re-run on the next message.
func Run[M, F any](p Sink[M, F], m M) (M, []F) {
	_, m2, effs := p(m)
	return m2, effs
}

// RunWith is [Run] with the arguments flipped, for hosts that read better
// model-first.
func RunWith[M, F any](m M, p Sink[M, F]) (M, []F) {
	return Run(p, m)
}
