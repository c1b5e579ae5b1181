// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Sequential and applicative composition.
//
// Minimal definition: FromValue (unit) and AndThen are necessary and
// sufficient. AndMap and the MapN family are kept as first-class operations
// because the applicative state table is not derivable from bind alone:
// AndMap combines two in-flight sides into one Pending, where a bind chain
// would short-circuit at the first.

// AndThen sequences two promises (monadic bind).
//
// If p yields a usable value (Pending-with-previous, Stale, or Done), f is
// applied to it and the continuation is evaluated against p's updated
// model. When the source was Pending-with-previous, the continuation's
// state is forced to Pending so the in-flight signal survives the chain.
// Empty and Pending-without-previous short-circuit to themselves with p's
// effects; Error short-circuits to Error. Effects are concatenated in
// evaluation order.
func AndThen[M, F, E, A, B any](p Promise[M, F, E, A], f func(A) Promise[M, F, E, B]) Promise[M, F, E, B] {
	return func(m M) (State[E, B], M, []F) {
		s, m1, effs := p(m)
		switch s.tag {
		case tagError:
			return Error[E, B](s.err), m1, effs
		case tagEmpty:
			return Empty[E, B](), m1, effs
		}
		a, ok := s.val.Get()
		if !ok {
			return PendingNone[E, B](), m1, effs
		}
		s2, m2, effs2 := f(a)(m1)
		if s.tag == tagPending {
			s2 = s2.SetPending()
		}
		return s2, m2, concatEffects(effs, effs2)
	}
}

// AndMap is the applicative product: it applies a promised function to a
// promised argument.
//
// Model threading is strict left-to-right: pf is evaluated first and its
// model update is visible to pa; pf's effects precede pa's. States combine
// by [AndMapState]. When pf is already Error, pa is not evaluated.
func AndMap[M, F, E, A, B any](pf Promise[M, F, E, func(A) B], pa Promise[M, F, E, A]) Promise[M, F, E, B] {
	return func(m M) (State[E, B], M, []F) {
		sf, m1, effs1 := pf(m)
		if sf.tag == tagError {
			return Error[E, B](sf.err), m1, effs1
		}
		sa, m2, effs2 := pa(m1)
		return AndMapState(sf, sa), m2, concatEffects(effs1, effs2)
	}
}

// Map2 combines two promises with a binary function.
func Map2[M, F, E, A, B, C any](f func(A, B) C, pa Promise[M, F, E, A], pb Promise[M, F, E, B]) Promise[M, F, E, C] {
	return AndMap(Map(pa, func(a A) func(B) C {
		return func(b B) C { return f(a, b) }
	}), pb)
}

// Map3 combines three promises with a ternary function.
func Map3[M, F, E, A, B, C, D any](f func(A, B, C) D, pa Promise[M, F, E, A], pb Promise[M, F, E, B], pc Promise[M, F, E, C]) Promise[M, F, E, D] {
	return AndMap(AndMap(Map(pa, func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D { return f(a, b, c) }
		}
	}), pb), pc)
}

// Map4 combines four promises with a quaternary function.
func Map4[M, F, E, A, B, C, D, R any](f func(A, B, C, D) R, pa Promise[M, F, E, A], pb Promise[M, F, E, B], pc Promise[M, F, E, C], pd Promise[M, F, E, D]) Promise[M, F, E, R] {
	return AndMap(AndMap(AndMap(Map(pa, func(a A) func(B) func(C) func(D) R {
		return func(b B) func(C) func(D) R {
			return func(c C) func(D) R {
				return func(d D) R { return f(a, b, c, d) }
			}
		}
	}), pb), pc), pd)
}

// Combine folds a list of promises into a promise of the list of results,
// evaluated left to right under the applicative rules.
func Combine[M, F, E, A any](ps []Promise[M, F, E, A]) Promise[M, F, E, []A] {
	acc := FromValue[M, F, E]([]A{})
	for _, p := range ps {
		acc = Map2(func(xs []A, a A) []A {
			out := make([]A, len(xs)+1)
			copy(out, xs)
			out[len(xs)] = a
			return out
		}, acc, p)
	}
	return acc
}
