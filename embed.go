// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import "maps"

// Model focus. A Lens pairs a getter and setter for a slice of a larger
// model; EmbedModel runs a promise against the focused slice and writes
// the result back. This is the only mechanism for composing promises over
// a larger model.

// Lens focuses a slice of type Inner inside a model of type Outer.
// Set must return a new Outer value: every embedding in a composition uses
// value semantics, so a promise evaluation never mutates the model it was
// handed.
type Lens[Outer, Inner any] struct {
	Get func(Outer) Inner
	Set func(Inner, Outer) Outer
}

// ComposeLens nests two lenses: the result focuses inner's target within
// outer's target.
func ComposeLens[A, B, C any](outer Lens[A, B], inner Lens[B, C]) Lens[A, C] {
	return Lens[A, C]{
		Get: func(a A) C {
			return inner.Get(outer.Get(a))
		},
		Set: func(c C, a A) A {
			return outer.Set(inner.Set(c, outer.Get(a)), a)
		},
	}
}

// EmbedModel evaluates p against the lens-focused slice of the outer model
// and writes the updated slice back. State and effects pass through
// verbatim.
func EmbedModel[MO, MI, F, E, A any](l Lens[MO, MI], p Promise[MI, F, E, A]) Promise[MO, F, E, A] {
	return func(mo MO) (State[E, A], MO, []F) {
		s, mi, effs := p(l.Get(mo))
		return s, l.Set(mi, mo), effs
	}
}

// SlotLens focuses one cache slot in a keyed slot map. Absent keys read as
// Empty, and writes copy the map, so a nil map is a valid empty cache.
func SlotLens[K comparable, E, A any](key K) Lens[map[K]State[E, A], State[E, A]] {
	return Lens[map[K]State[E, A], State[E, A]]{
		Get: func(slots map[K]State[E, A]) State[E, A] {
			if s, ok := slots[key]; ok {
				return s
			}
			return Empty[E, A]()
		},
		Set: func(s State[E, A], slots map[K]State[E, A]) map[K]State[E, A] {
			out := make(map[K]State[E, A], len(slots)+1)
			maps.Copy(out, slots)
			out[key] = s
			return out
		},
	}
}
