// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// FromEffectWhenEmpty is the revalidation primitive for cache-backed
// fetching. Its model is a single cache slot — compose with [EmbedModel]
// and [SlotLens] to focus the slot for a request key — and eff is the
// effect that (re)loads it. Evaluation inspects the slot:
//
//	Empty    -> fire: slot becomes Pending(None), eff is emitted
//	Stale a  -> fire, keep a: slot becomes Pending(Some a), eff is emitted
//	Pending  -> wait: unchanged, no effect
//	Done a   -> serve: unchanged, no effect
//	Error e  -> surface: unchanged, no effect
//
// The returned state always equals the new slot value. Once the slot is
// Pending, re-evaluating against the same model emits nothing: at most one
// effect is in flight per slot. The only way out of Pending is the host
// writing a response State into the slot (typically via [Result.State])
// before the next tick.
//
// When the effect depends on model data beyond the slot, build it with
// [FromModel] before embedding.
func FromEffectWhenEmpty[F, E, A any](eff F) Promise[State[E, A], F, E, A] {
	return func(slot State[E, A]) (State[E, A], State[E, A], []F) {
		switch slot.tag {
		case tagEmpty, tagStale:
			next := slot.SetPending()
			return next, next, []F{eff}
		default:
			return slot, slot, nil
		}
	}
}
