// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package promise describes asynchronous, model-cached, effectful
// computations inside a pure message-driven update loop.
//
// The core type [Promise] represents such a computation as a pure function
// from a model to a triple (state, updated model, emitted effects).
// Evaluating a promise never performs I/O: pending work is expressed as
// [State] values cached in the model, and the work itself as opaque effect
// values the host runtime dispatches after each evaluation. A promise is a
// description — hosts rebuild it from scratch on every tick.
//
// # Design Philosophy
//
// promise provides:
//   - A five-variant lifecycle lattice for remotely-loaded values
//   - Applicative-monadic combinators with lawful state propagation
//   - A queue driver with per-group at-most-one-in-flight dispatch
//
// All primitives are pure and synchronous. There are no suspension points:
// evaluation runs to completion against a model snapshot, and asynchrony
// exists only as Pending states plus emitted effects. The model is
// single-writer — the host installs each returned model atomically and
// serializes calls to [Run].
//
// # State
//
// [State] is the lifecycle tag for one cached value:
//
//   - [Empty], [Pending], [Stale], [Done], [Error]: Constructors
//   - [PendingNone], [PendingSome]: In-flight conveniences
//   - [Result.State], [FromOption]: Conversions from request outcomes
//   - [State.IsEmpty], [State.IsPending], [State.IsStale], [State.IsDone],
//     [State.IsError]: Predicates
//   - [State.ToOption], [State.GetError], [State.ToResult]: Accessors
//   - [MapState], [AndMapState], [MapStateError]: Transformations
//   - [State.SetPending], [State.MarkStale]: The two named transitions
//   - [State.Code]: Stable CSS-class strings for view layers
//   - [EncodeState], [DecodeState], [JSONCodec]: Tagged-envelope JSON codec
//
// The applicative product [AndMapState] is left-error-biased: the leftmost
// Error wins, any in-flight side makes the product Pending, and the
// product carries a combined value whenever both sides have one.
//
// # Promise Construction
//
//   - [FromValue], [FromError], [FromState], [FromResult]: Constant lifts
//   - [FromModel]: Build a promise from the current model (reader)
//   - [FromUpdate]: Transform the model, then continue (cache insertion)
//   - [FromEffectWhenEmpty]: The revalidation primitive (see below)
//
// # Composition
//
//   - [AndThen]: Monadic bind; a Pending-with-previous source forces the
//     continuation's state to Pending, so the in-flight signal survives
//   - [AndMap]: Applicative product with strict left-to-right model
//     threading and effect concatenation
//   - [Map], [Map2], [Map3], [Map4], [Combine]: Derived combinations
//   - [MapEffect], [MapError], [WithState], [Then]: Transformations
//
// # Fallbacks
//
//   - [WhenPending]: Supply a value while loading
//   - [WhenError]: Handle every error; widens the error type to [Never]
//   - [WithOption], [WithOptionWhenError], [WithResult]: Lifted variants
//   - [Recover]: Swap an Error for a fresh promise
//
// # Model Focus
//
//   - [Lens]: Getter/setter pair over a model slice, value semantics
//   - [ComposeLens]: Nest lenses
//   - [EmbedModel]: Run a promise against the focused slice
//   - [SlotLens]: Focus one cache slot in a keyed slot map
//
// # Revalidation
//
// [FromEffectWhenEmpty] governs one cache slot: Empty fires the effect and
// parks the slot at Pending, Stale refires while keeping the previous
// value visible, and Pending, Done and Error are served as-is with no
// emission. Once a slot is Pending, re-evaluation emits nothing — at most
// one effect is in flight per slot. The host moves a slot out of Pending
// by writing the received response into it (typically via [Result.State])
// before the next tick.
//
// # Execution
//
//   - [Update]: Consume the final state with a writer, producing a [Sink]
//   - [Run], [RunWith]: Evaluate a sink, returning (model, effects)
//   - [Never]: Uninhabited error type; [Sink] is the only runnable shape
//
// # Queue
//
// [Queue] holds ordered request records with monotonic string identifiers
// ("{prefix}-{n}", never recycled):
//
//   - [NewQueue], [Queue.Add], [Queue.Remove], [Queue.Insert]
//   - [Queue.Requests], [Queue.Len], [Queue.Any], [Queue.All]
//
// [RunQueue] drives one pass, evaluating a handler promise per entry and
// applying its [Group] decision under a running set of marked group names:
//
//   - [Send], [SendGroup], [StopGroup], [Skip]: Decisions
//   - [SendWhenEmpty], [WithGroup]: Adapt a response-slot State into the
//     standard "send one at a time per group" policy
//   - [QueueResult]: Successor queue plus decided dispatches, in queue
//     order with group-suppressed entries absent
//
// # Example
//
//	type Model struct {
//		Upper map[string]promise.State[string, string]
//	}
//
//	func upper(term string) promise.Promise[Model, string, string, string] {
//		slots := promise.Lens[Model, map[string]promise.State[string, string]]{
//			Get: func(m Model) map[string]promise.State[string, string] { return m.Upper },
//			Set: func(s map[string]promise.State[string, string], m Model) Model { m.Upper = s; return m },
//		}
//		lens := promise.ComposeLens(slots, promise.SlotLens[string, string, string](term))
//		return promise.EmbedModel(lens, promise.FromEffectWhenEmpty[string, string, string]("upper:"+term))
//	}
//
//	sink := promise.Update(upper("hi"), func(_ promise.State[string, string], m Model) (Model, []string) {
//		return m, nil // render from the model; nothing further to emit
//	})
//	model, effects := promise.Run(sink, model)
//	// effects == []string{"upper:hi"}; model.Upper["hi"] is Pending
package promise
