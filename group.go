// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// Queue driver. RunQueue folds a per-request handler over a queue,
// threading the model and a set of already-marked group names, and
// collects the effects the handler decided to dispatch.

type groupKind uint8

const (
	groupSend groupKind = iota
	groupSendGroup
	groupStopGroup
	groupSkip
)

// Group is a handler's decision for one queue entry.
type Group[R, F any] struct {
	kind groupKind
	name string
	req  R
	eff  F
}

// Send replaces the entry's payload with r and dispatches eff
// unconditionally.
func Send[R, F any](r R, eff F) Group[R, F] {
	return Group[R, F]{kind: groupSend, req: r, eff: eff}
}

// SendGroup dispatches eff and replaces the entry's payload with r, but
// only if no earlier entry marked the named group in this pass; it then
// marks the group. Otherwise the entry is unchanged and nothing is
// dispatched.
func SendGroup[R, F any](name string, r R, eff F) Group[R, F] {
	return Group[R, F]{kind: groupSendGroup, name: name, req: r, eff: eff}
}

// StopGroup marks the named group without dispatching, blocking later
// entries of the same group in this pass. The entry is unchanged.
func StopGroup[R, F any](name string) Group[R, F] {
	return Group[R, F]{kind: groupStopGroup, name: name}
}

// Skip leaves the entry unchanged and dispatches nothing.
func Skip[R, F any]() Group[R, F] {
	return Group[R, F]{kind: groupSkip}
}

// SendWhenEmpty adapts a response-slot State into an ungrouped decision:
// an Empty slot sends eff, every other slot skips. This never resends
// while a response is in flight or already present.
func SendWhenEmpty[R, F, E, A any](st State[E, A], r R, eff F) Group[R, F] {
	if st.IsEmpty() {
		return Send(r, eff)
	}
	return Skip[R, F]()
}

// WithGroup adapts a response-slot State into a grouped decision: an Empty
// slot sends eff under the named group, a Pending slot stops the group
// (one in flight blocks the rest of the group for this pass), and every
// other slot skips. Entries in distinct groups progress independently.
func WithGroup[R, F, E, A any](name string, st State[E, A], r R, eff F) Group[R, F] {
	switch {
	case st.IsEmpty():
		return SendGroup(name, r, eff)
	case st.IsPending():
		return StopGroup[R, F](name)
	default:
		return Skip[R, F]()
	}
}

// QueueResult is the Done value of a queue driver pass: the successor
// queue and the effects the pass decided to dispatch, in queue order with
// group-suppressed entries absent.
type QueueResult[R, F any] struct {
	Queue   Queue[R]
	Effects []F
}

// RunQueue drives one pass over the queue. For each entry in order, the
// handler's promise is evaluated against the threaded model and its Done
// value — a [Group] decision — is applied under the running set of marked
// group names.
//
// Every entry is visited exactly once per pass. A handler result with no
// usable decision (Empty or valueless Pending) is treated as Skip. If any
// handler fails, the pass still visits the remaining entries, and the
// driver's state is the first Error; otherwise it is Done with the
// [QueueResult]. Effects emitted by the handler promises themselves flow
// through the ordinary effect list, separate from the decided dispatches.
func RunQueue[M, F, E, R any](q Queue[R], handler func(RequestID, R) Promise[M, F, E, Group[R, F]]) Promise[M, F, E, QueueResult[R, F]] {
	return func(m M) (State[E, QueueResult[R, F]], M, []F) {
		next := q
		model := m
		var sent []F
		var emitted []F
		marked := make(map[string]struct{})
		var firstErr E
		failed := false
		for _, entry := range q.entries {
			s, m1, effs := handler(entry.ID, entry.Request)(model)
			model = m1
			emitted = concatEffects(emitted, effs)
			if e, ok := s.GetError(); ok {
				if !failed {
					firstErr, failed = e, true
				}
				continue
			}
			g, ok := s.ToOption().Get()
			if !ok {
				continue
			}
			switch g.kind {
			case groupSend:
				next = next.Insert(entry.ID, g.req)
				sent = append(sent, g.eff)
			case groupSendGroup:
				if _, seen := marked[g.name]; !seen {
					marked[g.name] = struct{}{}
					next = next.Insert(entry.ID, g.req)
					sent = append(sent, g.eff)
				}
			case groupStopGroup:
				marked[g.name] = struct{}{}
			case groupSkip:
			}
		}
		if failed {
			return Error[E, QueueResult[R, F]](firstErr), model, emitted
		}
		return Done[E](QueueResult[R, F]{Queue: next, Effects: sent}), model, emitted
	}
}
