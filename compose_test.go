// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/promise"
)

// emitting returns a promise that yields the given state, bumps the write
// count, and emits one effect, so ordering and threading are observable.
func emitting(s promise.State[string, int], eff string) promise.Promise[counter, string, string, int] {
	return func(m counter) (promise.State[string, int], counter, []string) {
		m.writes++
		return s, m, []string{eff}
	}
}

func TestAndThenBindsUsableValues(t *testing.T) {
	cont := func(a int) promise.Promise[counter, string, string, string] {
		return promise.FromValue[counter, string, string]("got:" + string(rune('0'+a)))
	}

	s, _, _ := promise.AndThen(emitting(promise.Done[string](1), "p"), cont)(counter{})
	if s != promise.Done[string]("got:1") {
		t.Fatalf("done: got %v, want Done(got:1)", s)
	}

	s, _, _ = promise.AndThen(emitting(promise.Stale[string](2), "p"), cont)(counter{})
	if s != promise.Done[string]("got:2") {
		t.Fatalf("stale: got %v, want Done(got:2)", s)
	}
}

// TestAndThenForcesPendingThroughChain: a Pending-with-value source keeps
// the in-flight signal on the continuation's state.
func TestAndThenForcesPendingThroughChain(t *testing.T) {
	src := emitting(promise.Pending[string](promise.Some(3)), "p")
	cont := func(a int) promise.Promise[counter, string, string, int] {
		return promise.FromValue[counter, string, string](a * 10)
	}
	s, _, _ := promise.AndThen(src, cont)(counter{})
	if s != promise.Pending[string](promise.Some(30)) {
		t.Fatalf("got %v, want Pending(Some 30)", s)
	}

	// A continuation that is itself Error is masked by the forcing:
	// SetPending turns Error into Pending(None).
	contErr := func(int) promise.Promise[counter, string, string, int] {
		return promise.FromError[counter, string, string, int]("late")
	}
	s, _, _ = promise.AndThen(src, contErr)(counter{})
	if s != promise.Pending[string, int](promise.None[int]()) {
		t.Fatalf("got %v, want Pending(None) (SetPending over Error)", s)
	}
}

func TestAndThenShortCircuits(t *testing.T) {
	called := false
	cont := func(int) promise.Promise[counter, string, string, int] {
		called = true
		return promise.FromValue[counter, string, string](0)
	}

	s, _, effs := promise.AndThen(emitting(promise.Empty[string, int](), "p"), cont)(counter{})
	if s != promise.Empty[string, int]() {
		t.Fatalf("empty: got %v, want Empty", s)
	}
	if !slices.Equal(effs, []string{"p"}) {
		t.Fatalf("empty: got %v, want [p]", effs)
	}

	s, _, effs = promise.AndThen(emitting(promise.Pending[string, int](promise.None[int]()), "p"), cont)(counter{})
	if s != promise.Pending[string, int](promise.None[int]()) {
		t.Fatalf("pending-none: got %v, want Pending(None)", s)
	}
	if !slices.Equal(effs, []string{"p"}) {
		t.Fatalf("pending-none: got %v, want [p]", effs)
	}

	s, _, effs = promise.AndThen(emitting(promise.Error[string, int]("boom"), "p"), cont)(counter{})
	if s != promise.Error[string, int]("boom") {
		t.Fatalf("error: got %v, want Error(boom)", s)
	}
	if !slices.Equal(effs, []string{"p"}) {
		t.Fatalf("error: got %v, want [p]", effs)
	}

	if called {
		t.Fatal("continuation must not run on short-circuit")
	}
}

func TestAndThenThreadsModelAndEffects(t *testing.T) {
	cont := func(a int) promise.Promise[counter, string, string, int] {
		return emitting(promise.Done[string](a+1), "second")
	}
	s, m, effs := promise.AndThen(emitting(promise.Done[string](1), "first"), cont)(counter{})
	if s != promise.Done[string](2) {
		t.Fatalf("got %v, want Done(2)", s)
	}
	if m.writes != 2 {
		t.Fatalf("got %d writes, want 2", m.writes)
	}
	if !slices.Equal(effs, []string{"first", "second"}) {
		t.Fatalf("got %v, want [first second]", effs)
	}
}

func TestAndMapThreadsLeftToRight(t *testing.T) {
	pf := func(m counter) (promise.State[string, func(int) int], counter, []string) {
		m.writes++
		writes := m.writes
		return promise.Done[string](func(x int) int { return x + writes }), m, []string{"f"}
	}
	pa := func(m counter) (promise.State[string, int], counter, []string) {
		// pf's model update must be visible here.
		return promise.Done[string](m.writes * 100), m, []string{"a"}
	}
	s, m, effs := promise.AndMap(promise.Promise[counter, string, string, func(int) int](pf), promise.Promise[counter, string, string, int](pa))(counter{})
	if s != promise.Done[string](101) {
		t.Fatalf("got %v, want Done(101)", s)
	}
	if m.writes != 1 {
		t.Fatalf("got %d writes, want 1", m.writes)
	}
	if !slices.Equal(effs, []string{"f", "a"}) {
		t.Fatalf("got %v, want [f a]", effs)
	}
}

// TestAndMapErrorShortCircuit: a promised error argument absorbs a pure
// function with no effects.
func TestAndMapErrorShortCircuit(t *testing.T) {
	identity := func(x int) int { return x }
	s, _, effs := promise.AndMap(
		promise.FromValue[counter, string, string](identity),
		promise.FromError[counter, string, string, int]("E"),
	)(counter{})
	if s != promise.Error[string, int]("E") {
		t.Fatalf("got %v, want Error(E)", s)
	}
	if len(effs) != 0 {
		t.Fatalf("got %d effects, want 0", len(effs))
	}
}

// TestAndMapLeftBiasedError: when both sides fail, the leftmost error wins
// and the right side is never evaluated.
func TestAndMapLeftBiasedError(t *testing.T) {
	evaluated := false
	right := promise.Promise[counter, string, string, int](func(m counter) (promise.State[string, int], counter, []string) {
		evaluated = true
		return promise.Error[string, int]("R"), m, nil
	})
	s, _, effs := promise.AndMap(
		promise.FromError[counter, string, string, func(int) int]("L"),
		right,
	)(counter{})
	if s != promise.Error[string, int]("L") {
		t.Fatalf("got %v, want Error(L)", s)
	}
	if len(effs) != 0 {
		t.Fatalf("got %d effects, want 0", len(effs))
	}
	if evaluated {
		t.Fatal("right side must not be evaluated after a left error")
	}
}

func TestMap2(t *testing.T) {
	p := promise.Map2(func(a int, b int) int { return a*10 + b },
		promise.FromValue[counter, string, string](1),
		promise.FromValue[counter, string, string](2),
	)
	s, _, _ := p(counter{})
	if s != promise.Done[string](12) {
		t.Fatalf("got %v, want Done(12)", s)
	}
}

func TestMap3PendingSide(t *testing.T) {
	p := promise.Map3(func(a, b, c int) int { return a + b + c },
		promise.FromValue[counter, string, string](1),
		promise.FromState[counter, string](promise.Pending[string](promise.Some(2))),
		promise.FromValue[counter, string, string](3),
	)
	s, _, _ := p(counter{})
	if s != promise.Pending[string](promise.Some(6)) {
		t.Fatalf("got %v, want Pending(Some 6)", s)
	}
}

func TestMap4(t *testing.T) {
	p := promise.Map4(func(a, b, c, d int) int { return a + b + c + d },
		promise.FromValue[counter, string, string](1),
		promise.FromValue[counter, string, string](2),
		promise.FromValue[counter, string, string](3),
		promise.FromValue[counter, string, string](4),
	)
	s, _, _ := p(counter{})
	if s != promise.Done[string](10) {
		t.Fatalf("got %v, want Done(10)", s)
	}
}

func TestCombine(t *testing.T) {
	ps := []promise.Promise[counter, string, string, int]{
		emitting(promise.Done[string](1), "a"),
		emitting(promise.Done[string](2), "b"),
		emitting(promise.Done[string](3), "c"),
	}
	s, m, effs := promise.Combine(ps)(counter{})
	vals, ok := s.ToOption().Get()
	if !ok || !s.IsDone() || !slices.Equal(vals, []int{1, 2, 3}) {
		t.Fatalf("got %v, want Done([1 2 3])", s)
	}
	if m.writes != 3 {
		t.Fatalf("got %d writes, want 3", m.writes)
	}
	if !slices.Equal(effs, []string{"a", "b", "c"}) {
		t.Fatalf("got %v, want [a b c]", effs)
	}
}

func TestCombineEmpty(t *testing.T) {
	s, _, effs := promise.Combine[counter, string, string, int](nil)(counter{})
	vals, ok := s.ToOption().Get()
	if !ok || !s.IsDone() || len(vals) != 0 {
		t.Fatalf("got %v, want Done([])", s)
	}
	if len(effs) != 0 {
		t.Fatalf("got %d effects, want 0", len(effs))
	}
}
