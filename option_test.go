// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise_test

import (
	"testing"

	"code.hybscloud.com/promise"
)

func TestOptionAccessors(t *testing.T) {
	some := promise.Some(5)
	if !some.IsSome() || some.IsNone() {
		t.Fatal("Some: wrong predicates")
	}
	if v, ok := some.Get(); !ok || v != 5 {
		t.Fatalf("got (%d, %v), want (5, true)", v, ok)
	}
	if got := some.OrElse(9); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}

	none := promise.None[int]()
	if none.IsSome() || !none.IsNone() {
		t.Fatal("None: wrong predicates")
	}
	if _, ok := none.Get(); ok {
		t.Fatal("None: want no value")
	}
	if got := none.OrElse(9); got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestMatchOption(t *testing.T) {
	got := promise.MatchOption(promise.Some(2),
		func() string { return "none" },
		func(x int) string { return "some" },
	)
	if got != "some" {
		t.Fatalf("got %q, want some", got)
	}
	got = promise.MatchOption(promise.None[int](),
		func() string { return "none" },
		func(x int) string { return "some" },
	)
	if got != "none" {
		t.Fatalf("got %q, want none", got)
	}
}

func TestMapOption(t *testing.T) {
	if got := promise.MapOption(promise.Some(3), func(x int) int { return x * 2 }); got != promise.Some(6) {
		t.Fatalf("got %v, want Some(6)", got)
	}
	if got := promise.MapOption(promise.None[int](), func(x int) int { return x * 2 }); got != promise.None[int]() {
		t.Fatalf("got %v, want None", got)
	}
}
