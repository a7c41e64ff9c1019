// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

import "testing"

func TestBounceImmediate(t *testing.T) {
	got := bounce(7, func(s int) (int, string, bool) {
		return s, "done", false
	})
	if got != "done" {
		t.Fatalf("got %q, want %q", got, "done")
	}
}

func TestBounceCountdown(t *testing.T) {
	var calls int
	got := bounce(10, func(s int) (int, int, bool) {
		calls++
		if s == 0 {
			return s, calls, false
		}
		return s - 1, 0, true
	})
	if got != 11 {
		t.Fatalf("got %d, want 11", got)
	}
}

func TestBounceDeep(t *testing.T) {
	// Far deeper than a plain recursive walk should be asked to go.
	const depth = 1 << 20
	got := bounce(depth, func(s int) (int, bool, bool) {
		if s == 0 {
			return s, true, false
		}
		return s - 1, false, true
	})
	if !got {
		t.Fatal("bounce did not reach the base case")
	}
}

func TestSuccStepCases(t *testing.T) {
	var n Numerals

	// Base case: zero allocates the start.
	_, r, more := n.succStep(succCall{})
	if more || r.err != nil || r.c == nil {
		t.Fatalf("zero case: more=%v err=%v c=%v", more, r.err, r.c)
	}
	start := r.c

	// Base case: last node is extended, start kept.
	_, r, more = n.succStep(succCall{start: start, at: start})
	if more || r.c != start || start.next == nil {
		t.Fatal("last-node case should extend in place and keep the start")
	}

	// Recursive case: walk one link deeper.
	next, _, more := n.succStep(succCall{start: start, at: start})
	if !more || next.at != start.next || next.start != start {
		t.Fatal("inner-node case should recurse to the next link")
	}
}

func TestAddStepCases(t *testing.T) {
	var n Numerals
	one, _ := n.Succ(nil)

	_, r, more := n.addStep(addCall{a: one, b: nil})
	if more || r.c != one {
		t.Fatal("a + 0 should finish with a")
	}

	b, _ := n.Succ(nil)
	b, _ = n.Succ(b)
	last := n.last(b)
	if last != b.next {
		t.Fatal("last should be the second node of b")
	}
	next, _, more := n.addStep(addCall{a: one, b: b, last: last})
	if !more || next.a != one || next.b != last {
		t.Fatal("a + succ(b') should recurse with succ(a) and b'")
	}

	_, r, more = n.addStep(next)
	if more || r.c != one {
		t.Fatal("consuming b's last node should finish with the sum")
	}
	if got := n.Magnitude(one); got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}
