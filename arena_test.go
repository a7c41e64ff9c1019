// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/lnum"
)

func TestArenaLen(t *testing.T) {
	arena := lnum.NewArena(lnum.WithSlabSize(4))
	num := lnum.New(lnum.WithArena(arena))
	build(t, num, 10)
	if got := arena.Len(); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
	if got := arena.Cap(); got != 0 {
		t.Fatalf("unbounded arena Cap = %d, want 0", got)
	}
}

func TestArenaCapacity(t *testing.T) {
	arena := lnum.NewArena(lnum.WithCapacity(7), lnum.WithSlabSize(3))
	num := lnum.New(lnum.WithArena(arena))
	c := build(t, num, 7)
	if _, err := num.Succ(c); !errors.Is(err, lnum.ErrExhausted) {
		t.Fatalf("got %v, want ErrExhausted", err)
	}
	if got := arena.Len(); got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
}

func TestArenaReset(t *testing.T) {
	arena := lnum.NewArena(lnum.WithCapacity(2))
	num := lnum.New(lnum.WithArena(arena))
	old := build(t, num, 2)
	arena.Reset()
	if arena.Len() != 0 {
		t.Fatalf("Len after Reset = %d, want 0", arena.Len())
	}
	c := build(t, num, 2)
	if got := num.Magnitude(c); got != 2 {
		t.Fatalf("got %d, want 2", got)
	}
	if got := num.Magnitude(old); got != 2 {
		t.Fatalf("chain from before Reset changed: got %d, want 2", got)
	}
}

func TestArenaSlabBoundary(t *testing.T) {
	// Nodes across slab boundaries must link into one chain.
	arena := lnum.NewArena(lnum.WithSlabSize(1))
	num := lnum.New(lnum.WithArena(arena))
	c := build(t, num, 5)
	if got := num.Magnitude(c); got != 5 {
		t.Fatalf("got %d, want 5", got)
	}
}

func TestArenaNonPositiveSlabSize(t *testing.T) {
	arena := lnum.NewArena(lnum.WithSlabSize(-1))
	num := lnum.New(lnum.WithArena(arena))
	c := build(t, num, lnum.DefaultSlabSize+1)
	if got := num.Magnitude(c); got != lnum.DefaultSlabSize+1 {
		t.Fatalf("got %d, want %d", got, lnum.DefaultSlabSize+1)
	}
}

func TestZeroValueArena(t *testing.T) {
	var arena lnum.Arena
	num := lnum.New(lnum.WithArena(&arena))
	build(t, num, 3)
	if arena.Len() != 3 {
		t.Fatalf("got %d, want 3", arena.Len())
	}
}
