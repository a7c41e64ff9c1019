// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

// DefaultSlabSize is the number of nodes an arena allocates at a time.
const DefaultSlabSize = 256

// Arena bump-allocates nodes in slabs. Nodes are never freed one by one;
// they live as long as any chain or the arena references them.
//
// The zero value is an unbounded arena with DefaultSlabSize slabs.
// An Arena is not safe for concurrent use.
type Arena struct {
	slabs    [][]Node
	used     int
	slabSize int
	capacity uint64
	n        uint64
}

// ArenaOption configures an Arena.
type ArenaOption func(*Arena)

// WithCapacity bounds the number of nodes the arena hands out.
// Zero means unbounded.
func WithCapacity(n uint64) ArenaOption {
	return func(a *Arena) { a.capacity = n }
}

// WithSlabSize sets how many nodes are allocated per slab.
// Non-positive sizes select DefaultSlabSize.
func WithSlabSize(n int) ArenaOption {
	return func(a *Arena) { a.slabSize = n }
}

// NewArena creates an arena.
func NewArena(opts ...ArenaOption) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// alloc returns a fresh node with a terminal link, or ErrExhausted when the
// capacity has been reached.
func (a *Arena) alloc() (*Node, error) {
	if a.capacity > 0 && a.n >= a.capacity {
		return nil, ErrExhausted
	}
	if len(a.slabs) == 0 || a.used == len(a.slabs[len(a.slabs)-1]) {
		size := a.slabSize
		if size <= 0 {
			size = DefaultSlabSize
		}
		if a.capacity > 0 {
			if rest := a.capacity - a.n; rest < uint64(size) {
				size = int(rest)
			}
		}
		a.slabs = append(a.slabs, make([]Node, size))
		a.used = 0
	}
	node := &a.slabs[len(a.slabs)-1][a.used]
	a.used++
	a.n++
	return node, nil
}

// Len returns the number of nodes handed out since creation or the last Reset.
func (a *Arena) Len() uint64 { return a.n }

// Cap returns the capacity, or zero for an unbounded arena.
func (a *Arena) Cap() uint64 { return a.capacity }

// Reset drops the arena's slabs and restores its full capacity.
// Chains built before Reset stay valid but are no longer owned by the arena.
func (a *Arena) Reset() {
	a.slabs = nil
	a.used = 0
	a.n = 0
}
