// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

// Node is one link of a lambda number.
//
// A chain is referenced by its start node. Following Next from the start
// reaches the terminal marker (nil) after exactly as many links as the
// number's magnitude.
type Node struct {
	next *Node
}

// Next returns the following node, or nil at the end of a chain.
// Next of a nil node is nil.
func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// Numerals binds the lambda number operations to a zero sentinel and a node
// arena. The zero value is ready to use: nil zero, unbounded arena.
type Numerals struct {
	zero  *Node
	arena *Arena
}

// Option configures a Numerals.
type Option func(*Numerals)

// WithZero sets the zero sentinel. The sentinel is compared by identity and
// never dereferenced.
func WithZero(z *Node) Option {
	return func(n *Numerals) { n.zero = z }
}

// WithArena sets the arena new nodes are allocated from.
func WithArena(a *Arena) Option {
	return func(n *Numerals) { n.arena = a }
}

// New creates a Numerals.
func New(opts ...Option) *Numerals {
	n := &Numerals{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Zero returns the zero sentinel.
func (n *Numerals) Zero() *Node { return n.zero }

// IsZero reports whether c is the empty chain: the zero sentinel or the
// terminal marker.
func (n *Numerals) IsZero(c *Node) bool {
	return c == nil || c == n.zero
}

// Arena returns the arena backing n, creating an unbounded one on first use.
func (n *Numerals) Arena() *Arena {
	if n.arena == nil {
		n.arena = NewArena()
	}
	return n.arena
}
