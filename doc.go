// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lnum provides lambda numbers: natural numbers built from nothing
// but a zero sentinel and a successor relation, in Go.
//
// A lambda number is a chain of [Node] values. The empty chain is zero; every
// other number is a start node whose links lead, one node per unit, to the
// terminal marker (nil). No machine integer is used to represent or compute a
// number. The only bridge back to ordinary counting is [Numerals.Magnitude],
// which walks a chain and counts its links for display and testing.
//
// # Design Philosophy
//
// lnum provides:
//   - A single unambiguous successor contract: [Numerals.Succ] always returns
//     the reference the caller must use as the updated chain
//   - Peano addition defined by recursion on the second operand's links
//   - Trampolined recursion, so chain length is bounded by the arena and not
//     by the goroutine stack
//   - Arena-scoped node lifetime instead of per-node reclamation
//
// # Chain Representation
//
// Extension mutates the tail; it does not prepend. Extending zero allocates a
// node that becomes the new start. Extending a non-empty chain attaches a node
// to the current last node and keeps the original start:
//
//	zero           -> Succ -> [n1]
//	[n1]           -> Succ -> [n1]->[n2]          (same start n1)
//	[n1]->[n2]     -> Succ -> [n1]->[n2]->[n3]    (same start n1)
//
// Because extension happens in place, every reference to a non-empty chain
// observes the new length. Hold an independent chain with [Numerals.Copy]
// when a snapshot is needed.
//
// # Core Operations
//
//   - [Numerals.Zero]: The zero sentinel (the empty chain)
//   - [Numerals.Succ]: One more than a chain
//   - [Numerals.Add]: Sum of two chains; a + 0 = a, a + succ(b) = succ(a) + b
//   - [Numerals.Magnitude]: Count links (read-only decode)
//
// Derived operations:
//
//   - [Numerals.IsZero]: Reports whether a chain is empty
//   - [Numerals.Copy]: Independent chain of the same magnitude
//   - [Numerals.Iterate]: Successive numbers as an iterator
//
// Package-level [Zero], [Step], [Add] and [Magnitude] operate on a
// process-wide default [Numerals] with a nil zero sentinel and an unbounded
// arena.
//
// # Zero Sentinel
//
// The zero sentinel defaults to nil, which is also the terminal marker. Any
// other *Node may be supplied with [WithZero]; it is compared by identity,
// never dereferenced, and never linked into a chain.
//
// # Arena
//
// Nodes are bump-allocated from an [Arena] in slabs. An arena with a capacity
// ([WithCapacity]) models bounded memory: the allocation that would exceed it
// fails with [ErrExhausted], which [Numerals.Succ] and [Numerals.Add] return
// to the caller.
//
// # Concurrency
//
// [Numerals] and [Arena] are not safe for concurrent use. A chain is owned by
// one caller at a time; in-place extension must not race with any reader.
//
// # Preconditions
//
// Chains must be acyclic; this is not checked at run time. Add's operands may
// share nodes, as the driver's successive numbers do: Add consumes the second
// operand only up to the last node it had on entry.
//
// # Example
//
//	num := lnum.New()
//	two, _ := num.Succ(num.Zero())
//	two, _ = num.Succ(two)
//	one, _ := num.Succ(num.Zero())
//	three, _ := num.Add(two, one)
//	fmt.Println(num.Magnitude(three)) // 3
package lnum
