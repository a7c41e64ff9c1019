// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

// std backs the package-level operations: nil zero, unbounded arena.
var std Numerals

// Zero returns the default zero sentinel, nil.
func Zero() *Node { return std.Zero() }

// Step returns the successor of c using the default Numerals.
// See [Numerals.Succ].
func Step(c *Node) (*Node, error) { return std.Succ(c) }

// Add returns a + b using the default Numerals.
// See [Numerals.Add].
func Add(a, b *Node) (*Node, error) { return std.Add(a, b) }

// Magnitude counts the links of c.
// See [Numerals.Magnitude].
func Magnitude(c *Node) uint64 { return std.Magnitude(c) }
