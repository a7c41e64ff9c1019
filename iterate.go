// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

import "iter"

// Copy returns a chain of c's magnitude that shares no nodes with c.
// It is built as zero + c, so it walks c's links and never decodes it.
func (n *Numerals) Copy(c *Node) (*Node, error) {
	return n.Add(n.zero, c)
}

// Iterate yields the successors of start in order: succ(start),
// succ(succ(start)), and so on, until the consumer stops.
//
// When a step fails, Iterate yields the last good chain with the error and
// stops. Non-empty chains are extended in place, so every yielded reference
// after the first may be the same start node.
func (n *Numerals) Iterate(start *Node) iter.Seq2[*Node, error] {
	return func(yield func(*Node, error) bool) {
		c := start
		for {
			next, err := n.Succ(c)
			if err != nil {
				yield(c, err)
				return
			}
			c = next
			if !yield(c, nil) {
				return
			}
		}
	}
}
