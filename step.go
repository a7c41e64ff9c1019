// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

import "fmt"

// succCall holds the arguments of one recursive successor step:
// the chain's start and the current walk position.
type succCall struct {
	start *Node
	at    *Node
}

// Succ returns the chain representing one more than c.
//
// The returned reference is the one to use as the updated chain. When c is
// zero it is a freshly allocated start node. Otherwise the new node is
// attached in place after c's last node and c itself is returned.
//
// Succ fails only with ErrExhausted, in which case c is returned unchanged.
// c must be acyclic.
func (n *Numerals) Succ(c *Node) (*Node, error) {
	r := bounce(succCall{start: c, at: c}, n.succStep)
	if r.err != nil {
		return c, fmt.Errorf("lnum: successor: %w", r.err)
	}
	return r.c, nil
}

// succStep is one level of the successor recursion.
// It allocates at zero or at the last node, and recurses one link deeper
// otherwise.
func (n *Numerals) succStep(call succCall) (succCall, result, bool) {
	if n.IsZero(call.at) || n.IsZero(call.at.next) {
		node, err := n.Arena().alloc()
		if err != nil {
			return call, result{err: err}, false
		}
		if n.IsZero(call.at) {
			// New chain: the node is the start.
			return call, result{c: node}, false
		}
		call.at.next = node
		return call, result{c: call.start}, false
	}
	return succCall{start: call.start, at: call.at.next}, result{}, true
}
