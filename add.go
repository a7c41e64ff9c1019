// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

// addCall holds the arguments of one recursive addition step:
// the running sum, the remaining links of the second operand, and the
// operand's last node as it stood when Add was called.
type addCall struct {
	a    *Node
	b    *Node
	last *Node
}

// Add returns the chain representing a + b.
//
// Addition recurses on b's structure: a + 0 = a, and a + succ(b') =
// succ(a) + b'. Each link of b costs one successor step on a; no numeral is
// decoded. When b is zero, a is returned as is.
//
// a is extended in place when it is non-empty, so a and the result share a
// start. b may share nodes with a: the walk over b ends at b's last node as
// it stood on entry, so links appended to a during the addition are never
// consumed.
//
// On ErrExhausted Add returns the zero sentinel; a may already hold part of
// the sum.
func (n *Numerals) Add(a, b *Node) (*Node, error) {
	if n.IsZero(b) {
		return a, nil
	}
	r := bounce(addCall{a: a, b: b, last: n.last(b)}, n.addStep)
	if r.err != nil {
		return n.zero, r.err
	}
	return r.c, nil
}

func (n *Numerals) addStep(call addCall) (addCall, result, bool) {
	if n.IsZero(call.b) {
		return call, result{c: call.a}, false
	}
	a, err := n.Succ(call.a)
	if err != nil {
		return call, result{err: err}, false
	}
	if call.b == call.last {
		return call, result{c: a}, false
	}
	return addCall{a: a, b: call.b.next, last: call.last}, result{}, true
}

// last returns the final node of the non-empty chain c.
func (n *Numerals) last(c *Node) *Node {
	for !n.IsZero(c.next) {
		c = c.next
	}
	return c
}
