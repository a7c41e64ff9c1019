// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

// Magnitude counts the links from c's start to the end of the chain.
//
// It is the only conversion from a lambda number to a machine integer and is
// meant for display and testing. Magnitude does not modify c.
func (n *Numerals) Magnitude(c *Node) uint64 {
	var m uint64
	for !n.IsZero(c) {
		m++
		c = c.next
	}
	return m
}
