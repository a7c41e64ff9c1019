// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

// bounce evaluates a tail-recursive function without growing the stack.
//
// The recursion is defunctionalized: S carries the arguments of one call.
// f either returns the arguments of the next recursive call with more=true,
// or the final result with more=false. Intermediate results are ignored.
func bounce[S, A any](s S, f func(S) (S, A, bool)) A {
	for {
		next, a, more := f(s)
		if !more {
			return a
		}
		s = next
	}
}

// result is the outcome of a trampolined chain operation.
type result struct {
	c   *Node
	err error
}
