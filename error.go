// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lnum

import "errors"

// ErrExhausted is returned when a successor step cannot allocate a node
// because the arena reached its capacity.
//
// It is the only failure of the lambda number operations. Callers test for
// it with errors.Is; the operations wrap it with context.
var ErrExhausted = errors.New("node arena exhausted")
