// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package cpu

// Hint emits a single PAUSE instruction. Implemented in hint_amd64.s.
//
//go:noescape
func Hint()
