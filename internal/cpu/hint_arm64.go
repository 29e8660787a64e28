// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package cpu

// Hint emits a single WFE (wait-for-event) instruction. Implemented in
// hint_arm64.s.
//
//go:noescape
func Hint()

// HintISB emits a single ISB (instruction synchronization barrier)
// instruction instead of WFE. Some arm64 cores have WFE granularity too
// coarse for sub-microsecond backoff stages; ISB gives a much shorter,
// more predictable pause at the cost of not actually waiting for an event.
// Implemented in hint_arm64.s.
//
//go:noescape
func HintISB()
