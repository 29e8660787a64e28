// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cpu provides the architecture-specific pause/wait-event hint
// instructions consumed by the spin-wait backoff schedules.
//
// Each hint surrenders pipeline or SMT-sibling resources for a few cycles
// without surrendering the OS time slice, which is why it sits underneath
// every tight phase of the progressive-backoff wait instead of a kernel
// yield. The instruction is emitted via a single assembly stub per
// architecture; there is no generic Go equivalent for "pause" or "wfe".
package cpu
