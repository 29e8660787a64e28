// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package spin

import "code.hybscloud.com/spin/internal/cpu"

// TPauseNS is the measured nanoseconds-per-hint for PAUSE on x86_64, used
// to convert schedule delay budgets into hint counts (§3.2).
const TPauseNS = 35

// CPUHint emits a single PAUSE instruction, reducing SMT-sibling
// contention and avoiding a memory-order pipeline flush on loop exit.
func CPUHint() {
	cpu.Hint()
}
