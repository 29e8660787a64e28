// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package spin

import "code.hybscloud.com/spin/internal/cpu"

// TPauseNS is the measured nanoseconds-per-hint for WFE on arm64. Sibling
// files in the original source this module is grounded on disagree between
// 1333ns and 970ns for this constant across different cores; 970ns is
// taken as the default here and is a calibration target, not a
// correctness requirement (§9).
const TPauseNS = 970

// CPUHint emits a single WFE (wait-for-event) instruction.
func CPUHint() {
	cpu.Hint()
}

// TPauseISBNS is the measured nanoseconds-per-hint for ISB, the
// alternative hint on arm64 cores where WFE's granularity is too coarse
// for sub-microsecond backoff stages.
const TPauseISBNS = 10

// CPUHintISB emits a single ISB (instruction synchronization barrier)
// instruction instead of WFE. Use [NewPureExponentialScheduleISB] to build
// a schedule around this hint instead of the WFE default.
func CPUHintISB() {
	cpu.HintISB()
}
