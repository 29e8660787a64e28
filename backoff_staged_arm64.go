// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build arm64

package spin

// defaultStagedPhases returns the arm64 staged schedule (§3.1): four
// phases with per-iteration WFE counts (0, 1, 10, 250), the last looping
// forever with an OS yield between batches.
func defaultStagedPhases() stagedPhases {
	return stagedPhases{
		finite: []phase{
			{iterations: 2, hints: 0},
			{iterations: 10, hints: 1},
			{iterations: 25, hints: 10},
		},
		terminal: phase{iterations: 5, hints: 250},
	}
}

// NewPureExponentialScheduleISB returns a PureExponentialSchedule that
// hints with CPUHintISB (ISB) instead of CPUHint (WFE). Use on arm64
// cores where WFE's wakeup granularity is too coarse for the schedule's
// shorter delay budgets.
func NewPureExponentialScheduleISB(minNS, maxNS, sleepThresholdNS uint64) *PureExponentialSchedule {
	return &PureExponentialSchedule{
		tPauseNS:         TPauseISBNS,
		minNS:            minNS,
		maxNS:            maxNS,
		sleepThresholdNS: sleepThresholdNS,
		hint:             CPUHintISB,
		yieldAtCap:       true,
	}
}
