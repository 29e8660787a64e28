// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build amd64

package spin

// defaultStagedPhases returns the x86_64 staged schedule (§3.1): five
// phases with per-iteration PAUSE counts (0, 1, 10, 500, 10000), the last
// looping forever with an OS yield between batches. Iteration counts are
// the ones this package's backoff algorithm is grounded on.
func defaultStagedPhases() stagedPhases {
	return stagedPhases{
		finite: []phase{
			{iterations: 5, hints: 0},
			{iterations: 10, hints: 1},
			{iterations: 50, hints: 10},
			{iterations: 20, hints: 500},
		},
		terminal: phase{iterations: 5, hints: 10000},
	}
}
