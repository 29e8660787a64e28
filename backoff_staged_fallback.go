// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package spin

// defaultStagedPhases falls back to a single short tight-check phase
// before the terminal yield loop, since this architecture has no pause
// instruction to escalate through (CPUHint already degrades to Yield
// here, so additional hint-count phases would just be repeated yields).
func defaultStagedPhases() stagedPhases {
	return stagedPhases{
		finite: []phase{
			{iterations: 10, hints: 0},
		},
		terminal: phase{iterations: 5, hints: 1},
	}
}
