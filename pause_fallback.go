// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64 && !arm64

package spin

// TPauseNS has no hardware basis on this architecture; CPUHint falls back
// to a scheduler yield instead of a CPU hint instruction, so schedules
// built for this architecture escalate to Yield sooner than on amd64/arm64.
const TPauseNS = 1000

// CPUHint falls back to Yield on architectures with no known pause/wfe
// equivalent. This degrades the tight phases of a [Schedule] into repeated
// scheduler yields rather than failing to compile, trading some latency
// for portability; it still never calls into a blocking syscall.
func CPUHint() {
	Yield()
}
