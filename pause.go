// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spin

import (
	"runtime"
	"time"
)

// Yield surrenders the calling goroutine to the scheduler for as short a
// time as the runtime allows. Used in the terminal phase of a [Schedule]
// between batches of hints, in the middle stage of [Wait.Once], and as
// the CPUHint fallback on architectures without a hint instruction.
func Yield() {
	runtime.Gosched()
}

// SleepFor parks the calling goroutine for at least d. Used only once a
// schedule's delay budget has crossed its sleep threshold; never called
// from the tight phases.
func SleepFor(d time.Duration) {
	time.Sleep(d)
}
