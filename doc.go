// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spin provides mutex-free synchronization primitives for threads
// that must never invoke the kernel scheduler on their fast path: a
// progressive-backoff wait, a spin condition variable built on top of it,
// and the platform pause-instruction layer both are built on.
//
// The epoch-based reclaimable object and the atomic owning pointer it is
// built on live in the sibling packages [code.hybscloud.com/spin/reclaim]
// and [code.hybscloud.com/spin/atomix].
//
// # Progressive-backoff wait
//
// [Wait] is the lightest-weight form: a zero-value-usable counter meant to
// be embedded directly in a CAS retry loop.
//
//	var w spin.Wait
//	for !tryCAS() {
//	    w.Once()
//	}
//
// [StagedSchedule] and [PureExponentialSchedule] are the two documented
// predicate-driven schedules, for waits that aren't simple CAS loops:
//
//	sched := spin.NewStagedSchedule()
//	sched.Wait(func() bool { return ready.Load() })
//
// # Spin condition variable
//
// [CondVar] (coalescing) and [CountingCondVar] (queueing) both wait on top
// of a [Schedule] and require no mutex:
//
//	cv := spin.NewCondVar()
//	go func() { produce(); cv.Notify() }()
//	cv.Wait()
//
// # Platform pause layer
//
// [CPUHint] emits one architecture-appropriate spin-wait hint instruction
// (PAUSE on amd64, WFE on arm64, a scheduler yield elsewhere). [Yield] and
// [SleepFor] are the further escalation steps the backoffs in this package
// use internally; [StagedSchedule] escalates only to Yield and never sleeps.
package spin
