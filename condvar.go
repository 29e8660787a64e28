// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spin

import (
	"sync/atomic"
	"time"
)

// CondVar is a mutex-free, coalescing condition variable (§3.3 flag
// variant): any number of [CondVar.Notify] calls with no intervening wait
// collapse into a single pending wakeup. Wait is implemented by spinning
// on the internal flag with the CondVar's [Schedule] (a [StagedSchedule]
// unless one is supplied to [NewCondVarWithSchedule]); there is no lock to
// acquire and no spurious wakeup on the no-predicate form.
//
// The zero value is not ready to use; construct with [NewCondVar].
type CondVar struct {
	flag     atomic.Bool
	schedule Schedule
}

// NewCondVar returns a CondVar that backs off using this architecture's
// default [StagedSchedule].
func NewCondVar() *CondVar {
	return &CondVar{schedule: NewStagedSchedule()}
}

// NewCondVarWithSchedule returns a CondVar that backs off using sched
// instead of the default staged schedule.
func NewCondVarWithSchedule(sched Schedule) *CondVar {
	return &CondVar{schedule: sched}
}

// Wait blocks until a pending Notify is observed, consuming it atomically.
func (c *CondVar) Wait() {
	c.schedule.Wait(func() bool {
		return c.flag.CompareAndSwap(true, false)
	})
}

// WaitPredicate blocks until pred returns true. It does not touch the
// internal flag; a pending Notify is left untouched for a later Wait.
func (c *CondVar) WaitPredicate(pred Predicate) {
	c.schedule.Wait(pred)
}

// WaitFor is WaitUntil(time.Now().Add(d)).
func (c *CondVar) WaitFor(d time.Duration) bool {
	return c.WaitUntil(time.Now().Add(d))
}

// WaitUntil blocks until a pending Notify is observed and consumed, or
// deadline is reached, whichever comes first. Returns false if the
// deadline was reached without observing a Notify.
func (c *CondVar) WaitUntil(deadline time.Time) bool {
	timedOut := false
	c.schedule.Wait(func() bool {
		if !time.Now().Before(deadline) {
			timedOut = true
			return true
		}
		return c.flag.CompareAndSwap(true, false)
	})
	return !timedOut
}

// WaitForPredicate is WaitUntilPredicate(pred, time.Now().Add(d)).
func (c *CondVar) WaitForPredicate(pred Predicate, d time.Duration) bool {
	return c.WaitUntilPredicate(pred, time.Now().Add(d))
}

// WaitUntilPredicate blocks until pred returns true or deadline is
// reached, whichever comes first.
func (c *CondVar) WaitUntilPredicate(pred Predicate, deadline time.Time) bool {
	timedOut := false
	c.schedule.Wait(func() bool {
		if !time.Now().Before(deadline) {
			timedOut = true
			return true
		}
		return pred()
	})
	return !timedOut
}

// Notify signals one waiter. Non-blocking and wait-free. The store is
// sequentially consistent, so any Wait that begins strictly after this
// call completes observes and consumes the signal unless another waiter
// consumes it first.
func (c *CondVar) Notify() {
	c.flag.Store(true)
}

// CountingCondVar is a mutex-free, queueing condition variable (§3.3
// counter variant): each Notify is consumed by at most one Wait, so k
// notifies with no intervening waits allow exactly k subsequent waits to
// complete without a further notify.
//
// The zero value is not ready to use; construct with [NewCountingCondVar].
type CountingCondVar struct {
	counter  atomic.Int32
	schedule Schedule
}

// NewCountingCondVar returns a CountingCondVar that backs off using this
// architecture's default [StagedSchedule].
func NewCountingCondVar() *CountingCondVar {
	return &CountingCondVar{schedule: NewStagedSchedule()}
}

// NewCountingCondVarWithSchedule returns a CountingCondVar that backs off
// using sched instead of the default staged schedule.
func NewCountingCondVarWithSchedule(sched Schedule) *CountingCondVar {
	return &CountingCondVar{schedule: sched}
}

// Wait blocks until the counter is positive, then atomically decrements
// it and returns.
func (c *CountingCondVar) Wait() {
	c.schedule.Wait(func() bool {
		for {
			n := c.counter.Load()
			if n <= 0 {
				return false
			}
			if c.counter.CompareAndSwap(n, n-1) {
				return true
			}
		}
	})
}

// WaitPredicate blocks until pred returns true. Like [CondVar.WaitPredicate],
// it does not touch the counter, so a pending Notify a caller "would have
// consumed" had it called Wait instead is left for a future waiter. See
// DESIGN.md (OQ-4) for why this asymmetry is kept rather than resolved.
func (c *CountingCondVar) WaitPredicate(pred Predicate) {
	c.schedule.Wait(pred)
}

// WaitFor is WaitUntil(time.Now().Add(d)).
func (c *CountingCondVar) WaitFor(d time.Duration) bool {
	return c.WaitUntil(time.Now().Add(d))
}

// WaitUntil blocks until the counter is positive and decremented, or
// deadline is reached, whichever comes first.
func (c *CountingCondVar) WaitUntil(deadline time.Time) bool {
	timedOut := false
	c.schedule.Wait(func() bool {
		if !time.Now().Before(deadline) {
			timedOut = true
			return true
		}
		for {
			n := c.counter.Load()
			if n <= 0 {
				return false
			}
			if c.counter.CompareAndSwap(n, n-1) {
				return true
			}
		}
	})
	return !timedOut
}

// Notify increments the counter by one, making one additional Wait able
// to complete without blocking.
func (c *CountingCondVar) Notify() {
	c.counter.Add(1)
}
