// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spin

import "time"

// Predicate is polled by a [Schedule] until it returns true. It is
// invoked at least once before any delay, is never skipped, and any value
// it panics with propagates unchanged — the schedule holds no state that
// needs unwinding.
type Predicate func() bool

// Schedule is a predicate-driven escalating wait: poll the predicate,
// delay by an increasing amount if it is false, repeat. Two schedules are
// provided: [StagedSchedule] (fixed iteration counts per phase) and
// [PureExponentialSchedule] (geometric delay budgets). Both guarantee the
// predicate is checked immediately before every delay step and that the
// schedule never allocates, panics, or makes a blocking syscall before its
// sleep-threshold phase.
type Schedule interface {
	// Wait blocks until pred returns true.
	Wait(pred Predicate)
}

// Wait is a minimal escalating backoff meant to be embedded directly in a
// CAS retry loop, mirroring the tight-loop shape every queue variant in
// [code.hybscloud.com/spin/lfq] uses around its compare-and-swap. Its zero
// value is ready to use.
//
//	var w spin.Wait
//	for !atomicCompareAndSwap() {
//	    w.Once()
//	}
//	w.Reset()
type Wait struct {
	n uint32
}

// spin/yield/sleep thresholds for [Wait.Once]. Chosen so the same staged
// escalation shape as [StagedSchedule] applies without requiring the
// caller to hold a Schedule value.
const (
	waitHintIterations  = 1000
	waitYieldIterations = 50
)

// Once performs one escalation step: a CPU hint while the retry count is
// low, a scheduler yield once that count passes waitHintIterations, and a
// short timed sleep once it passes waitYieldIterations beyond that. Call
// it once per failed attempt.
func (w *Wait) Once() {
	switch {
	case w.n < waitHintIterations:
		CPUHint()
	case w.n < waitHintIterations+waitYieldIterations:
		Yield()
	default:
		SleepFor(time.Microsecond)
	}
	w.n++
}

// Reset returns the backoff to its initial, all-hints state. Call after a
// successful attempt so the next contended retry starts from the
// cheapest escalation step again.
func (w *Wait) Reset() {
	w.n = 0
}

// phase is one segment of a [StagedSchedule]: check the predicate
// iterations times, emitting hints CPU hints between each check.
type phase struct {
	iterations uint64
	hints      uint64
}

// StagedSchedule implements the staged backoff of §3.1/§4.2: a sequence of
// finite phases with increasing per-iteration delay, followed by a
// terminal phase that loops forever, inserting an OS yield between
// batches. Phase counts default to the ones this package is grounded on
// (5 phases on amd64, 4 on arm64); construct with
// [NewStagedScheduleWithPhases] to override them.
type StagedSchedule struct {
	phases   []phase
	terminal phase
	hint     func()
}

// NewStagedSchedule returns a StagedSchedule using this architecture's
// default phase counts.
func NewStagedSchedule() *StagedSchedule {
	return newStagedSchedule(defaultStagedPhases(), CPUHint)
}

// NewStagedScheduleWithPhases returns a StagedSchedule with caller-supplied
// finite phases and terminal phase. Each phase is (iterations, hints per
// iteration); the terminal phase loops forever, yielding between batches
// of terminal.iterations checks.
func NewStagedScheduleWithPhases(finite []struct{ Iterations, Hints uint64 }, terminalIterations, terminalHints uint64) *StagedSchedule {
	ph := make([]phase, len(finite))
	for i, f := range finite {
		ph[i] = phase{iterations: f.Iterations, hints: f.Hints}
	}
	return newStagedSchedule(stagedPhases{finite: ph, terminal: phase{iterations: terminalIterations, hints: terminalHints}}, CPUHint)
}

func newStagedSchedule(p stagedPhases, hint func()) *StagedSchedule {
	return &StagedSchedule{phases: p.finite, terminal: p.terminal, hint: hint}
}

type stagedPhases struct {
	finite   []phase
	terminal phase
}

// Wait implements [Schedule].
func (s *StagedSchedule) Wait(pred Predicate) {
	for _, ph := range s.phases {
		for i := uint64(0); i < ph.iterations; i++ {
			if pred() {
				return
			}
			for h := uint64(0); h < ph.hints; h++ {
				s.hint()
			}
		}
	}
	for {
		for i := uint64(0); i < s.terminal.iterations; i++ {
			if pred() {
				return
			}
			for h := uint64(0); h < s.terminal.hints; h++ {
				s.hint()
			}
		}
		Yield()
	}
}

// PureExponentialSchedule implements the pure-exponential backoff of
// §3.1/§4.2: geometric delay budgets D_k = tPauseNS·2^k, realized as a
// burst of D_k/tPauseNS hints below sleepThresholdNS and a timed sleep
// above it, capped at maxNS. The burst is a runtime counted loop of hint
// calls; it is not unrolled.
type PureExponentialSchedule struct {
	tPauseNS         uint64
	minNS            uint64
	maxNS            uint64
	sleepThresholdNS uint64
	hint             func()
	yieldAtCap       bool
}

// NewPureExponentialSchedule returns a PureExponentialSchedule using this
// architecture's default hint and its calibrated TPauseNS.
func NewPureExponentialSchedule(minNS, maxNS, sleepThresholdNS uint64) *PureExponentialSchedule {
	return &PureExponentialSchedule{
		tPauseNS:         TPauseNS,
		minNS:            minNS,
		maxNS:            maxNS,
		sleepThresholdNS: sleepThresholdNS,
		hint:             CPUHint,
		yieldAtCap:       true,
	}
}

// Wait implements [Schedule].
func (s *PureExponentialSchedule) Wait(pred Predicate) {
	tPause := s.tPauseNS
	if tPause == 0 {
		tPause = 1
	}
	for d := tPause; d < s.maxNS; d *= 2 {
		if pred() {
			return
		}
		if d < s.minNS {
			continue
		}
		if d < s.sleepThresholdNS {
			n := d / tPause
			for i := uint64(0); i < n; i++ {
				s.hint()
			}
		} else {
			SleepFor(time.Duration(d) * time.Nanosecond)
		}
	}
	for {
		if pred() {
			return
		}
		SleepFor(time.Duration(s.maxNS) * time.Nanosecond)
		if s.yieldAtCap {
			Yield()
		}
	}
}

// WaitPredicate blocks the calling goroutine until pred returns true, using this
// architecture's default [StagedSchedule]. Equivalent to
// NewStagedSchedule().Wait(pred); provided as a package-level convenience
// for one-off waits that don't need to retain a Schedule.
func WaitPredicate(pred Predicate) {
	defaultSchedule.Wait(pred)
}

var defaultSchedule = NewStagedSchedule()
