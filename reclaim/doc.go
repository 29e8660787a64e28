// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reclaim provides Object, an epoch-reclaimed container for a
// value read by many goroutines and written occasionally by one or a few.
// Reads are wait-free and never block on a writer; writers may block each
// other and the periodic Reclaim call, but never a reader.
//
// The scheme is RCU-like with two deliberate differences from a classic
// kernel RCU: reclamation is scoped per Object rather than to one global
// grace-period domain, and it never happens implicitly — the caller must
// call [Object.Reclaim] periodically (e.g. off a ticker) to actually free
// superseded values that no reader still references.
//
// Retired values are buffered in a [code.hybscloud.com/spin/lfq] MPMC
// queue rather than a plain mutex-guarded list, since a write-heavy Object
// may have several goroutines retiring concurrently through
// [Object.Update]/[Object.WriteLock]. A mutex-guarded overflow slice backs
// the queue for the case where retirements outrun Reclaim's cadence and
// the queue fills; see [WithZombieBufferSize].
//
// A reader must first be obtained, either explicitly with [Object.GetReader]
// and retained by the caller, or implicitly per calling goroutine with
// [Object.Reader]. The explicit form is the wait-free hot path; the
// implicit form does a map lookup keyed by goroutine id and is meant for
// call sites that read infrequently enough that retaining a [Reader]
// handle isn't worth the bookkeeping.
package reclaim
