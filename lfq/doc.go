// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package lfq provides a bounded, lock-free multi-producer multi-consumer
// FIFO queue (MPMC, implementing the SCQ algorithm of Nikolaev, DISC 2019).
//
// # Basic Usage
//
//	q := lfq.NewMPMC[int](1024)
//
//	value := 42
//	err := q.Enqueue(&value)
//	if lfq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	elem, err := q.Dequeue()
//	if lfq.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Common Patterns
//
// Worker pool:
//
//	q := lfq.NewMPMC[Job](4096)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            job, err := q.Dequeue()
//	            if err == nil {
//	                job.Run()
//	            }
//	        }
//	    }()
//	}
//
//	func Submit(j Job) error {
//	    return q.Enqueue(&j)
//	}
//
// # Capacity
//
// Capacity rounds up to the next power of 2:
//
//	q := lfq.NewMPMC[int](3)     // Actual capacity: 4
//	q := lfq.NewMPMC[int](1000)  // Actual capacity: 1024
//
// Minimum capacity is 2. Panics if capacity < 2.
//
// Length is intentionally not provided because accurate counts in lock-free
// algorithms require expensive cross-core synchronization. Track counts in
// application logic when needed.
//
// # Graceful Shutdown
//
// MPMC includes a threshold mechanism to prevent livelock, which may cause
// Dequeue to return [ErrWouldBlock] even when items remain, waiting for
// producer activity to reset the threshold. Once producers have finished,
// call Drain via the [Drainer] interface to let consumers drain the rest:
//
//	prodWg.Wait()
//	if d, ok := q.(lfq.Drainer); ok {
//	    d.Drain()
//	}
//
// # Race Detection
//
// Go's race detector tracks explicit synchronization primitives but cannot
// observe happens-before relationships established purely through atomic
// acquire-release orderings on separate variables. These queues are correct
// under that model, but some concurrent tests are excluded under
// //go:build race to avoid false positives; see [RaceEnabled].
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/spin/atomix] for atomic primitives with explicit
// memory ordering, and [code.hybscloud.com/spin] for CPU-hint-based
// backoff during MPMC's CAS retries. [code.hybscloud.com/spin/reclaim]
// uses an MPMC queue as the primary buffer for objects retired under
// epoch-based reclamation.
package lfq
