// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomix wraps sync/atomic with ordering-suffixed method names —
// Relaxed, Acquire, Release, AcqRel — matching the vocabulary used at
// every call site in [code.hybscloud.com/spin/lfq] and
// [code.hybscloud.com/spin/reclaim].
//
// Go's memory model gives sync/atomic operations sequentially consistent
// semantics unconditionally; there is no weaker mode to opt into. Every
// suffix here therefore delegates to the same underlying sync/atomic call.
// The suffixes are kept anyway because they document, at each call site,
// the ordering the algorithm actually requires — the same reason a queue
// or reclaimer written against C++'s std::atomic spells out
// memory_order_acquire instead of leaving the default. A reader porting
// this package back to a language with weaker atomics knows immediately
// which calls may be relaxed.
package atomix
