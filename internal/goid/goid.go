// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package goid extracts the calling goroutine's numeric ID for use as a
// cache key. It is deliberately the slow, portable path only: parsing the
// header line of runtime.Stack's output. An unsafe-offset fast path into
// runtime.g (as used by some race detectors) is not implemented here — it
// breaks across Go minor versions and would need per-version verification
// this module has no way to re-run, so every caller of this package must
// already be off the wait-free hot path (see reclaim.Object.Reader, which
// caches the Reader it allocates per goroutine ID but still calls Current
// on every lookup).
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

// Current returns the calling goroutine's ID.
//
// Cost: one runtime.Stack call plus a small header parse, on the order of
// a microsecond. Callers on a hot path should call this once and cache the
// result (or, better, use reclaim.Object.GetReader and hold onto the
// returned handle instead of calling this at all).
func Current() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]

	const prefix = "goroutine "
	if !bytes.HasPrefix(b, []byte(prefix)) {
		return -1
	}
	b = b[len(prefix):]

	sp := bytes.IndexByte(b, ' ')
	if sp < 0 {
		return -1
	}
	id, err := strconv.ParseInt(string(b[:sp]), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
