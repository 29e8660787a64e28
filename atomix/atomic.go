// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomix

import "sync/atomic"

// Uint64 is an atomic.Uint64 with ordering-suffixed accessors. See the
// package doc for why every suffix maps to the same operation. The
// unsuffixed Load/Store/Add/CompareAndSwap/Swap are plain aliases for
// call sites that don't need to spell out an ordering.
type Uint64 struct {
	v atomic.Uint64
}

func (x *Uint64) Load() uint64 { return x.v.Load() }
func (x *Uint64) LoadRelaxed() uint64 { return x.v.Load() }
func (x *Uint64) LoadAcquire() uint64 { return x.v.Load() }

func (x *Uint64) Store(val uint64)        { x.v.Store(val) }
func (x *Uint64) StoreRelaxed(val uint64) { x.v.Store(val) }
func (x *Uint64) StoreRelease(val uint64) { x.v.Store(val) }

// Add, AddAcqRel, and AddRelaxed add delta and return the new value,
// matching sync/atomic's fetch-and-add-returns-new-value convention.
// Callers porting from a fetch_add that returns the old value must
// subtract delta back out.
func (x *Uint64) Add(delta uint64) uint64        { return x.v.Add(delta) }
func (x *Uint64) AddAcqRel(delta uint64) uint64  { return x.v.Add(delta) }
func (x *Uint64) AddRelaxed(delta uint64) uint64 { return x.v.Add(delta) }

func (x *Uint64) CompareAndSwap(old, new uint64) bool {
	return x.v.CompareAndSwap(old, new)
}
func (x *Uint64) CompareAndSwapAcqRel(old, new uint64) bool {
	return x.v.CompareAndSwap(old, new)
}
func (x *Uint64) CompareAndSwapRelaxed(old, new uint64) bool {
	return x.v.CompareAndSwap(old, new)
}

func (x *Uint64) Swap(new uint64) uint64       { return x.v.Swap(new) }
func (x *Uint64) SwapAcqRel(new uint64) uint64 { return x.v.Swap(new) }

// Int64 is an atomic.Int64 with ordering-suffixed accessors.
type Int64 struct {
	v atomic.Int64
}

func (x *Int64) Load() int64          { return x.v.Load() }
func (x *Int64) LoadRelaxed() int64   { return x.v.Load() }
func (x *Int64) LoadAcquire() int64   { return x.v.Load() }

func (x *Int64) Store(val int64)        { x.v.Store(val) }
func (x *Int64) StoreRelaxed(val int64) { x.v.Store(val) }
func (x *Int64) StoreRelease(val int64) { x.v.Store(val) }

func (x *Int64) Add(delta int64) int64        { return x.v.Add(delta) }
func (x *Int64) AddAcqRel(delta int64) int64  { return x.v.Add(delta) }
func (x *Int64) AddRelaxed(delta int64) int64 { return x.v.Add(delta) }

func (x *Int64) CompareAndSwap(old, new int64) bool {
	return x.v.CompareAndSwap(old, new)
}
func (x *Int64) CompareAndSwapAcqRel(old, new int64) bool {
	return x.v.CompareAndSwap(old, new)
}
func (x *Int64) CompareAndSwapRelaxed(old, new int64) bool {
	return x.v.CompareAndSwap(old, new)
}

// Int32 is an atomic.Int32 with ordering-suffixed accessors.
type Int32 struct {
	v atomic.Int32
}

func (x *Int32) Load() int32        { return x.v.Load() }
func (x *Int32) LoadRelaxed() int32 { return x.v.Load() }
func (x *Int32) LoadAcquire() int32 { return x.v.Load() }

func (x *Int32) Store(val int32)        { x.v.Store(val) }
func (x *Int32) StoreRelaxed(val int32) { x.v.Store(val) }
func (x *Int32) StoreRelease(val int32) { x.v.Store(val) }

func (x *Int32) Add(delta int32) int32        { return x.v.Add(delta) }
func (x *Int32) AddAcqRel(delta int32) int32  { return x.v.Add(delta) }
func (x *Int32) AddRelaxed(delta int32) int32 { return x.v.Add(delta) }

func (x *Int32) CompareAndSwap(old, new int32) bool {
	return x.v.CompareAndSwap(old, new)
}
func (x *Int32) CompareAndSwapAcqRel(old, new int32) bool {
	return x.v.CompareAndSwap(old, new)
}
func (x *Int32) CompareAndSwapRelaxed(old, new int32) bool {
	return x.v.CompareAndSwap(old, new)
}

// Bool is an atomic.Bool with ordering-suffixed accessors.
type Bool struct {
	v atomic.Bool
}

func (x *Bool) Load() bool        { return x.v.Load() }
func (x *Bool) LoadRelaxed() bool { return x.v.Load() }
func (x *Bool) LoadAcquire() bool { return x.v.Load() }

func (x *Bool) Store(val bool)        { x.v.Store(val) }
func (x *Bool) StoreRelaxed(val bool) { x.v.Store(val) }
func (x *Bool) StoreRelease(val bool) { x.v.Store(val) }

func (x *Bool) CompareAndSwap(old, new bool) bool {
	return x.v.CompareAndSwap(old, new)
}
func (x *Bool) CompareAndSwapAcqRel(old, new bool) bool {
	return x.v.CompareAndSwap(old, new)
}
func (x *Bool) CompareAndSwapRelaxed(old, new bool) bool {
	return x.v.CompareAndSwap(old, new)
}
