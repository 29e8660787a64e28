// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomix

import "sync/atomic"

// Value is an atomically-owned pointer to a T, the Go counterpart of an
// atomic_unique_ptr<T>: Load is wait-free, Exchange atomically installs a
// new owner and hands back the one it replaced. There is no explicit
// free — the replaced value stays alive exactly as long as something
// still references it, same as any other Go pointer.
type Value[T any] struct {
	p atomic.Pointer[T]
}

// NewValue returns a Value initially owning v.
func NewValue[T any](v *T) *Value[T] {
	var x Value[T]
	x.p.Store(v)
	return &x
}

// LoadAcquire returns the currently owned pointer. Wait-free.
func (x *Value[T]) LoadAcquire() *T { return x.p.Load() }

// LoadRelaxed returns the currently owned pointer. Wait-free.
func (x *Value[T]) LoadRelaxed() *T { return x.p.Load() }

// StoreRelease installs v as the new owned pointer, discarding whatever
// was previously owned.
func (x *Value[T]) StoreRelease(v *T) { x.p.Store(v) }

// ExchangeAcqRel installs v as the new owned pointer and returns the
// pointer it replaced.
func (x *Value[T]) ExchangeAcqRel(v *T) *T { return x.p.Swap(v) }

// CompareAndSwapAcqRel installs new in place of old only if old is still
// the owned pointer, reporting whether the swap happened.
func (x *Value[T]) CompareAndSwapAcqRel(old, new *T) bool {
	return x.p.CompareAndSwap(old, new)
}
