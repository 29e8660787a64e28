// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reclaim

import (
	"sync"

	"code.hybscloud.com/spin/atomix"
	"code.hybscloud.com/spin/internal/goid"
	"code.hybscloud.com/spin/lfq"
)

// defaultMaxThreads is the reader-slot bound used when an Object is
// constructed without [WithMaxThreads].
const defaultMaxThreads = 128

// defaultZombieBufferSize is the capacity of the lock-free queue an Object
// buffers retired values in when constructed without [WithZombieBufferSize].
const defaultZombieBufferSize = 256

// Option configures an Object at construction time. Object takes two
// knobs, so a functional option rather than a fluent builder is the
// idiomatic fit here; see DESIGN.md.
type Option func(*config)

type config struct {
	maxThreads       uint64
	zombieBufferSize int
}

// WithMaxThreads bounds the number of distinct readers an Object will
// ever hand out. Exceeding it makes [Object.GetReader] and [Object.Reader]
// return [ErrTooManyThreads] for good: reader slots are allocated once and
// never freed.
func WithMaxThreads(n uint64) Option {
	return func(c *config) { c.maxThreads = n }
}

// WithZombieBufferSize sets the capacity of the lock-free queue an Object
// uses to hold retired values awaiting [Object.Reclaim]. Retirements beyond
// this capacity fall back to a mutex-guarded overflow slice rather than
// blocking the writer; a busier writer or a Reclaim cadence that lags
// behind it should raise this instead of relying on the overflow path.
func WithZombieBufferSize(n int) Option {
	return func(c *config) { c.zombieBufferSize = n }
}

// readerSlot is one fixed reader registration. minEpoch is read by
// [Object.Reclaim] from goroutines other than the owning reader, so it is
// atomic; valueRead and nesting are only ever touched by the slot's
// single owning reader and need no synchronization.
type readerSlot[T any] struct {
	minEpoch  atomix.Uint64
	valueRead *T
	nesting   int
}

// Reader is a handle to one of an Object's fixed reader slots. Retaining a
// Reader across calls and reusing it is the wait-free hot path; see
// [Object.GetReader].
type Reader[T any] struct {
	obj  *Object[T]
	slot *readerSlot[T]
}

// ReadHandle provides scoped read access to the value an Object held when
// the handle was acquired. It plays the role a C++ RAII read_ptr plays in
// this package's source material: Go has no destructors, so the caller
// must call Release explicitly, or use [Reader.Read] to get that for free
// via defer.
type ReadHandle[T any] struct {
	rdr *Reader[T]
}

// Get returns the snapshot this handle is holding open.
func (h *ReadHandle[T]) Get() *T {
	return h.rdr.slot.valueRead
}

// Value returns a copy of the snapshot this handle is holding open.
func (h *ReadHandle[T]) Value() T {
	return *h.rdr.slot.valueRead
}

// Release ends this read lock. Read locks nest: the underlying snapshot is
// only released to the reclaimer once the outermost ReadLock's handle is
// released.
func (h *ReadHandle[T]) Release() {
	s := h.rdr.slot
	s.nesting--
	if s.nesting == 0 {
		s.valueRead = nil
		s.minEpoch.StoreRelease(0)
	}
}

// ReadLock acquires read access to the Object's current value, wait-free.
// Nested calls on the same Reader (e.g. re-entering from a callback) are
// supported; each must be matched with a Release.
func (r *Reader[T]) ReadLock() *ReadHandle[T] {
	s := r.slot
	s.nesting++
	if s.minEpoch.LoadRelaxed() == 0 {
		s.minEpoch.StoreRelease(r.obj.currentEpoch.LoadAcquire())
		s.valueRead = r.obj.value.LoadAcquire()
	}
	return &ReadHandle[T]{rdr: r}
}

// Read acquires a read lock, invokes fn with the current value, and
// releases the lock before returning. This is the closure-based
// substitute for a scoped RAII read pointer.
func (r *Reader[T]) Read(fn func(v *T)) {
	h := r.ReadLock()
	defer h.Release()
	fn(h.Get())
}

// Value returns a copy of the current value, wait-free if T's copy is.
func (r *Reader[T]) Value() T {
	h := r.ReadLock()
	defer h.Release()
	return h.Value()
}

// WriteHandle provides scoped write access to an Object's value: callers
// may mutate *Get() freely, and the mutated value is published atomically
// when Release is called. This is the Go counterpart of a C++ RAII
// write_ptr, minus the implicit publish-on-destruction Go cannot offer.
type WriteHandle[T any] struct {
	obj              *Object[T]
	newValue         *T
	reclaimOnRelease bool
}

// Get returns the pending value being built up for publication.
func (h *WriteHandle[T]) Get() *T {
	return h.newValue
}

// Release publishes the pending value, retiring whatever was previously
// current. If this handle came from [Object.WriteLockAndReclaim], Release
// also calls [Object.Reclaim] after publishing.
func (h *WriteHandle[T]) Release() {
	h.obj.exchangeAndRetire(h.newValue)
	if h.reclaimOnRelease {
		h.obj.Reclaim()
	}
}

// Write acquires a write lock seeded with a copy of the current value,
// invokes fn to mutate it, then publishes it. This is the closure-based
// substitute for a scoped RAII write pointer.
func (o *Object[T]) Write(fn func(v *T)) {
	h := o.WriteLock()
	defer h.Release()
	fn(h.Get())
}

type zombie[T any] struct {
	epochWhenRetired uint64
	value            *T
}

// Object stores a value of type T and provides concurrent read and write
// access to it. Reads are always wait-free and never block on a writer;
// writers may block other writers and [Object.Reclaim], but never a
// reader.
//
// Overwritten values are buffered in an internal lock-free queue pending
// reclamation. A value in that queue that no reader still references is
// freed the next time Reclaim is called — reclamation is never automatic
// and must be driven by the caller, e.g. off a ticker. Retirements that
// arrive faster than the queue's capacity spill into a mutex-guarded
// overflow slice rather than blocking the writer.
//
// An Object must be created with [New] or [NewWithValue]; the zero value
// is not usable.
type Object[T any] struct {
	value        atomix.Value[T]
	currentEpoch atomix.Uint64

	readers    []readerSlot[T]
	maxThreads uint64

	threadCounter atomix.Uint64
	goroutineIdx  sync.Map // goroutine id (int64) -> *Reader[T]

	zombies    *lfq.MPMC[zombie[T]]
	overflowMu sync.Mutex
	overflow   []zombie[T]
}

// New returns an Object holding a zero-valued T.
func New[T any](opts ...Option) *Object[T] {
	var zero T
	return NewWithValue(zero, opts...)
}

// NewWithValue returns an Object holding v.
func NewWithValue[T any](v T, opts ...Option) *Object[T] {
	c := config{maxThreads: defaultMaxThreads, zombieBufferSize: defaultZombieBufferSize}
	for _, opt := range opts {
		opt(&c)
	}
	o := &Object[T]{
		maxThreads: c.maxThreads,
		readers:    make([]readerSlot[T], c.maxThreads),
		zombies:    lfq.NewMPMC[zombie[T]](c.zombieBufferSize),
	}
	o.value.StoreRelease(&v)
	o.currentEpoch.StoreRelease(1)
	return o
}

// GetReader allocates a fresh, dedicated reader slot and returns a handle
// to it. The handle is wait-free to use; retain it and call it repeatedly
// rather than calling GetReader again on a hot path, since each call
// allocates a new slot and slots are never released.
func (o *Object[T]) GetReader() (*Reader[T], error) {
	idx := o.threadCounter.AddAcqRel(1) - 1
	if idx >= o.maxThreads {
		return nil, ErrTooManyThreads
	}
	return &Reader[T]{obj: o, slot: &o.readers[idx]}, nil
}

// Reader returns the Reader bound to the calling goroutine, allocating one
// on first use. Unlike GetReader, this is not on the wait-free path: it
// does a goroutine-id lookup and, on first call from a given goroutine, a
// map insert. It exists for call sites that read too rarely to justify
// threading a retained Reader handle through.
func (o *Object[T]) Reader() (*Reader[T], error) {
	id := goid.Current()
	if v, ok := o.goroutineIdx.Load(id); ok {
		return v.(*Reader[T]), nil
	}
	r, err := o.GetReader()
	if err != nil {
		return nil, err
	}
	actual, _ := o.goroutineIdx.LoadOrStore(id, r)
	return actual.(*Reader[T]), nil
}

// ReadLock is shorthand for Reader() followed by ReadLock() on the goroutine-
// bound Reader it returns. See [Object.Reader] for why this is not
// wait-free.
func (o *Object[T]) ReadLock() (*ReadHandle[T], error) {
	r, err := o.Reader()
	if err != nil {
		return nil, err
	}
	return r.ReadLock(), nil
}

// Update replaces the current value with v.
func (o *Object[T]) Update(v T) {
	o.exchangeAndRetire(&v)
}

// UpdateFunc replaces the current value with whatever construct returns,
// unless construct returns a non-nil error, in which case the Object is
// left unchanged and [ErrAllocationFailure] (wrapping the returned error)
// is reported to the caller.
func (o *Object[T]) UpdateFunc(construct func() (T, error)) error {
	v, err := construct()
	if err != nil {
		return &allocationError{cause: err}
	}
	o.exchangeAndRetire(&v)
	return nil
}

type allocationError struct {
	cause error
}

func (e *allocationError) Error() string {
	return ErrAllocationFailure.Error() + ": " + e.cause.Error()
}

func (e *allocationError) Is(target error) bool {
	return target == ErrAllocationFailure
}

func (e *allocationError) Unwrap() error {
	return e.cause
}

// WriteLock returns a handle seeded with a copy of the current value.
// Mutate it through Get and call Release to publish.
func (o *Object[T]) WriteLock() *WriteHandle[T] {
	cur := *o.value.LoadAcquire()
	return &WriteHandle[T]{obj: o, newValue: &cur}
}

// WriteLockAndReclaim is WriteLock, except the returned handle's Release
// also calls Reclaim after publishing.
func (o *Object[T]) WriteLockAndReclaim() *WriteHandle[T] {
	h := o.WriteLock()
	h.reclaimOnRelease = true
	return h
}

func (o *Object[T]) exchangeAndRetire(newValue *T) {
	old := o.value.ExchangeAcqRel(newValue)
	epoch := o.currentEpoch.AddAcqRel(1) - 1

	z := zombie[T]{epochWhenRetired: epoch, value: old}
	if err := o.zombies.Enqueue(&z); err != nil {
		o.overflowMu.Lock()
		o.overflow = append(o.overflow, z)
		o.overflowMu.Unlock()
	}
}

// Reclaim frees every retired value that no reader still references. It
// never blocks a reader. It is not serialized against writers or other
// Reclaim calls: they run concurrently with it and contend with it only on
// the overflow slice's mutex.
//
// Reclaim drains the zombie queue and the overflow slice completely, then
// requeues whatever is still live. A writer racing this call sees its
// retirement either land in the queue ahead of the drain (collected this
// round) or behind it (collected next round); either way nothing is lost.
func (o *Object[T]) Reclaim() {
	pending := o.drainZombieQueue()

	o.overflowMu.Lock()
	pending = append(pending, o.overflow...)
	o.overflow = o.overflow[:0]
	o.overflowMu.Unlock()

	live := pending[:0]
	for _, z := range pending {
		if o.hasReaderUsingEpoch(z.epochWhenRetired) {
			live = append(live, z)
		}
	}

	o.requeueZombies(live)
}

func (o *Object[T]) drainZombieQueue() []zombie[T] {
	var out []zombie[T]
	for {
		z, err := o.zombies.Dequeue()
		if err != nil {
			return out
		}
		out = append(out, z)
	}
}

func (o *Object[T]) requeueZombies(zs []zombie[T]) {
	o.overflowMu.Lock()
	defer o.overflowMu.Unlock()
	for _, z := range zs {
		zc := z
		if err := o.zombies.Enqueue(&zc); err != nil {
			o.overflow = append(o.overflow, z)
		}
	}
}

func (o *Object[T]) hasReaderUsingEpoch(epoch uint64) bool {
	for i := range o.readers {
		readerEpoch := o.readers[i].minEpoch.LoadAcquire()
		if readerEpoch != 0 && readerEpoch <= epoch {
			return true
		}
	}
	return false
}
