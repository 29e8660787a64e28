// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reclaim_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/spin/reclaim"
)

func TestObjectRoundTrip(t *testing.T) {
	obj := reclaim.NewWithValue(42)
	r, err := obj.GetReader()
	if err != nil {
		t.Fatalf("GetReader: %v", err)
	}
	if got := r.Value(); got != 42 {
		t.Fatalf("Value: got %d, want 42", got)
	}

	obj.Update(43)
	if got := r.Value(); got != 43 {
		t.Fatalf("Value after Update: got %d, want 43", got)
	}
}

func TestObjectNestedReadLock(t *testing.T) {
	obj := reclaim.NewWithValue("a")
	r, err := obj.GetReader()
	if err != nil {
		t.Fatalf("GetReader: %v", err)
	}

	outer := r.ReadLock()
	inner := r.ReadLock()
	if *inner.Get() != "a" {
		t.Fatalf("inner.Get(): got %q, want %q", *inner.Get(), "a")
	}
	inner.Release()
	if *outer.Get() != "a" {
		t.Fatalf("outer.Get() after inner release: got %q, want %q", *outer.Get(), "a")
	}
	outer.Release()
}

func TestObjectWriteLockPublishesOnRelease(t *testing.T) {
	obj := reclaim.NewWithValue(10)
	h := obj.WriteLock()
	*h.Get() = 20
	r, _ := obj.GetReader()
	if got := r.Value(); got != 10 {
		t.Fatalf("Value before Release: got %d, want 10 (unpublished)", got)
	}
	h.Release()
	if got := r.Value(); got != 20 {
		t.Fatalf("Value after Release: got %d, want 20", got)
	}
}

func TestObjectReclaimFreesUnreferencedZombies(t *testing.T) {
	obj := reclaim.NewWithValue(1)
	r, _ := obj.GetReader()

	h := r.ReadLock()
	obj.Update(2)
	obj.Update(3)
	obj.Reclaim()

	if got := *h.Get(); got != 1 {
		t.Fatalf("held snapshot changed under us: got %d, want 1", got)
	}
	h.Release()

	obj.Reclaim()

	r2, _ := obj.GetReader()
	if got := r2.Value(); got != 3 {
		t.Fatalf("Value: got %d, want 3", got)
	}
}

func TestObjectTooManyThreads(t *testing.T) {
	obj := reclaim.New[int](reclaim.WithMaxThreads(2))
	if _, err := obj.GetReader(); err != nil {
		t.Fatalf("GetReader #1: %v", err)
	}
	if _, err := obj.GetReader(); err != nil {
		t.Fatalf("GetReader #2: %v", err)
	}
	_, err := obj.GetReader()
	if !reclaim.IsTooManyThreads(err) {
		t.Fatalf("GetReader #3: got %v, want ErrTooManyThreads", err)
	}
}

func TestObjectUpdateFuncAllocationFailure(t *testing.T) {
	obj := reclaim.NewWithValue(5)
	cause := errFlaky{}
	err := obj.UpdateFunc(func() (int, error) {
		return 0, cause
	})
	if !reclaim.IsAllocationFailure(err) {
		t.Fatalf("UpdateFunc: got %v, want ErrAllocationFailure", err)
	}
	r, _ := obj.GetReader()
	if got := r.Value(); got != 5 {
		t.Fatalf("Value after failed UpdateFunc: got %d, want unchanged 5", got)
	}
}

type errFlaky struct{}

func (errFlaky) Error() string { return "flaky construction" }

func TestObjectConcurrentReadersDuringWrites(t *testing.T) {
	obj := reclaim.NewWithValue(0)
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := obj.GetReader()
			if err != nil {
				t.Errorf("GetReader: %v", err)
				return
			}
			for {
				select {
				case <-stop:
					return
				default:
					r.Value()
				}
			}
		}()
	}

	for i := 1; i <= 1000; i++ {
		obj.Update(i)
		if i%50 == 0 {
			obj.Reclaim()
		}
	}
	close(stop)
	wg.Wait()

	r, _ := obj.GetReader()
	if got := r.Value(); got != 1000 {
		t.Fatalf("final Value: got %d, want 1000", got)
	}
}

func TestObjectAutoBoundReaderIsStableAcrossCalls(t *testing.T) {
	obj := reclaim.NewWithValue(1)
	r1, err := obj.Reader()
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	r2, err := obj.Reader()
	if err != nil {
		t.Fatalf("Reader: %v", err)
	}
	if r1 != r2 {
		t.Fatalf("Reader() returned different handles for the same goroutine")
	}
}
