// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spin_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/spin"
	"code.hybscloud.com/spin/reclaim"
)

// ExampleWait demonstrates the minimal backoff embedded in a polling retry loop.
func ExampleWait() {
	var flag int32
	var w spin.Wait
	done := make(chan struct{})

	go func() {
		flag = 1
		close(done)
	}()

	<-done
	for flag == 0 {
		w.Once()
	}
	w.Reset()

	fmt.Println(flag)

	// Output:
	// 1
}

// ExampleStagedSchedule demonstrates waiting on an arbitrary predicate.
func ExampleStagedSchedule() {
	var ready bool
	var mu sync.Mutex

	go func() {
		mu.Lock()
		ready = true
		mu.Unlock()
	}()

	sched := spin.NewStagedSchedule()
	sched.Wait(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return ready
	})

	fmt.Println("ready")

	// Output:
	// ready
}

// ExampleCondVar demonstrates the coalescing spin condition variable.
func ExampleCondVar() {
	cv := spin.NewCondVar()

	go func() {
		cv.Notify()
	}()

	cv.Wait()
	fmt.Println("notified")

	// Output:
	// notified
}

// ExampleCountingCondVar demonstrates the queueing spin condition variable,
// where each Notify wakes exactly one pending Wait.
func ExampleCountingCondVar() {
	cv := spin.NewCountingCondVar()
	var wg sync.WaitGroup

	const n = 3
	results := make(chan int, n)
	for i := range n {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			cv.Wait()
			results <- id
		}(i)
	}

	for range n {
		cv.Notify()
	}
	wg.Wait()
	close(results)

	count := 0
	for range results {
		count++
	}
	fmt.Println(count)

	// Output:
	// 3
}

// Example_reclaimObject demonstrates reading a value through an
// epoch-based reclaimable object, publishing a replacement, and reading
// the replacement.
func Example_reclaimObject() {
	obj := reclaim.NewWithValue(100)

	rdr, err := obj.GetReader()
	if err != nil {
		fmt.Println(err)
		return
	}

	h := rdr.ReadLock()
	fmt.Println(*h.Get())
	h.Release()

	obj.Update(200)
	obj.Reclaim()

	h = rdr.ReadLock()
	fmt.Println(*h.Get())
	h.Release()

	// Output:
	// 100
	// 200
}
