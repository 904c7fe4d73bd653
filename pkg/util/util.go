package util

import (
	"errors"
	"sync"
	"time"
)

// ErrTimeout is returned by RunWithTimeout when the work outlives its
// deadline.
var ErrTimeout = errors.New("timed out")

// Concurrently runs thunk on concurrency goroutines and blocks until all of
// them return. Thunks are expected to pull work from and push results to
// channels they close over.
func Concurrently(concurrency uint, thunk func()) {
	var wg sync.WaitGroup
	wg.Add(int(concurrency))
	for i := uint(0); i < concurrency; i++ {
		go func() {
			defer wg.Done()
			thunk()
		}()
	}
	wg.Wait()
}

// RunWithTimeout runs thunk on its own goroutine and waits at most d for it.
// Work that cannot be interrupted keeps running after a timeout; its result
// is simply no longer waited for. A zero or negative d waits forever.
func RunWithTimeout(d time.Duration, thunk func()) error {
	if d <= 0 {
		thunk()
		return nil
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		thunk()
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		return ErrTimeout
	}
}
