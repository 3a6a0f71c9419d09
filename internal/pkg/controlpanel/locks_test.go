package controlpanel

import (
	"sync"
	"testing"
)

func TestLockTableSerializesSameKey(t *testing.T) {
	table := newLockTable()

	const n = 50
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := table.Acquire("hosting:1")
			defer release()
			counter++
		}()
	}
	wg.Wait()

	if counter != n {
		t.Fatalf("counter = %d, want %d", counter, n)
	}

	table.mu.Lock()
	remaining := len(table.locks)
	table.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("lock table leaked %d entries", remaining)
	}
}

func TestLockTableIndependentKeys(t *testing.T) {
	table := newLockTable()

	releaseA := table.Acquire("hosting:1")
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB := table.Acquire("hosting:2")
		releaseB()
		close(done)
	}()

	// Must not block: a different record is a different lock.
	<-done
}
