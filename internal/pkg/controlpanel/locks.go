package controlpanel

import "sync"

// lockTable serializes sync operations per local record. Two concurrent syncs
// for the same record would otherwise both observe "no remembered
// subscription" and create duplicates remotely.
//
// This is an in-process lock; it assumes a single-instance deployment.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*recordLock
}

type recordLock struct {
	mu   sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*recordLock)}
}

// Acquire blocks until the lock for key is held and returns its release func.
func (t *lockTable) Acquire(key string) func() {
	t.mu.Lock()
	l, ok := t.locks[key]
	if !ok {
		l = &recordLock{}
		t.locks[key] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, key)
		}
		t.mu.Unlock()
	}
}
