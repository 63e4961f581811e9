// Package keylock provides mutual exclusion scoped by string key. Entries are
// reference counted and dropped once no goroutine holds or waits on them.
package keylock

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"
)

// exclusive is the semaphore weight of a Lock holder. RLock holders take one
// unit each.
const exclusive = 1 << 30

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Locker {
	return &Locker{entries: make(map[string]*entry)}
}

// Lock blocks until key is held or ctx is done. The returned func releases
// the key; calls after the first are no-ops.
func (l *Locker) Lock(ctx context.Context, key string) (func(), error) {
	return l.acquire(ctx, key, exclusive)
}

// RLock holds key alongside other RLock callers and excludes Lock. Waiters
// are served in arrival order, so a pending Lock is not starved.
func (l *Locker) RLock(ctx context.Context, key string) (func(), error) {
	return l.acquire(ctx, key, 1)
}

func (l *Locker) acquire(ctx context.Context, key string, weight int64) (func(), error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(exclusive)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	if err := e.sem.Acquire(ctx, weight); err != nil {
		l.release(key, e, 0)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(key, e, weight) })
	}, nil
}

// LockAll acquires keys in sorted order so that callers locking overlapping
// key sets cannot deadlock.
func (l *Locker) LockAll(ctx context.Context, keys ...string) (func(), error) {
	sorted := dedupe(keys)
	sort.Strings(sorted)

	unlocks := make([]func(), 0, len(sorted))
	unlockAll := func() {
		for i := len(unlocks) - 1; i >= 0; i-- {
			unlocks[i]()
		}
	}
	for _, k := range sorted {
		unlock, err := l.Lock(ctx, k)
		if err != nil {
			unlockAll()
			return nil, err
		}
		unlocks = append(unlocks, unlock)
	}
	return unlockAll, nil
}

func (l *Locker) release(key string, e *entry, weight int64) {
	if weight > 0 {
		e.sem.Release(weight)
	}
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
	l.mu.Unlock()
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
