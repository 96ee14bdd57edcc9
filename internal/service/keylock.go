package service

import "sync"

// keyLock hands out one mutex per key and forgets it when nobody holds or
// waits on it.
type keyLock struct {
	mux   sync.Mutex
	locks map[string]*keyLockEntry
}

type keyLockEntry struct {
	mux  sync.Mutex
	refs int
}

func newKeyLock() *keyLock {
	return &keyLock{locks: make(map[string]*keyLockEntry)}
}

func (k *keyLock) Lock(key string) (unlock func()) {
	k.mux.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &keyLockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mux.Unlock()

	entry.mux.Lock()

	return func() {
		entry.mux.Unlock()
		k.mux.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(k.locks, key)
		}
		k.mux.Unlock()
	}
}

func (k *keyLock) size() int {
	k.mux.Lock()
	defer k.mux.Unlock()
	return len(k.locks)
}
