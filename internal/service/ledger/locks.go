package ledger

import (
	"sync"

	"github.com/google/uuid"
)

// partLocks hands out one mutex per part id and forgets it once nobody holds or waits on it.
type partLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*partLock
}

type partLock struct {
	mu   sync.Mutex
	refs int
}

func newPartLocks() *partLocks {
	return &partLocks{locks: make(map[uuid.UUID]*partLock)}
}

func (l *partLocks) lock(id uuid.UUID) func() {
	l.mu.Lock()
	pl, ok := l.locks[id]
	if !ok {
		pl = &partLock{}
		l.locks[id] = pl
	}
	pl.refs++
	l.mu.Unlock()

	pl.mu.Lock()

	return func() {
		pl.mu.Unlock()

		l.mu.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

func (l *partLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
