package ordering

import (
	"sync"
)

// guildLocker hands out one mutex per guild. Entries are dropped once nobody holds or waits on them.
type guildLocker struct {
	mu    sync.Mutex
	locks map[string]*guildLock
}

type guildLock struct {
	sync.Mutex
	refs int
}

func newGuildLocker() *guildLocker {
	return &guildLocker{
		locks: make(map[string]*guildLock),
	}
}

// lock blocks until the guild's lock is held and returns the func that releases it.
func (l *guildLocker) lock(guildID string) func() {
	l.mu.Lock()
	gl, ok := l.locks[guildID]
	if !ok {
		gl = new(guildLock)
		l.locks[guildID] = gl
	}
	gl.refs++
	l.mu.Unlock()

	gl.Lock()

	return func() {
		gl.Unlock()

		l.mu.Lock()
		gl.refs--
		if gl.refs == 0 {
			delete(l.locks, guildID)
		}
		l.mu.Unlock()
	}
}
