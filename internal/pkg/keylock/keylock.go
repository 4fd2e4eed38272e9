// Package keylock provides mutual exclusion per string key
package keylock

import "sync"

// Map hands out one lock per key. Entries are dropped once no goroutine
// holds or waits on them, so the map only grows with concurrent keys.
type Map struct {
	mu    sync.Mutex
	locks map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// New creates an empty lock map
func New() *Map {
	return &Map{locks: make(map[string]*entry)}
}

// Lock blocks until the key is held and returns its unlock func
func (m *Map) Lock(key string) (unlock func()) {
	m.mu.Lock()
	e, ok := m.locks[key]
	if !ok {
		e = &entry{}
		m.locks[key] = e
	}
	e.refs++
	m.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			m.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(m.locks, key)
			}
			m.mu.Unlock()
		})
	}
}

// Len reports how many keys are currently held or waited on
func (m *Map) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}
