// Package session keeps per-user UI state in memory, keyed by user id.
package session

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	lastSeen time.Time
}

// Store creates values lazily and forgets the ones not touched for a while.
type Store[T any] struct {
	mu      sync.Mutex
	create  func(userID int64) T
	entries map[int64]*entry[T]
	now     func() time.Time
}

func NewStore[T any](create func(userID int64) T) *Store[T] {
	return &Store[T]{
		create:  create,
		entries: make(map[int64]*entry[T]),
		now:     time.Now,
	}
}

// Get returns the user's value, creating it on first use.
func (s *Store[T]) Get(userID int64) T {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &entry[T]{value: s.create(userID)}
		s.entries[userID] = e
	}
	e.lastSeen = s.now()
	return e.value
}

// Sweep drops values idle for longer than idle and returns how many were dropped.
func (s *Store[T]) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	dropped := 0
	for userID, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, userID)
			dropped++
		}
	}
	return dropped
}
