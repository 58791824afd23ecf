package booking

import "sync"

// businessLocks hands out one mutex per business so the
// check-then-append sequence for a business never interleaves with another
// reservation for the same business. Reads stay lock-free.
type businessLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newBusinessLocks() *businessLocks {
	return &businessLocks{locks: make(map[string]*sync.Mutex)}
}

func (s *businessLocks) get(businessID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[businessID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[businessID] = lock
	}
	return lock
}
