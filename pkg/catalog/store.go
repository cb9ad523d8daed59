package catalog

import (
	"sync"
	"time"
)

// Store provides thread-safe in-memory storage for the current catalog.
type Store struct {
	mu        sync.RWMutex
	videos    []Video
	byID      map[string]Video
	updatedAt time.Time
}

// NewStore creates a new empty catalog store.
func NewStore() *Store {
	return &Store{}
}

// Set replaces the stored catalog.
func (s *Store) Set(videos []Video) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.videos = make([]Video, len(videos))
	copy(s.videos, videos)

	s.byID = make(map[string]Video, len(videos))
	for _, v := range videos {
		s.byID[v.ID] = v
	}
	s.updatedAt = time.Now()
}

// Get retrieves the stored catalog. Returns false if no catalog has been set.
func (s *Store) Get() ([]Video, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.videos == nil {
		return nil, false
	}

	videos := make([]Video, len(s.videos))
	copy(videos, s.videos)
	return videos, true
}

// ByID retrieves a single video by identifier.
func (s *Store) ByID(id string) (Video, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[id]
	return v, ok
}

// HasData returns true if the store contains a catalog.
func (s *Store) HasData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.videos != nil
}

// Count returns the number of stored videos.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.videos)
}

// LastSync returns the time of the last catalog replacement.
func (s *Store) LastSync() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.updatedAt
}
