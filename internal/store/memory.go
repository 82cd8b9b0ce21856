package store

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// MemoryStore keeps documents in process. Entries expire after ttl; a zero
// ttl keeps them until Close. Expired entries are dropped when read, and
// Put sweeps the whole map at most once per ttl.
type MemoryStore struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (s *MemoryStore) Put(ctx context.Context, id string, raw []byte) error {
	now := s.now()
	entry := memoryEntry{raw: append([]byte(nil), raw...)}
	if s.ttl > 0 {
		entry.expiresAt = now.Add(s.ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl > 0 && now.Sub(s.lastSweep) >= s.ttl {
		for key, e := range s.entries {
			if e.expired(now) {
				delete(s.entries, key)
			}
		}
		s.lastSweep = now
	}

	s.entries[id] = entry
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) ([]byte, bool, error) {
	now := s.now()

	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if !entry.expired(now) {
		return entry.raw, true, nil
	}

	return s.dropIfExpired(id, now)
}

// dropIfExpired deletes id only if the entry stored now is still expired: a
// Put may have replaced it since Get released the read lock.
func (s *MemoryStore) dropIfExpired(id string, now time.Time) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, false, nil
	}
	if entry.expired(now) {
		delete(s.entries, id)
		return nil, false, nil
	}
	return entry.raw, true, nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]memoryEntry)
	return nil
}
