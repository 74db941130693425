package service

import (
	"sync"
	"time"

	"citydirectory/domain"
	"citydirectory/helpers"
)

// MemoryStore is the in-memory directory store: a concurrency-safe mapping
// from type@address keys to liveness-tracked entries. It is the single
// shared mutable resource of the directory; the protocol handler and the
// reaper serialize through its mutex. There is no persistence: a restart
// means an empty catalog and workers are expected to re-register.
type MemoryStore struct {
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]domain.DirectoryEntry
}

// NewMemoryStore creates an empty store. now is the clock used to stamp
// heartbeats and evaluate staleness in Query. Panics on nil now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		now:     helpers.NilPanic(now, "service.store.go: now is required"),
		entries: make(map[string]domain.DirectoryEntry),
	}
}

// Put inserts or replaces the entry for the record's key, stamping the
// heartbeat. Returns whether the key was new. Records are not validated
// here; bad records are rejected upstream by the protocol handler.
func (s *MemoryStore) Put(record domain.ServiceRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := record.Key()
	_, exists := s.entries[key]
	s.entries[key] = domain.DirectoryEntry{
		Record:        record,
		LastHeartbeat: s.now(),
	}
	return !exists
}

// Query returns a snapshot of all non-stale records whose service type
// equals serviceType, or all non-stale records when serviceType is empty.
// Order is unspecified; the snapshot is taken under the read lock and is
// safe to iterate without further coordination.
func (s *MemoryStore) Query(serviceType string) []domain.ServiceRecord {
	now := s.now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.ServiceRecord, 0, len(s.entries))
	for _, entry := range s.entries {
		if entry.IsStale(now) {
			continue
		}
		if serviceType != "" && entry.Record.ServiceType != serviceType {
			continue
		}
		records = append(records, entry.Record)
	}
	return records
}

// RemoveStale atomically evicts every entry stale as of now and returns
// the number removed.
func (s *MemoryStore) RemoveStale(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if entry.IsStale(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Size returns the raw entry count, staleness not applied.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
