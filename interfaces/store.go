// Package interfaces declares the seams between the directory's components.
package interfaces

import (
	"time"

	"citydirectory/domain"
)

// Store is the catalog of live service instances, safe for concurrent use
// by the protocol handler (many callers) and the reaper (one periodic
// caller).
//
//go:generate moq -stub -out mock/store.go -pkg mock . Store
type Store interface {
	// Put inserts or replaces the entry for the record's key, stamping the
	// heartbeat. Returns whether the key was new.
	Put(record domain.ServiceRecord) bool

	// Query returns a snapshot of all non-stale records of the given
	// service type, or of every type when serviceType is empty. Order is
	// unspecified.
	Query(serviceType string) []domain.ServiceRecord

	// RemoveStale evicts every entry stale as of now and returns the
	// number removed.
	RemoveStale(now time.Time) int

	// Size returns the raw entry count, staleness not applied.
	Size() int
}
