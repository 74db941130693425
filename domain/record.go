// Package domain holds the data model of the service directory.
package domain

import (
	"fmt"
	"time"
)

// ServiceTimeout is how long a registration stays live without renewal.
// Entries older than this are excluded from discovery and eventually evicted.
const ServiceTimeout = 30 * time.Second

// ServiceRecord describes one live service instance. ServiceType is the
// category ("traffic", "bin", ...), ServiceID the generated per-instance
// identifier, Address the host:port at which the instance is reachable.
type ServiceRecord struct {
	ServiceType string `json:"service_type"`
	ServiceID   string `json:"service_id"`
	Address     string `json:"address"`
}

// Validate reports whether all fields of the record are set.
func (r ServiceRecord) Validate() error {
	if r.ServiceType == "" || r.ServiceID == "" || r.Address == "" {
		return fmt.Errorf("service type, id and address are required")
	}
	return nil
}

// Key derives the directory key for the record. Identity is type@address,
// not service id: two instances registering the same type and address
// collapse into one entry, last write wins.
func (r ServiceRecord) Key() string {
	return r.ServiceType + "@" + r.Address
}

// DirectoryEntry wraps a ServiceRecord with liveness state. The record is
// replaced wholesale on re-registration, never mutated in place.
type DirectoryEntry struct {
	Record        ServiceRecord
	LastHeartbeat time.Time
}

// IsStale reports whether the entry has gone longer than ServiceTimeout
// without a heartbeat, as of now.
func (e DirectoryEntry) IsStale(now time.Time) bool {
	return now.Sub(e.LastHeartbeat) > ServiceTimeout
}
