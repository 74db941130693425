package domain

import (
	"fmt"
	"strings"
)

// ServiceKind enumerates the known service categories at the boundary, so
// callers parse the wire string once instead of branching on it everywhere.
// The directory itself stays type-agnostic and stores any non-empty type.
type ServiceKind string

const (
	KindTraffic ServiceKind = "traffic"
	KindBin     ServiceKind = "bin"
	KindNoise   ServiceKind = "noise"
)

// ParseServiceKind parses a wire service type into a ServiceKind.
// Matching is case-insensitive.
func ParseServiceKind(s string) (ServiceKind, error) {
	switch ServiceKind(strings.ToLower(s)) {
	case KindTraffic:
		return KindTraffic, nil
	case KindBin:
		return KindBin, nil
	case KindNoise:
		return KindNoise, nil
	default:
		return "", fmt.Errorf("unknown service kind %q", s)
	}
}

func (k ServiceKind) String() string { return string(k) }
