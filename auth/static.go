package auth

import "context"

// StaticKeyStore accepts a fixed set of API keys configured at startup.
// It is the default when no external key store is configured.
type StaticKeyStore struct {
	keys map[string]struct{}
}

// NewStaticKeyStore creates a key store accepting exactly the given keys.
func NewStaticKeyStore(keys ...string) *StaticKeyStore {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k != "" {
			set[k] = struct{}{}
		}
	}
	return &StaticKeyStore{keys: set}
}

// Validate reports whether apiKey is one of the configured keys.
func (s *StaticKeyStore) Validate(_ context.Context, apiKey string) (bool, error) {
	_, ok := s.keys[apiKey]
	return ok, nil
}
