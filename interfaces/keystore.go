package interfaces

import "context"

// KeyStore validates the shared-secret API keys carried by every directory
// call.
//
//go:generate moq -stub -out mock/keystore.go -pkg mock . KeyStore
type KeyStore interface {
	// Validate reports whether apiKey is accepted. An error means the
	// backing store could not be consulted, not that the key is invalid.
	Validate(ctx context.Context, apiKey string) (bool, error)
}
