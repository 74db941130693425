package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "directory_api_key"

// keyStore validates API keys against Redis: a key is accepted when
// directory_api_key:{key} exists. Operators rotate keys by adding or
// deleting entries, no directory restart needed.
type keyStore struct {
	client redis.UniversalClient
}

// NewKeyStore creates a KeyStore backed by Redis.
func NewKeyStore(client redis.UniversalClient) *keyStore {
	return &keyStore{
		client: client,
	}
}

func (s *keyStore) Validate(ctx context.Context, apiKey string) (bool, error) {
	if apiKey == "" {
		return false, nil
	}

	n, err := s.client.Exists(ctx, keyPrefix+":"+apiKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check api key in redis: %w", err)
	}
	return n > 0, nil
}
