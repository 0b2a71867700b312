package security

import (
	"context"
	"fmt"
	"sync"
)

// KeyFetchFunc resolves an issuer's verification key material, e.g. by
// calling that issuer's GetJwk endpoint. It must reject unsupported issuers.
type KeyFetchFunc func(ctx context.Context, issuer string) ([]byte, error)

// KeyCache maps issuer -> verification key, populated lazily on first use and
// kept for the process lifetime. There is no expiry or refresh. Concurrent
// first use of the same issuer may fetch twice; the overwrite is idempotent
// and the map itself stays consistent under the mutex.
type KeyCache struct {
	fetch KeyFetchFunc

	mu   sync.Mutex
	keys map[string][]byte
}

// NewKeyCache returns a KeyCache resolving unknown issuers through fetch.
func NewKeyCache(fetch KeyFetchFunc) *KeyCache {
	return &KeyCache{
		fetch: fetch,
		keys:  make(map[string][]byte),
	}
}

// Get returns the verification key for issuer, fetching and caching it on
// first use. The fetch runs outside the lock so a slow issuer lookup does not
// block resolution of already-cached issuers.
func (c *KeyCache) Get(ctx context.Context, issuer string) ([]byte, error) {
	c.mu.Lock()
	if key, ok := c.keys[issuer]; ok {
		c.mu.Unlock()
		return key, nil
	}
	c.mu.Unlock()

	key, err := c.fetch(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("fetch key for issuer %q: %w", issuer, err)
	}

	c.mu.Lock()
	c.keys[issuer] = key
	c.mu.Unlock()
	return key, nil
}

// StaticKeyFetch returns a KeyFetchFunc that serves key for exactly one
// issuer and rejects everything else. Used when the service only trusts its
// own tokens.
func StaticKeyFetch(issuer string, key []byte) KeyFetchFunc {
	return func(_ context.Context, iss string) ([]byte, error) {
		if iss != issuer {
			return nil, fmt.Errorf("unsupported issuer %q", iss)
		}
		return key, nil
	}
}
