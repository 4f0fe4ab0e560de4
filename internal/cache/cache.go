// Package cache provides short-lived caching of resolution results.
// Identical descriptions arriving within the TTL window skip the whole
// pipeline, including any provider calls.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a case description. Descriptions
// carry personal detail, so only the hash is ever stored.
func CacheKey(description string) string {
	hash := sha256.Sum256([]byte(description))
	return "vidhisaar:v1:" + hex.EncodeToString(hash[:])
}
