// Package cache stores extracted document text so that reprocessing an
// unchanged FNOL document skips text acquisition (PDF extraction is the
// expensive step). Entries are keyed by a digest of the document bytes,
// so a modified document never hits a stale entry.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the interface shared by the memory, disk and layered caches.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// DocumentKey derives the cache key for a document from its raw bytes.
func DocumentKey(data []byte) string {
	digest := sha256.Sum256(data)
	return "fnoltriage:v1:" + hex.EncodeToString(digest[:])
}
