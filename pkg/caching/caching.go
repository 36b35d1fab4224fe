// Package caching memoizes built vocabularies in memory.
package caching

import (
	"crypto/sha256"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dtnitsch/vocab/models"
)

// Cache holds vocabularies keyed by source fingerprint, each with a TTL.
// It is safe for concurrent use.
type Cache struct {
	items *gocache.Cache
	ttl   time.Duration
}

// NewCache creates a new Cache instance.
// A non-positive ttl keeps entries until the process exits.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	cleanup := ttl * 2
	if ttl == gocache.NoExpiration {
		cleanup = 0
	}
	return &Cache{
		items: gocache.New(ttl, cleanup),
		ttl:   ttl,
	}
}

// key generates a SHA256 hash of the fingerprint; fingerprints can be long.
func (c *Cache) key(fingerprint string) string {
	hash := sha256.Sum256([]byte(fingerprint))
	return fmt.Sprintf("%x", hash)
}

// Get retrieves a vocabulary from the cache.
// It returns the vocabulary and true if the item is found and not expired.
func (c *Cache) Get(fingerprint string) (models.Vocabulary, bool) {
	item, found := c.items.Get(c.key(fingerprint))
	if !found {
		return models.Vocabulary{}, false // Cache miss
	}
	v, ok := item.(models.Vocabulary)
	return v, ok
}

// Set adds a vocabulary to the cache. Vocabularies are immutable, so no copy is made.
func (c *Cache) Set(fingerprint string, v models.Vocabulary) {
	c.items.Set(c.key(fingerprint), v, gocache.DefaultExpiration)
}

// Len returns the number of cached entries, including expired ones not yet cleaned up.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}
