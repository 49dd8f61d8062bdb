// Package cache provides the small string cache Key Manager puts in front
// of its customer_key lookups, backed by github.com/faabiosr/cachego's
// in-memory adapter. Only still-wrapped ciphertext ever passes through it —
// never unwrapped key material.
package cache

import (
	"time"

	"github.com/faabiosr/cachego"
	"github.com/faabiosr/cachego/sync"
)

// Cache is the narrow subset of cachego.Cache Doka's services use.
type Cache interface {
	Fetch(key string) (string, error)
	Save(key string, value string, expires time.Duration) error
	Delete(key string) error
	Contains(key string) bool
}

// New builds an in-process cache. A distributed backend can be swapped in
// later by returning a different cachego.Cache from here.
func New() Cache {
	return cachego.New(sync.New())
}
