// Package cache persists keyed values on the active filesystem with a per-entry lifetime.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vscope-cli/vscope/filesystem"
)

type entry[T any] struct {
	Value  T         `json:"value"`
	Stored time.Time `json:"stored"`
}

type data[T any] struct {
	Entries map[string]*entry[T] `json:"entries"`
}

// Cache is a thread-safe keyed store backed by a single JSON file.
type Cache[T any] struct {
	internal *gache.Cache[*data[T]]
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// New returns a cache stored at path. Entries older than ttl are treated as missing;
// a non-positive ttl keeps entries forever.
func New[T any](path string, ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		internal: gache.New[*data[T]](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		ttl: ttl,
		now: time.Now,
	}
}

// Key derives a stable file-safe key from parts, ignoring case and spaces.
func Key(parts ...string) string {
	normalized := lo.Map(parts, func(p string, _ int) string {
		return strings.ToLower(strings.ReplaceAll(p, " ", ""))
	})
	hash := sha256.Sum256([]byte(strings.Join(normalized, "\x00")))
	return hex.EncodeToString(hash[:])
}

func (c *Cache[T]) load() (*data[T], error) {
	d, expired, err := c.internal.Get()
	if err != nil {
		return nil, err
	}
	if expired || d == nil || d.Entries == nil {
		return &data[T]{Entries: make(map[string]*entry[T])}, nil
	}
	return d, nil
}

func (c *Cache[T]) fresh(e *entry[T]) bool {
	return c.ttl <= 0 || c.now().Sub(e.Stored) <= c.ttl
}

// Get returns the value stored under key unless it is missing or expired.
func (c *Cache[T]) Get(key string) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, err := c.load()
	if err != nil {
		return mo.None[T]()
	}

	e, ok := d.Entries[key]
	if !ok || !c.fresh(e) {
		return mo.None[T]()
	}
	return mo.Some(e.Value)
}

// Set stores value under key.
func (c *Cache[T]) Set(key string, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, err := c.load()
	if err != nil {
		return err
	}

	d.Entries[key] = &entry[T]{Value: value, Stored: c.now()}
	return c.internal.Set(d)
}

// Delete removes key.
func (c *Cache[T]) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, err := c.load()
	if err != nil {
		return err
	}

	delete(d.Entries, key)
	return c.internal.Set(d)
}

// Prune drops expired entries and returns how many were removed.
func (c *Cache[T]) Prune() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	d, err := c.load()
	if err != nil {
		return 0, err
	}

	stale := lo.Filter(lo.Keys(d.Entries), func(k string, _ int) bool {
		return !c.fresh(d.Entries[k])
	})
	if len(stale) == 0 {
		return 0, nil
	}

	for _, k := range stale {
		delete(d.Entries, k)
	}
	return len(stale), c.internal.Set(d)
}

// Len returns the number of stored entries, fresh or not.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	d, err := c.load()
	if err != nil {
		return 0
	}
	return len(d.Entries)
}
