package speech

import (
	"os"
	"sync"
)

// AudioHandle references playable audio produced by the synthesizer.
// The file lives for the process lifetime unless the cache is cleared.
type AudioHandle struct {
	// Path to the MP3 file on disk.
	Path string
	// Voice the audio was synthesized with.
	Voice string
}

// EvictionPolicy decides which cached entries to drop after an
// insert. Keys are passed oldest first.
type EvictionPolicy interface {
	// Evict returns the keys to remove from the cache.
	Evict(keys []string) []string
}

// KeepAll retains every entry until the cache is cleared manually.
// This is the historical behavior: an unbounded memo, not an LRU.
type KeepAll struct{}

func (KeepAll) Evict([]string) []string { return nil }

// MaxEntries drops the oldest entries once the cache grows past N.
type MaxEntries struct{ N int }

func (p MaxEntries) Evict(keys []string) []string {
	if p.N <= 0 || len(keys) <= p.N {
		return nil
	}
	return keys[:len(keys)-p.N]
}

// Cache memoizes synthesized audio per (text, language) key. It is
// never persisted across process restarts.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*AudioHandle
	order   []string // insertion order, oldest first
	policy  EvictionPolicy
}

// NewCache creates a cache with the given eviction policy. A nil
// policy means KeepAll.
func NewCache(policy EvictionPolicy) *Cache {
	if policy == nil {
		policy = KeepAll{}
	}
	return &Cache{
		entries: make(map[string]*AudioHandle),
		policy:  policy,
	}
}

// Get returns the cached handle for key, if any.
func (c *Cache) Get(key string) (*AudioHandle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	handle, ok := c.entries[key]
	return handle, ok
}

// Put stores a handle under key and applies the eviction policy.
// Evicted entries have their audio files removed.
func (c *Cache) Put(key string, handle *AudioHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = handle

	// Copy the victims: policies may return a slice aliasing c.order,
	// which removeLocked compacts in place.
	victims := append([]string(nil), c.policy.Evict(c.order)...)
	for _, victim := range victims {
		c.removeLocked(victim)
	}
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops all cached entries and their audio files. Idempotent.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.entries {
		c.removeLocked(key)
	}
	c.order = nil
}

func (c *Cache) removeLocked(key string) {
	if handle, ok := c.entries[key]; ok && handle.Path != "" {
		os.Remove(handle.Path)
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
