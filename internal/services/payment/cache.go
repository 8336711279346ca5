package payment

import "sync"

// Cache maps tenant id to its orchestrator. Instances are created lazily on
// first request and reused until explicitly invalidated; clearing and
// rebuilding is the only way a configuration change is picked up. Entries
// hold live adapter state (HTTP clients, breakers), so this is an
// in-process, identity-preserving store rather than a serializing one.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*Orchestrator
}

// NewCache creates an empty orchestrator cache. The process boundary that
// constructs orchestrators owns its lifecycle; pass it as a dependency.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Orchestrator)}
}

// GetOrCreate returns the cached orchestrator for the tenant, building one
// on first use. The build func runs under the write lock, so concurrent
// first requests for the same tenant settle on a single instance.
func (c *Cache) GetOrCreate(tenantID string, build func() *Orchestrator) *Orchestrator {
	c.mu.RLock()
	o, ok := c.entries[tenantID]
	c.mu.RUnlock()
	if ok {
		return o
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if o, ok := c.entries[tenantID]; ok {
		return o
	}
	o = build()
	c.entries[tenantID] = o
	return o
}

// Get returns the cached orchestrator, if any.
func (c *Cache) Get(tenantID string) (*Orchestrator, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	o, ok := c.entries[tenantID]
	return o, ok
}

// Invalidate drops one tenant's orchestrator, typically after its
// integration configuration changed.
func (c *Cache) Invalidate(tenantID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, tenantID)
}

// Clear drops every cached orchestrator.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Orchestrator)
}

// Len reports how many tenants currently have a cached orchestrator.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
