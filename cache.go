package loom

import (
	"sync"
)

// instanceCache stores already-built shared instances keyed by canonical
// name. It is a correctness cache: it guarantees a shared service resolves
// to one instance per container lifetime, so entries leave only through
// forget/clear, never by eviction.
type instanceCache struct {
	instances map[string]any
	mu        sync.RWMutex
}

// newInstanceCache creates an empty instance cache.
func newInstanceCache() *instanceCache {
	return &instanceCache{
		instances: make(map[string]any),
	}
}

// get retrieves the instance stored under canonical, if any.
func (c *instanceCache) get(canonical string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	instance, ok := c.instances[canonical]
	return instance, ok
}

// set stores instance under canonical, overwriting any prior entry.
func (c *instanceCache) set(canonical string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances[canonical] = instance
}

// setIfAbsent stores instance under canonical only when the slot is empty.
// It returns the instance that holds the slot after the call, and whether
// this call's instance won it. Two goroutines racing a cache miss both get a
// valid instance back; only the first writer populates the cache.
func (c *instanceCache) setIfAbsent(canonical string, instance any) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.instances[canonical]; ok {
		return existing, false
	}

	c.instances[canonical] = instance
	return instance, true
}

// forget removes the entry stored under canonical.
func (c *instanceCache) forget(canonical string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.instances, canonical)
}

// clear removes every entry.
func (c *instanceCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[string]any)
}

// has reports whether canonical has a stored instance.
func (c *instanceCache) has(canonical string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[canonical]
	return ok
}

// len returns the number of stored instances.
func (c *instanceCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.instances)
}
