package cache

import (
	"sync"
	"time"
)

type item struct {
	value      string
	expiration int64
}

// Cache é um cache em memória com expiração, usado para servir exportações
// CSV repetidas sem varrer a tabela inteira a cada download.
type Cache struct {
	items map[string]item
	mu    sync.RWMutex
}

// New creates a new cache instance
func New() *Cache {
	cache := &Cache{
		items: make(map[string]item),
	}

	// Start a background goroutine to clean expired items
	go func() {
		for {
			time.Sleep(time.Minute)
			cache.DeleteExpired()
		}
	}()

	return cache
}

// Set adds an item to the cache with the given expiration duration
func (c *Cache) Set(key, value string, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item{
		value:      value,
		expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get retrieves an item from the cache
// Returns the item and a boolean indicating if the item was found
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, found := c.items[key]
	if !found {
		return "", false
	}

	if time.Now().UnixNano() > it.expiration {
		return "", false
	}

	return it.value, true
}

// Invalidate removes an item from the cache. Chamado quando um lead é
// criado, editado ou removido, para o próximo export sair atualizado.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired removes all expired items from the cache
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.expiration {
			delete(c.items, k)
		}
	}
}
