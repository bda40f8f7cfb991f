package cache

import (
	"sync"
	"time"

	"tienda-arte/internal/catalog"
)

type snapshotItem struct {
	value      *catalog.Storefront
	expiration int64
}

// SnapshotCache guarda fotos de tienda ya cargadas para no repetir la
// orquestación de fetches en cada request. Los filtros se aplican por request
// sobre la foto cacheada, así que la entrada es siempre la lista sin filtrar.
type SnapshotCache struct {
	items map[string]snapshotItem
	mu    sync.RWMutex
	ttl   time.Duration
}

func New(ttl time.Duration) *SnapshotCache {
	c := &SnapshotCache{
		items: make(map[string]snapshotItem),
		ttl:   ttl,
	}
	// Limpiar entradas vencidas periódicamente
	go c.cleanupExpired()
	return c
}

// Set guarda una foto de tienda bajo la clave dada
func (c *SnapshotCache) Set(key string, value *catalog.Storefront) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = snapshotItem{
		value:      value,
		expiration: time.Now().Add(c.ttl).UnixNano(),
	}
}

// Get obtiene una foto vigente, o false si no está o ya venció
func (c *SnapshotCache) Get(key string) (*catalog.Storefront, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}
	if time.Now().UnixNano() > item.expiration {
		return nil, false
	}
	return item.value, true
}

// Delete saca una foto del caché
func (c *SnapshotCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Size retorna el número de fotos guardadas, vencidas incluidas
func (c *SnapshotCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *SnapshotCache) cleanupExpired() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.mu.Lock()
		now := time.Now().UnixNano()
		for key, item := range c.items {
			if now > item.expiration {
				delete(c.items, key)
			}
		}
		c.mu.Unlock()
	}
}
