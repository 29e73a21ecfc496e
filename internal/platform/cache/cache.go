package cache

import (
	"sync"
	"time"

	"pet-finder/internal/platform/metrics"
)

// Entry es un valor cacheado junto al momento en que se guardó.
type Entry[V any] struct {
	Value    V
	StoredAt time.Time
}

// Cache es un map clave -> {valor, timestamp} con expiración por TTL.
// ttl <= 0 => cache de vida del proceso (nunca expira).
// Seguro para uso concurrente: el servidor HTTP atiende requests en paralelo.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	name    string
	ttl     time.Duration
	entries map[K]Entry[V]
	now     func() time.Time
}

// New crea un cache con TTL. name se usa como label de métricas.
func New[K comparable, V any](name string, ttl time.Duration) *Cache[K, V] {
	return &Cache[K, V]{
		name:    name,
		ttl:     ttl,
		entries: make(map[K]Entry[V]),
		now:     time.Now,
	}
}

// NewLifetime crea un cache sin expiración.
func NewLifetime[K comparable, V any](name string) *Cache[K, V] {
	return New[K, V](name, 0)
}

// WithClock reemplaza el reloj (tests).
func (c *Cache[K, V]) WithClock(now func() time.Time) *Cache[K, V] {
	if now != nil {
		c.now = now
	}
	return c
}

// TTL devuelve el TTL configurado (0 = lifetime).
func (c *Cache[K, V]) TTL() time.Duration { return c.ttl }

// Get devuelve el valor si existe y no expiró.
// Una entrada vencida se borra y cuenta como miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		metrics.CacheLookups.WithLabelValues(c.name, "miss").Inc()
		return zero, false
	}
	if c.expired(e) {
		delete(c.entries, key)
		metrics.CacheLookups.WithLabelValues(c.name, "expired").Inc()
		return zero, false
	}

	metrics.CacheLookups.WithLabelValues(c.name, "hit").Inc()
	return e.Value, true
}

// Set guarda value con el timestamp actual.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry[V]{Value: value, StoredAt: c.now()}
}

// Delete borra una entrada. No-op si no existe.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Len cuenta entradas, incluidas las vencidas que aún no se leyeron.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

func (c *Cache[K, V]) expired(e Entry[V]) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(e.StoredAt) >= c.ttl
}
